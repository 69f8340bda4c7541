package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the JWT payload. The subject is carried as "id".
type TokenClaims struct {
	UserID uuid.UUID `json:"id"`
	jwt.RegisteredClaims
}
