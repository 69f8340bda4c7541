package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pageza/foodies/backend/internal/apperrors"
	"github.com/pageza/foodies/backend/internal/models"
	"github.com/pageza/foodies/backend/internal/repository"
	"github.com/pageza/foodies/backend/internal/types"
)

const (
	msgEmailInUse   = "Email already in use"
	msgBadLogin     = "Email or password is wrong"
	msgUserNotFound = "User not found"
)

var errInvalidToken = errors.New("invalid token")

type AuthService struct {
	users     *repository.UserRepository
	jwtSecret []byte
	ttl       time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewAuthService(users *repository.UserRepository, jwtSecret string, ttl time.Duration, log *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		ttl:       ttl,
		log:       log.Named("auth"),
		now:       time.Now,
	}
}

// Register creates the account and opens its first session
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error) {
	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.Conflict(msgEmailInUse)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsDuplicate(err) {
			return nil, apperrors.Conflict(msgEmailInUse)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info("user registered", zap.String("user_id", user.ID.String()))
	return resp, nil
}

func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.Unauthorized(msgBadLogin)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized(msgBadLogin)
	}
	return s.openSession(ctx, user)
}

// Logout clears the stored session so the current token stops working
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.SetToken(ctx, userID, nil); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// Authenticate resolves the user owning token. The token must verify and
// match the session stored on the user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.ValidateToken(token)
	if err != nil {
		return nil, apperrors.Unauthorized("")
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.Unauthorized("")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.HasSession(token) {
		return nil, apperrors.Unauthorized("")
	}
	return user, nil
}

// ValidateToken verifies signature and expiry and returns the claims
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, errInvalidToken
	}
	return claims, nil
}

func (s *AuthService) openSession(ctx context.Context, user *models.User) (*types.AuthResponse, error) {
	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	if err := s.users.SetToken(ctx, user.ID, &token); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}
	user.Token = &token
	return &types.AuthResponse{User: types.NewUserResponse(user), Token: token}, nil
}

func (s *AuthService) issueToken(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := &types.TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
