package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/pageza/foodies/backend/internal/apperrors"
)

// ConfigureValidator makes binding errors name json fields
func ConfigureValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		apperrors.RegisterJSONTagNames(v)
	}
}
