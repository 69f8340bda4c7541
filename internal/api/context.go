package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/foodies/backend/internal/apperrors"
	"github.com/pageza/foodies/backend/internal/middleware"
	"github.com/pageza/foodies/backend/internal/models"
)

func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		_ = c.Error(apperrors.Unauthorized(""))
	}
	return id, ok
}

func requireUser(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		_ = c.Error(apperrors.Unauthorized(""))
	}
	return user, ok
}
