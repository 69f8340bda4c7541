package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/foodies/backend/internal/apperrors"
	"github.com/pageza/foodies/backend/internal/service"
	"github.com/pageza/foodies/backend/internal/types"
)

type UserHandler struct {
	users service.IUserService
}

func NewUserHandler(users service.IUserService) *UserHandler {
	return &UserHandler{users: users}
}

// RegisterRoutes mounts the user routes. All of them require a session.
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	users := router.Group("/users", requireAuth)
	{
		users.GET("/current", h.CurrentUser)
		users.GET("/following", h.Following)
		users.PATCH("/avatar", BodySizeLimiter(MaxUploadSize+1<<20), h.UpdateAvatar)
		users.GET("/:id", h.GetUser)
		users.GET("/:id/followers", h.Followers)
		users.POST("/:id/follow", h.Follow)
		users.DELETE("/:id/follow", h.Unfollow)
	}
}

func (h *UserHandler) CurrentUser(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	profile, err := h.users.Current(c.Request.Context(), user)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	profile, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) Followers(c *gin.Context) {
	result, err := h.users.Followers(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *UserHandler) Following(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	result, err := h.users.Following(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *UserHandler) Follow(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.users.Follow(c.Request.Context(), userID, c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, types.MessageResponse{Message: "Successfully followed user"})
}

func (h *UserHandler) Unfollow(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.users.Unfollow(c.Request.Context(), userID, c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	image, err := readImage(c, "avatar")
	if err != nil {
		_ = c.Error(err)
		return
	}
	if image == nil {
		_ = c.Error(apperrors.BadRequest("No file uploaded"))
		return
	}

	updated, err := h.users.UpdateAvatar(c.Request.Context(), user, image)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
