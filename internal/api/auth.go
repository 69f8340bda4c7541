package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/foodies/backend/internal/apperrors"
	"github.com/pageza/foodies/backend/internal/service"
	"github.com/pageza/foodies/backend/internal/types"
)

type AuthHandler struct {
	auth    service.IAuthService
	limiter gin.HandlerFunc
}

// NewAuthHandler builds the handler. limiter guards register and login and may be nil.
func NewAuthHandler(auth service.IAuthService, limiter gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.limited(h.Register)...)
		auth.POST("/login", h.limited(h.Login)...)
		auth.POST("/logout", requireAuth, h.Logout)
		auth.GET("/current", requireAuth, h.Current)
	}
}

func (h *AuthHandler) limited(handler gin.HandlerFunc) []gin.HandlerFunc {
	if h.limiter == nil {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{h.limiter, handler}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.FromBinding(err))
		return
	}

	resp, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.FromBinding(err))
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.auth.Logout(c.Request.Context(), userID); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Current(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, types.NewUserResponse(user))
}
