package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/foodies/backend/internal/service"
)

// ReferenceHandler serves the public lookup lists
type ReferenceHandler struct {
	refs service.IReferenceService
}

func NewReferenceHandler(refs service.IReferenceService) *ReferenceHandler {
	return &ReferenceHandler{refs: refs}
}

func (h *ReferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/categories", listHandler(h.refs.Categories))
	router.GET("/areas", listHandler(h.refs.Areas))
	router.GET("/ingredients", listHandler(h.refs.Ingredients))
	router.GET("/testimonials", listHandler(h.refs.Testimonials))
}

func listHandler[T any](list func(ctx context.Context) ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := list(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}
		if items == nil {
			items = []T{}
		}
		c.JSON(http.StatusOK, items)
	}
}
