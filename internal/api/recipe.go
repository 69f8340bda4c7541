package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/pageza/foodies/backend/internal/apperrors"
	"github.com/pageza/foodies/backend/internal/service"
	"github.com/pageza/foodies/backend/internal/types"
)

type RecipeHandler struct {
	recipes service.IRecipeService
}

func NewRecipeHandler(recipes service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/popular", h.PopularRecipes)
		recipes.GET("/own", requireAuth, h.OwnRecipes)
		recipes.GET("/favorites", requireAuth, h.FavoriteRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", requireAuth, BodySizeLimiter(MaxUploadSize+1<<20), h.CreateRecipe)
		recipes.DELETE("/:id", requireAuth, h.DeleteRecipe)
		recipes.POST("/:id/favorite", requireAuth, h.FavoriteRecipe)
		recipes.DELETE("/:id/favorite", requireAuth, h.UnfavoriteRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var filter types.RecipeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		_ = c.Error(apperrors.FromBinding(err))
		return
	}

	result, err := h.recipes.Search(c.Request.Context(), filter, pageQuery(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *RecipeHandler) PopularRecipes(c *gin.Context) {
	recipes, err := h.recipes.Popular(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) OwnRecipes(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	result, err := h.recipes.Own(c.Request.Context(), userID, pageQuery(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *RecipeHandler) FavoriteRecipes(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	result, err := h.recipes.Favorites(c.Request.Context(), userID, pageQuery(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// CreateRecipe accepts JSON, or multipart form values with the image in
// "thumb" and the ingredient list as a JSON string.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req types.CreateRecipeRequest
	var image *service.Upload
	if strings.HasPrefix(c.ContentType(), binding.MIMEMultipartPOSTForm) {
		var err error
		if image, err = readImage(c, "thumb"); err != nil {
			_ = c.Error(err)
			return
		}
		if err := bindRecipeForm(c, &req); err != nil {
			_ = c.Error(err)
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.FromBinding(err))
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), userID, &req, image)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.recipes.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) FavoriteRecipe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.recipes.AddFavorite(c.Request.Context(), userID, c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, types.MessageResponse{Message: "Recipe added to favorites"})
}

func (h *RecipeHandler) UnfavoriteRecipe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.recipes.RemoveFavorite(c.Request.Context(), userID, c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func pageQuery(c *gin.Context) types.PageQuery {
	return types.PageQuery{Page: c.Query("page"), Limit: c.Query("limit")}
}

func bindRecipeForm(c *gin.Context, req *types.CreateRecipeRequest) error {
	req.Title = c.PostForm("title")
	req.CategoryID = c.PostForm("categoryId")
	req.AreaID = c.PostForm("areaId")
	req.Instructions = c.PostForm("instructions")
	req.Time = c.PostForm("time")
	if raw := c.PostForm("ingredients"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Ingredients); err != nil {
			return apperrors.BadRequest("ingredients must be a JSON array")
		}
	}
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return apperrors.FromBinding(err)
	}
	return nil
}
