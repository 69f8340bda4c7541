package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/pageza/foodies/backend/internal/models"
)

// RecipeView is the list representation of a recipe
type RecipeView struct {
	ID           uuid.UUID        `json:"id"`
	Title        string           `json:"title"`
	Instructions string           `json:"instructions"`
	Thumb        *string          `json:"thumb"`
	Time         *string          `json:"time"`
	OwnerID      uuid.UUID        `json:"ownerId"`
	CategoryID   uuid.UUID        `json:"categoryId"`
	AreaID       uuid.UUID        `json:"areaId"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
	Category     *models.Category `json:"category"`
	Area         *models.Area     `json:"area"`
	Owner        *UserSummary     `json:"owner"`
}

type RecipeIngredientView struct {
	ID           uuid.UUID          `json:"id"`
	IngredientID uuid.UUID          `json:"ingredientId"`
	Measure      string             `json:"measure"`
	Ingredient   *models.Ingredient `json:"ingredient"`
}

// RecipeDetail is the detail representation including the ingredient list
type RecipeDetail struct {
	RecipeView
	Ingredients []RecipeIngredientView `json:"ingredients"`
}

type PopularRecipeView struct {
	RecipeView
	FavoritesCount int64 `json:"favoritesCount"`
}

// RecipePage is a paginated list of recipes
type RecipePage struct {
	Recipes    []RecipeView `json:"recipes"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int          `json:"totalPages"`
}

func NewRecipeView(r *models.Recipe) RecipeView {
	return RecipeView{
		ID:           r.ID,
		Title:        r.Title,
		Instructions: r.Instructions,
		Thumb:        r.Thumb,
		Time:         r.Time,
		OwnerID:      r.OwnerID,
		CategoryID:   r.CategoryID,
		AreaID:       r.AreaID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		Category:     r.Category,
		Area:         r.Area,
		Owner:        NewUserSummary(r.Owner),
	}
}

func NewRecipeViews(recipes []models.Recipe) []RecipeView {
	out := make([]RecipeView, 0, len(recipes))
	for i := range recipes {
		out = append(out, NewRecipeView(&recipes[i]))
	}
	return out
}

func NewRecipeDetail(r *models.Recipe) *RecipeDetail {
	ingredients := make([]RecipeIngredientView, 0, len(r.Ingredients))
	for _, ri := range r.Ingredients {
		ingredients = append(ingredients, RecipeIngredientView{
			ID:           ri.ID,
			IngredientID: ri.IngredientID,
			Measure:      ri.Measure,
			Ingredient:   ri.Ingredient,
		})
	}
	return &RecipeDetail{RecipeView: NewRecipeView(r), Ingredients: ingredients}
}
