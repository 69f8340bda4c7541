package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMessages(t *testing.T) {
	assert.Equal(t, "Bad request", BadRequest("").Message)
	assert.Equal(t, "Not authorized", Unauthorized("").Message)
	assert.Equal(t, "Forbidden", Forbidden("").Message)
	assert.Equal(t, "Not found", NotFound("").Message)
	assert.Equal(t, "Conflict", Conflict("").Message)
	assert.Equal(t, "Internal server error", Internal("").Message)
	assert.Equal(t, "Recipe not found", NotFound("Recipe not found").Message)
}

func TestStatusOf(t *testing.T) {
	wrapped := fmt.Errorf("loading recipe: %w", NotFound("Recipe not found"))
	assert.Equal(t, http.StatusNotFound, StatusOf(wrapped))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))

	httpErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "Recipe not found", httpErr.Error())
}

type ingredientInput struct {
	IngredientID string `json:"ingredientId" validate:"required,uuid"`
	Measure      string `json:"measure" validate:"required"`
}

type recipeInput struct {
	Title       string            `json:"title" validate:"required,min=3,max=100"`
	Email       string            `json:"email" validate:"omitempty,email"`
	Ingredients []ingredientInput `json:"ingredients" validate:"required,min=1,dive"`
}

func TestFromBinding(t *testing.T) {
	v := validator.New()
	RegisterJSONTagNames(v)

	tests := []struct {
		name  string
		input recipeInput
		want  string
	}{
		{
			name:  "short title",
			input: recipeInput{Title: "ab", Ingredients: []ingredientInput{{IngredientID: "4b1d1b3c-6a36-4d2e-9a47-1f1a4c2b0b7e", Measure: "1"}}},
			want:  "title must be at least 3 characters long",
		},
		{
			name:  "missing title",
			input: recipeInput{Ingredients: []ingredientInput{{IngredientID: "4b1d1b3c-6a36-4d2e-9a47-1f1a4c2b0b7e", Measure: "1"}}},
			want:  "title is required",
		},
		{
			name:  "empty ingredients",
			input: recipeInput{Title: "Soup", Ingredients: []ingredientInput{}},
			want:  "ingredients must contain at least 1 items",
		},
		{
			name:  "nested uuid",
			input: recipeInput{Title: "Soup", Ingredients: []ingredientInput{{IngredientID: "nope", Measure: "1"}}},
			want:  "ingredients[0].ingredientId must be a valid UUID",
		},
		{
			name:  "bad email",
			input: recipeInput{Title: "Soup", Email: "x", Ingredients: []ingredientInput{{IngredientID: "4b1d1b3c-6a36-4d2e-9a47-1f1a4c2b0b7e", Measure: "1"}}},
			want:  "email must be a valid email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			require.Error(t, err)
			httpErr := FromBinding(err)
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, tt.want, httpErr.Message)
		})
	}
}
