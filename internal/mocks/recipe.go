package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/foodies/backend/internal/service"
	"github.com/pageza/foodies/backend/internal/types"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) Search(ctx context.Context, filter types.RecipeFilter, page types.PageQuery) (*types.RecipePage, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipePage), args.Error(1)
}

func (m *MockRecipeService) Popular(ctx context.Context) ([]types.PopularRecipeView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.PopularRecipeView), args.Error(1)
}

func (m *MockRecipeService) GetByID(ctx context.Context, id string) (*types.RecipeDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeDetail), args.Error(1)
}

func (m *MockRecipeService) Create(ctx context.Context, ownerID uuid.UUID, req *types.CreateRecipeRequest, image *service.Upload) (*types.RecipeDetail, error) {
	args := m.Called(ctx, ownerID, req, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeDetail), args.Error(1)
}

func (m *MockRecipeService) Delete(ctx context.Context, requesterID uuid.UUID, id string) error {
	args := m.Called(ctx, requesterID, id)
	return args.Error(0)
}

func (m *MockRecipeService) Own(ctx context.Context, ownerID uuid.UUID, page types.PageQuery) (*types.RecipePage, error) {
	args := m.Called(ctx, ownerID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipePage), args.Error(1)
}

func (m *MockRecipeService) Favorites(ctx context.Context, userID uuid.UUID, page types.PageQuery) (*types.RecipePage, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipePage), args.Error(1)
}

func (m *MockRecipeService) AddFavorite(ctx context.Context, userID uuid.UUID, recipeID string) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *MockRecipeService) RemoveFavorite(ctx context.Context, userID uuid.UUID, recipeID string) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}
