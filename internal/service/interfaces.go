package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/foodies/backend/internal/models"
	"github.com/pageza/foodies/backend/internal/types"
)

// IAuthService defines the interface for account and session operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	Search(ctx context.Context, filter types.RecipeFilter, page types.PageQuery) (*types.RecipePage, error)
	Popular(ctx context.Context) ([]types.PopularRecipeView, error)
	GetByID(ctx context.Context, id string) (*types.RecipeDetail, error)
	Create(ctx context.Context, ownerID uuid.UUID, req *types.CreateRecipeRequest, image *Upload) (*types.RecipeDetail, error)
	Delete(ctx context.Context, requesterID uuid.UUID, id string) error
	Own(ctx context.Context, ownerID uuid.UUID, page types.PageQuery) (*types.RecipePage, error)
	Favorites(ctx context.Context, userID uuid.UUID, page types.PageQuery) (*types.RecipePage, error)
	AddFavorite(ctx context.Context, userID uuid.UUID, recipeID string) error
	RemoveFavorite(ctx context.Context, userID uuid.UUID, recipeID string) error
}

// IUserService defines the interface for user profile and social graph operations
type IUserService interface {
	Current(ctx context.Context, user *models.User) (*types.CurrentUserResponse, error)
	GetByID(ctx context.Context, id string) (*types.PublicUserResponse, error)
	Follow(ctx context.Context, currentID uuid.UUID, targetID string) error
	Unfollow(ctx context.Context, currentID uuid.UUID, targetID string) error
	Followers(ctx context.Context, userID string) (*types.FollowersResponse, error)
	Following(ctx context.Context, currentID uuid.UUID) (*types.FollowingResponse, error)
	UpdateAvatar(ctx context.Context, user *models.User, image *Upload) (*types.UserResponse, error)
}

// IReferenceService defines the interface for lookup data
type IReferenceService interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Areas(ctx context.Context) ([]models.Area, error)
	Ingredients(ctx context.Context) ([]models.Ingredient, error)
	Testimonials(ctx context.Context) ([]types.TestimonialView, error)
}

// MediaStorage stores uploaded images and returns their public URL
type MediaStorage interface {
	Upload(ctx context.Context, data []byte, contentType, folder string) (string, error)
	Delete(ctx context.Context, url string) error
}
