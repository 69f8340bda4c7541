package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/foodies/backend/internal/apperrors"
	"github.com/pageza/foodies/backend/internal/models"
	"github.com/pageza/foodies/backend/internal/repository"
	"github.com/pageza/foodies/backend/internal/types"
)

const (
	PopularLimit = 10

	msgRecipeNotFound    = "Recipe not found"
	msgNotRecipeOwner    = "You can only delete your own recipes"
	msgAlreadyFavorite   = "Recipe already in favorites"
	msgNotFavorite       = "Recipe not in favorites"
	msgUnknownReference  = "Category, area or ingredient does not exist"
	msgDuplicateInRecipe = "Each ingredient can only be listed once"
)

type RecipeService struct {
	recipes   *repository.RecipeRepository
	favorites *repository.FavoriteRepository
	media     MediaStorage
	log       *zap.Logger
}

func NewRecipeService(repos *repository.Repositories, media MediaStorage, log *zap.Logger) *RecipeService {
	return &RecipeService{
		recipes:   repos.Recipes,
		favorites: repos.Favorites,
		media:     media,
		log:       log.Named("recipes"),
	}
}

// Search pages through recipes matching the optional category, area and
// ingredient filters, newest first.
func (s *RecipeService) Search(ctx context.Context, filter types.RecipeFilter, pq types.PageQuery) (*types.RecipePage, error) {
	f, err := parseFilter(filter)
	if err != nil {
		return nil, err
	}
	p := NormalizePage(pq)

	recipes, total, err := s.recipes.Search(ctx, f, p.Offset(), p.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	return newRecipePage(recipes, total, p), nil
}

// Popular returns the most favorited recipes with their favorites count
func (s *RecipeService) Popular(ctx context.Context) ([]types.PopularRecipeView, error) {
	rows, err := s.recipes.Popular(ctx, PopularLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank recipes: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	byID, err := s.fetchByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]types.PopularRecipeView, 0, len(rows))
	for _, row := range rows {
		recipe, ok := byID[row.ID]
		if !ok {
			continue
		}
		out = append(out, types.PopularRecipeView{
			RecipeView:     types.NewRecipeView(recipe),
			FavoritesCount: row.FavoritesCount,
		})
	}
	return out, nil
}

func (s *RecipeService) GetByID(ctx context.Context, id string) (*types.RecipeDetail, error) {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NotFound(msgRecipeNotFound)
	}
	return s.detail(ctx, recipeID)
}

// Create stores the recipe and its ingredient list atomically. The image, if
// any, is uploaded before anything is written.
func (s *RecipeService) Create(ctx context.Context, ownerID uuid.UUID, req *types.CreateRecipeRequest, image *Upload) (*types.RecipeDetail, error) {
	recipe, ingredients, err := buildRecipe(ownerID, req)
	if err != nil {
		return nil, err
	}

	if image != nil {
		url, err := s.media.Upload(ctx, image.Data, image.ContentType, FolderRecipes)
		if err != nil {
			return nil, fmt.Errorf("failed to upload recipe image: %w", err)
		}
		recipe.Thumb = &url
	}

	if err := s.recipes.CreateWithIngredients(ctx, recipe, ingredients); err != nil {
		s.releaseMedia(ctx, recipe.Thumb)
		switch {
		case errors.Is(err, repository.ErrUnknownReference):
			return nil, apperrors.BadRequest(msgUnknownReference)
		case repository.IsDuplicate(err):
			return nil, apperrors.BadRequest(msgDuplicateInRecipe)
		}
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	s.log.Info("recipe created",
		zap.String("recipe_id", recipe.ID.String()),
		zap.String("owner_id", ownerID.String()),
		zap.Int("ingredients", len(ingredients)),
	)
	return s.detail(ctx, recipe.ID)
}

// Delete removes a recipe owned by requesterID together with its
// ingredient rows, favorites and thumbnail.
func (s *RecipeService) Delete(ctx context.Context, requesterID uuid.UUID, id string) error {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.NotFound(msgRecipeNotFound)
	}

	recipe, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NotFound(msgRecipeNotFound)
		}
		return fmt.Errorf("failed to load recipe: %w", err)
	}
	if recipe.OwnerID != requesterID {
		return apperrors.Forbidden(msgNotRecipeOwner)
	}

	s.releaseMedia(ctx, recipe.Thumb)

	if err := s.recipes.Delete(ctx, recipeID); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	s.log.Info("recipe deleted", zap.String("recipe_id", recipeID.String()))
	return nil
}

// Own pages through the recipes created by ownerID
func (s *RecipeService) Own(ctx context.Context, ownerID uuid.UUID, pq types.PageQuery) (*types.RecipePage, error) {
	p := NormalizePage(pq)
	recipes, total, err := s.recipes.ListByOwner(ctx, ownerID, p.Offset(), p.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list own recipes: %w", err)
	}
	return newRecipePage(recipes, total, p), nil
}

// Favorites pages through the user's favorites, most recently added first
func (s *RecipeService) Favorites(ctx context.Context, userID uuid.UUID, pq types.PageQuery) (*types.RecipePage, error) {
	p := NormalizePage(pq)
	ids, total, err := s.favorites.PageRecipeIDs(ctx, userID, p.Offset(), p.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	byID, err := s.fetchByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	ordered := make([]models.Recipe, 0, len(ids))
	for _, id := range ids {
		if recipe, ok := byID[id]; ok {
			ordered = append(ordered, *recipe)
		}
	}
	return newRecipePage(ordered, total, p), nil
}

func (s *RecipeService) AddFavorite(ctx context.Context, userID uuid.UUID, recipeID string) error {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return apperrors.NotFound(msgRecipeNotFound)
	}

	exists, err := s.recipes.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check recipe: %w", err)
	}
	if !exists {
		return apperrors.NotFound(msgRecipeNotFound)
	}

	already, err := s.favorites.Exists(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("failed to check favorite: %w", err)
	}
	if already {
		return apperrors.Conflict(msgAlreadyFavorite)
	}

	if err := s.favorites.Create(ctx, &models.Favorite{UserID: userID, RecipeID: id}); err != nil {
		if repository.IsDuplicate(err) {
			return apperrors.Conflict(msgAlreadyFavorite)
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (s *RecipeService) RemoveFavorite(ctx context.Context, userID uuid.UUID, recipeID string) error {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return apperrors.NotFound(msgNotFavorite)
	}
	removed, err := s.favorites.Delete(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if removed == 0 {
		return apperrors.NotFound(msgNotFavorite)
	}
	return nil
}

func (s *RecipeService) detail(ctx context.Context, id uuid.UUID) (*types.RecipeDetail, error) {
	recipe, err := s.recipes.FindDetail(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NotFound(msgRecipeNotFound)
		}
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}
	return types.NewRecipeDetail(recipe), nil
}

func (s *RecipeService) fetchByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Recipe, error) {
	recipes, err := s.recipes.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipes: %w", err)
	}
	byID := make(map[uuid.UUID]*models.Recipe, len(recipes))
	for i := range recipes {
		byID[recipes[i].ID] = &recipes[i]
	}
	return byID, nil
}

// releaseMedia deletes a stored image. Failures are logged and ignored.
func (s *RecipeService) releaseMedia(ctx context.Context, url *string) {
	if url == nil || *url == "" {
		return
	}
	if err := s.media.Delete(ctx, *url); err != nil {
		s.log.Warn("failed to delete recipe image", zap.String("url", *url), zap.Error(err))
	}
}

func parseFilter(in types.RecipeFilter) (repository.RecipeFilter, error) {
	var out repository.RecipeFilter
	var err error
	if out.CategoryID, err = optionalUUID("category", in.Category); err != nil {
		return out, err
	}
	if out.AreaID, err = optionalUUID("area", in.Area); err != nil {
		return out, err
	}
	if out.IngredientID, err = optionalUUID("ingredient", in.Ingredient); err != nil {
		return out, err
	}
	return out, nil
}

func optionalUUID(field, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperrors.BadRequest(field + " must be a valid UUID")
	}
	return &id, nil
}

func buildRecipe(ownerID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, []models.RecipeIngredient, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, nil, apperrors.BadRequest("categoryId must be a valid UUID")
	}
	areaID, err := uuid.Parse(req.AreaID)
	if err != nil {
		return nil, nil, apperrors.BadRequest("areaId must be a valid UUID")
	}

	seen := make(map[uuid.UUID]struct{}, len(req.Ingredients))
	ingredients := make([]models.RecipeIngredient, 0, len(req.Ingredients))
	for _, in := range req.Ingredients {
		id, err := uuid.Parse(in.IngredientID)
		if err != nil {
			return nil, nil, apperrors.BadRequest("ingredientId must be a valid UUID")
		}
		if _, dup := seen[id]; dup {
			return nil, nil, apperrors.BadRequest(msgDuplicateInRecipe)
		}
		seen[id] = struct{}{}
		ingredients = append(ingredients, models.RecipeIngredient{IngredientID: id, Measure: in.Measure})
	}

	recipe := &models.Recipe{
		Title:        req.Title,
		Instructions: req.Instructions,
		OwnerID:      ownerID,
		CategoryID:   categoryID,
		AreaID:       areaID,
	}
	if req.Time != "" {
		t := req.Time
		recipe.Time = &t
	}
	return recipe, ingredients, nil
}
