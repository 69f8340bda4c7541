package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/foodies/backend/internal/models"
)

// RecipeFilter narrows a recipe search; nil fields are not applied
type RecipeFilter struct {
	CategoryID   *uuid.UUID
	AreaID       *uuid.UUID
	IngredientID *uuid.UUID
}

// PopularityRow is one entry of the favorites ranking
type PopularityRow struct {
	ID             uuid.UUID
	FavoritesCount int64
}

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// withListJoins loads category, area and the owner's public fields
func withListJoins(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Category").
		Preload("Area").
		Preload("Owner", ownerPublicFields)
}

// withDetailJoins adds the ingredient rows and their ingredient records
func withDetailJoins(q *gorm.DB) *gorm.DB {
	return withListJoins(q).Preload("Ingredients.Ingredient")
}

// recency is the canonical list ordering; id breaks equal timestamps
func recency(q *gorm.DB) *gorm.DB {
	return q.Order("recipes.created_at DESC").Order("recipes.id DESC")
}

// IDsByIngredient resolves the recipes that reference an ingredient
func (r *RecipeRepository) IDsByIngredient(ctx context.Context, ingredientID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.RecipeIngredient{}).
		Where("ingredient_id = ?", ingredientID).
		Pluck("recipe_id", &ids).Error
	return ids, err
}

// Search returns one page of recipes matching f plus the total match count.
//
// Join plan: ingredient filter first resolves recipe ids from
// recipe_ingredients, then recipes is filtered by id set, category and area,
// counted, and the page window is fetched with list joins in recency order.
func (r *RecipeRepository) Search(ctx context.Context, f RecipeFilter, offset, limit int) ([]models.Recipe, int64, error) {
	var ids []uuid.UUID
	if f.IngredientID != nil {
		var err error
		ids, err = r.IDsByIngredient(ctx, *f.IngredientID)
		if err != nil {
			return nil, 0, fmt.Errorf("resolve ingredient recipes: %w", err)
		}
		if len(ids) == 0 {
			return []models.Recipe{}, 0, nil
		}
	}

	scope := func(q *gorm.DB) *gorm.DB {
		if ids != nil {
			q = q.Where("recipes.id IN ?", ids)
		}
		if f.CategoryID != nil {
			q = q.Where("recipes.category_id = ?", *f.CategoryID)
		}
		if f.AreaID != nil {
			q = q.Where("recipes.area_id = ?", *f.AreaID)
		}
		return q
	}
	return r.page(ctx, scope, offset, limit)
}

// ListByOwner returns one page of the recipes owned by ownerID
func (r *RecipeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]models.Recipe, int64, error) {
	return r.page(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("recipes.owner_id = ?", ownerID)
	}, offset, limit)
}

func (r *RecipeRepository) page(ctx context.Context, scope func(*gorm.DB) *gorm.DB, offset, limit int) ([]models.Recipe, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Recipe{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count recipes: %w", err)
	}

	recipes := []models.Recipe{}
	if total == 0 || int64(offset) >= total {
		return recipes, total, nil
	}

	q := withListJoins(r.db.WithContext(ctx).Model(&models.Recipe{}).Scopes(scope, recency))
	if err := q.Offset(offset).Limit(limit).Find(&recipes).Error; err != nil {
		return nil, 0, fmt.Errorf("fetch recipes: %w", err)
	}
	return recipes, total, nil
}

// Popular ranks recipes by favorites count, highest first, ties by ascending id
func (r *RecipeRepository) Popular(ctx context.Context, limit int) ([]PopularityRow, error) {
	var rows []PopularityRow
	err := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Select("recipes.id AS id, (SELECT COUNT(*) FROM favorites WHERE favorites.recipe_id = recipes.id) AS favorites_count").
		Order("favorites_count DESC").
		Order("recipes.id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// FindByIDs bulk-fetches list views. The result order is unspecified.
func (r *RecipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	if len(ids) == 0 {
		return recipes, nil
	}
	err := withListJoins(r.db.WithContext(ctx)).Where("recipes.id IN ?", ids).Find(&recipes).Error
	return recipes, err
}

// FindByID loads the bare recipe row
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// FindDetail loads a recipe with owner, category, area and ingredients.
// Ingredients are ordered by ingredient name.
func (r *RecipeRepository) FindDetail(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := withDetailJoins(r.db.WithContext(ctx)).First(&recipe, "recipes.id = ?", id).Error; err != nil {
		return nil, err
	}
	sort.SliceStable(recipe.Ingredients, func(i, j int) bool {
		a, b := recipe.Ingredients[i].Ingredient, recipe.Ingredients[j].Ingredient
		if a == nil || b == nil {
			return b != nil
		}
		return a.Name < b.Name
	})
	return &recipe, nil
}

func (r *RecipeRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *RecipeRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Recipe{}).Where("owner_id = ?", ownerID).Count(&n).Error
	return n, err
}

// CreateWithIngredients inserts the recipe and its ingredient rows in one
// transaction. Unknown category, area or ingredient ids yield
// ErrUnknownReference and nothing is written.
func (r *RecipeRepository) CreateWithIngredients(ctx context.Context, recipe *models.Recipe, ingredients []models.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRows(tx, &models.Category{}, recipe.CategoryID); err != nil {
			return fmt.Errorf("category: %w", err)
		}
		if err := requireRows(tx, &models.Area{}, recipe.AreaID); err != nil {
			return fmt.Errorf("area: %w", err)
		}
		ingredientIDs := make([]uuid.UUID, 0, len(ingredients))
		for _, ri := range ingredients {
			ingredientIDs = append(ingredientIDs, ri.IngredientID)
		}
		if err := requireRows(tx, &models.Ingredient{}, ingredientIDs...); err != nil {
			return fmt.Errorf("ingredient: %w", err)
		}

		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return fmt.Errorf("insert recipe: %w", err)
		}
		if len(ingredients) == 0 {
			return nil
		}
		for i := range ingredients {
			ingredients[i].RecipeID = recipe.ID
		}
		if err := tx.Omit(clause.Associations).Create(&ingredients).Error; err != nil {
			return fmt.Errorf("insert recipe ingredients: %w", err)
		}
		return nil
	})
}

// Delete removes the recipe together with its ingredient and favorite rows
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return fmt.Errorf("delete recipe ingredients: %w", err)
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return fmt.Errorf("delete favorites: %w", err)
		}
		if err := tx.Delete(&models.Recipe{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("delete recipe: %w", err)
		}
		return nil
	})
}

// requireRows checks that every distinct id exists in model's table
func requireRows(tx *gorm.DB, model interface{}, ids ...uuid.UUID) error {
	distinct := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		distinct[id] = struct{}{}
	}
	if len(distinct) == 0 {
		return nil
	}
	var n int64
	if err := tx.Model(model).Where("id IN ?", ids).Count(&n).Error; err != nil {
		return err
	}
	if n != int64(len(distinct)) {
		return ErrUnknownReference
	}
	return nil
}
