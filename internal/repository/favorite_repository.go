package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/foodies/backend/internal/models"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&n).Error
	return n > 0, err
}

func (r *FavoriteRepository) Create(ctx context.Context, fav *models.Favorite) error {
	return r.db.WithContext(ctx).Create(fav).Error
}

// Delete removes the pair and reports how many rows were affected
func (r *FavoriteRepository) Delete(ctx context.Context, userID, recipeID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})
	return res.RowsAffected, res.Error
}

// PageRecipeIDs returns a window of the user's favorited recipe ids, newest
// favorite first, and the total number of favorites.
func (r *FavoriteRepository) PageRecipeIDs(ctx context.Context, userID uuid.UUID, offset, limit int) ([]uuid.UUID, int64, error) {
	var total int64
	q := r.db.WithContext(ctx).Model(&models.Favorite{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	ids := []uuid.UUID{}
	if total == 0 || int64(offset) >= total {
		return ids, total, nil
	}
	err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Pluck("recipe_id", &ids).Error
	return ids, total, err
}

func (r *FavoriteRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}
