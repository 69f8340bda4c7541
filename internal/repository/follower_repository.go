package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/foodies/backend/internal/models"
)

type FollowerRepository struct {
	db *gorm.DB
}

func NewFollowerRepository(db *gorm.DB) *FollowerRepository {
	return &FollowerRepository{db: db}
}

func (r *FollowerRepository) Exists(ctx context.Context, userID, followerID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Follower{}).
		Where("user_id = ? AND follower_id = ?", userID, followerID).
		Count(&n).Error
	return n > 0, err
}

func (r *FollowerRepository) Create(ctx context.Context, f *models.Follower) error {
	return r.db.WithContext(ctx).Create(f).Error
}

// Delete removes the edge and reports how many rows were affected
func (r *FollowerRepository) Delete(ctx context.Context, userID, followerID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND follower_id = ?", userID, followerID).
		Delete(&models.Follower{})
	return res.RowsAffected, res.Error
}

// Followers joins users on followers.follower_id for edges pointing at userID
func (r *FollowerRepository) Followers(ctx context.Context, userID uuid.UUID) ([]models.User, error) {
	return r.joinUsers(ctx, "followers.follower_id", "followers.user_id", userID)
}

// Following joins users on followers.user_id for edges leaving followerID
func (r *FollowerRepository) Following(ctx context.Context, followerID uuid.UUID) ([]models.User, error) {
	return r.joinUsers(ctx, "followers.user_id", "followers.follower_id", followerID)
}

func (r *FollowerRepository) joinUsers(ctx context.Context, joinCol, matchCol string, id uuid.UUID) ([]models.User, error) {
	users := []models.User{}
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("users.id", "users.name", "users.avatar").
		Joins("JOIN followers ON "+joinCol+" = users.id").
		Where(matchCol+" = ?", id).
		Order("followers.created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *FollowerRepository) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Follower{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *FollowerRepository) CountFollowing(ctx context.Context, followerID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Follower{}).Where("follower_id = ?", followerID).Count(&n).Error
	return n, err
}
