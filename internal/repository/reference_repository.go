package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pageza/foodies/backend/internal/models"
)

// ReferenceRepository serves the static lookup tables and testimonials
type ReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) Categories(ctx context.Context) ([]models.Category, error) {
	out := []models.Category{}
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *ReferenceRepository) Areas(ctx context.Context) ([]models.Area, error) {
	out := []models.Area{}
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *ReferenceRepository) Ingredients(ctx context.Context) ([]models.Ingredient, error) {
	out := []models.Ingredient{}
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

// Testimonials returns every testimonial with its author, newest first
func (r *ReferenceRepository) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	out := []models.Testimonial{}
	err := r.db.WithContext(ctx).
		Preload("User", ownerPublicFields).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}
