package service

import (
	"context"
	"fmt"

	"github.com/pageza/foodies/backend/internal/models"
	"github.com/pageza/foodies/backend/internal/repository"
	"github.com/pageza/foodies/backend/internal/types"
)

// ReferenceService serves categories, areas, ingredients and testimonials
type ReferenceService struct {
	refs *repository.ReferenceRepository
}

func NewReferenceService(repos *repository.Repositories) *ReferenceService {
	return &ReferenceService{refs: repos.References}
}

func (s *ReferenceService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.refs.Categories(ctx)
}

func (s *ReferenceService) Areas(ctx context.Context) ([]models.Area, error) {
	return s.refs.Areas(ctx)
}

func (s *ReferenceService) Ingredients(ctx context.Context) ([]models.Ingredient, error) {
	return s.refs.Ingredients(ctx)
}

func (s *ReferenceService) Testimonials(ctx context.Context) ([]types.TestimonialView, error) {
	testimonials, err := s.refs.Testimonials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	out := make([]types.TestimonialView, 0, len(testimonials))
	for i := range testimonials {
		out = append(out, types.NewTestimonialView(&testimonials[i]))
	}
	return out, nil
}
