package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/foodies/backend/internal/models"
	"github.com/pageza/foodies/backend/internal/types"
)

// MockReferenceService is a mock implementation of the reference service
type MockReferenceService struct {
	mock.Mock
}

func (m *MockReferenceService) Categories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockReferenceService) Areas(ctx context.Context) ([]models.Area, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Area), args.Error(1)
}

func (m *MockReferenceService) Ingredients(ctx context.Context) ([]models.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ingredient), args.Error(1)
}

func (m *MockReferenceService) Testimonials(ctx context.Context) ([]types.TestimonialView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.TestimonialView), args.Error(1)
}
