package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/foodies/backend/internal/models"
	"github.com/pageza/foodies/backend/internal/service"
	"github.com/pageza/foodies/backend/internal/types"
)

// MockUserService is a mock implementation of the user service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Current(ctx context.Context, user *models.User) (*types.CurrentUserResponse, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.CurrentUserResponse), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id string) (*types.PublicUserResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PublicUserResponse), args.Error(1)
}

func (m *MockUserService) Follow(ctx context.Context, currentID uuid.UUID, targetID string) error {
	args := m.Called(ctx, currentID, targetID)
	return args.Error(0)
}

func (m *MockUserService) Unfollow(ctx context.Context, currentID uuid.UUID, targetID string) error {
	args := m.Called(ctx, currentID, targetID)
	return args.Error(0)
}

func (m *MockUserService) Followers(ctx context.Context, userID string) (*types.FollowersResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.FollowersResponse), args.Error(1)
}

func (m *MockUserService) Following(ctx context.Context, currentID uuid.UUID) (*types.FollowingResponse, error) {
	args := m.Called(ctx, currentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.FollowingResponse), args.Error(1)
}

func (m *MockUserService) UpdateAvatar(ctx context.Context, user *models.User, image *service.Upload) (*types.UserResponse, error) {
	args := m.Called(ctx, user, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UserResponse), args.Error(1)
}
