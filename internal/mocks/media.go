package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockMediaStorage is a mock implementation of service.MediaStorage
type MockMediaStorage struct {
	mock.Mock
}

func (m *MockMediaStorage) Upload(ctx context.Context, data []byte, contentType, folder string) (string, error) {
	args := m.Called(ctx, data, contentType, folder)
	return args.String(0), args.Error(1)
}

func (m *MockMediaStorage) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}
