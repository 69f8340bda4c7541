package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/foodies/backend/internal/apperrors"
	"github.com/pageza/foodies/backend/internal/mocks"
	"github.com/pageza/foodies/backend/internal/repository"
	"github.com/pageza/foodies/backend/internal/service"
	"github.com/pageza/foodies/backend/internal/testhelpers"
)

func requireHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()
	httpErr, ok := apperrors.As(err)
	require.True(t, ok, "expected HTTPError, got %v", err)
	assert.Equal(t, status, httpErr.Status)
	if message != "" {
		assert.Equal(t, message, httpErr.Message)
	}
}

type recipeEnv struct {
	db    *gorm.DB
	media *mocks.MockMediaStorage
	svc   *service.RecipeService
}

func setupRecipeService(t *testing.T) recipeEnv {
	t.Helper()
	db := testhelpers.SetupTestDB(t)
	media := new(mocks.MockMediaStorage)
	t.Cleanup(func() { media.AssertExpectations(t) })
	return recipeEnv{
		db:    db,
		media: media,
		svc:   service.NewRecipeService(repository.New(db), media, zap.NewNop()),
	}
}
