package router

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/pageza/foodies/backend/internal/apperrors"
	"github.com/pageza/foodies/backend/internal/middleware"
	"github.com/pageza/foodies/backend/internal/mocks"
	"github.com/pageza/foodies/backend/internal/models"
	"github.com/pageza/foodies/backend/internal/testhelpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router *gin.Engine
	auth   *mocks.MockAuthService
	refs   *mocks.MockReferenceService
}

func setup(t *testing.T) *testEnv {
	env := &testEnv{auth: &mocks.MockAuthService{}, refs: &mocks.MockReferenceService{}}
	env.router = SetupRouter(Dependencies{
		DB:          testhelpers.SetupTestDB(t),
		Logger:      zap.NewNop(),
		Auth:        env.auth,
		Recipes:     &mocks.MockRecipeService{},
		Users:       &mocks.MockUserService{},
		References:  env.refs,
		CORSOrigins: []string{"*"},
	})
	return env
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUnknownRoute(t *testing.T) {
	env := setup(t)

	w := serve(env.router, httptest.NewRequest(http.MethodGet, "/api/nothing-here", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Not found"}`, w.Body.String())
}

func TestHealthRoutes(t *testing.T) {
	env := setup(t)

	for _, path := range []string{"/health", "/api/health"} {
		w := serve(env.router, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `"database":"ok"`)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := setup(t)

	for _, path := range []string{"/api/auth/current", "/api/recipes/own", "/api/users/current"} {
		w := serve(env.router, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.JSONEq(t, `{"message":"Not authorized"}`, w.Body.String())
	}
	env.auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestBearerTokenReachesHandler(t *testing.T) {
	env := setup(t)
	user := &models.User{Name: "Alice", Email: "alice@example.com"}
	env.auth.On("Authenticate", mock.Anything, "good").Return(user, nil)
	env.auth.On("Authenticate", mock.Anything, "stale").Return(nil, apperrors.Unauthorized(""))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/current", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := serve(env.router, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"alice@example.com"`)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/current", nil)
	req.Header.Set("Authorization", "Bearer stale")
	w = serve(env.router, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidationUsesJSONFieldNames(t *testing.T) {
	env := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(env.router, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"email is required"}`, w.Body.String())
}

func TestPublicReferenceRoute(t *testing.T) {
	env := setup(t)
	env.refs.On("Areas", mock.Anything).Return([]models.Area{{Name: "Italian"}}, nil)

	w := serve(env.router, httptest.NewRequest(http.MethodGet, "/api/areas", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Italian"`)
}
