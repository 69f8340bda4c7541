package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/foodies/backend/internal/models"
	"github.com/pageza/foodies/backend/internal/repository"
	"github.com/pageza/foodies/backend/internal/service"
	"github.com/pageza/foodies/backend/internal/testhelpers"
	"github.com/pageza/foodies/backend/internal/types"
)

const testSecret = "test-secret"

func setupAuthService(t *testing.T) (*service.AuthService, *repository.UserRepository) {
	t.Helper()
	db := testhelpers.SetupTestDB(t)
	users := repository.NewUserRepository(db)
	return service.NewAuthService(users, testSecret, 7*24*time.Hour, zap.NewNop()), users
}

func register(t *testing.T, svc *service.AuthService) *types.AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	return resp
}

func TestAuthServiceRegister(t *testing.T) {
	svc, users := setupAuthService(t)
	ctx := context.Background()

	resp := register(t, svc)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Jane", resp.User.Name)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.Nil(t, resp.User.Avatar)

	stored, err := users.FindByID(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.True(t, stored.HasSession(resp.Token))

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	svc, _ := setupAuthService(t)
	register(t, svc)

	_, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Other",
		Email:    "jane@example.com",
		Password: "secret2",
	})
	requireHTTPError(t, err, http.StatusConflict, "Email already in use")
}

func TestAuthServiceLogin(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()
	registered := register(t, svc)

	resp, err := svc.Login(ctx, &types.LoginRequest{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)

	user, err := svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, user.ID)

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	requireHTTPError(t, err, http.StatusUnauthorized, "Email or password is wrong")

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	requireHTTPError(t, err, http.StatusUnauthorized, "Email or password is wrong")
}

func TestAuthServiceLogoutInvalidatesSession(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()
	resp := register(t, svc)

	require.NoError(t, svc.Logout(ctx, resp.User.ID))

	_, err := svc.Authenticate(ctx, resp.Token)
	requireHTTPError(t, err, http.StatusUnauthorized, "Not authorized")
}

func TestAuthServiceAuthenticateRejects(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()
	resp := register(t, svc)

	sign := func(secret string, claims *types.TokenClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return token
	}
	claimsAt := func(exp time.Time) *types.TokenClaims {
		return &types.TokenClaims{
			UserID: resp.User.ID,
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(exp.Add(-time.Hour)),
				ExpiresAt: jwt.NewNumericDate(exp),
			},
		}
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"wrong secret", sign("other-secret", claimsAt(time.Now().Add(time.Hour)))},
		{"expired", sign(testSecret, claimsAt(time.Now().Add(-time.Hour)))},
		{"valid but not the session token", sign(testSecret, claimsAt(time.Now().Add(2*time.Hour)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(ctx, tt.token)
			requireHTTPError(t, err, http.StatusUnauthorized, "Not authorized")
		})
	}
}

func TestAuthServiceAuthenticateDeletedUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewAuthService(repository.NewUserRepository(db), testSecret, time.Hour, zap.NewNop())
	ctx := context.Background()

	resp, err := svc.Register(ctx, &types.RegisterRequest{Name: "Gone", Email: "gone@example.com", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, db.Delete(&models.User{}, "id = ?", resp.User.ID).Error)

	_, err = svc.Authenticate(ctx, resp.Token)
	requireHTTPError(t, err, http.StatusUnauthorized, "Not authorized")
}
