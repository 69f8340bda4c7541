package service_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/foodies/backend/internal/mocks"
	"github.com/pageza/foodies/backend/internal/models"
	"github.com/pageza/foodies/backend/internal/repository"
	"github.com/pageza/foodies/backend/internal/service"
	"github.com/pageza/foodies/backend/internal/testhelpers"
)

func setupUserService(t *testing.T) (*service.UserService, *gorm.DB, *mocks.MockMediaStorage) {
	t.Helper()
	db := testhelpers.SetupTestDB(t)
	media := new(mocks.MockMediaStorage)
	t.Cleanup(func() { media.AssertExpectations(t) })
	return service.NewUserService(repository.New(db), media, zap.NewNop()), db, media
}

func TestUserServiceFollow(t *testing.T) {
	svc, db, _ := setupUserService(t)
	ctx := context.Background()

	alice := testhelpers.CreateUser(t, db, "Alice")
	bob := testhelpers.CreateUser(t, db, "Bob")

	require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID.String()))

	err := svc.Follow(ctx, alice.ID, bob.ID.String())
	requireHTTPError(t, err, http.StatusConflict, "Already following this user")

	err = svc.Follow(ctx, alice.ID, uuid.NewString())
	requireHTTPError(t, err, http.StatusNotFound, "User not found")

	err = svc.Follow(ctx, alice.ID, "nope")
	requireHTTPError(t, err, http.StatusNotFound, "User not found")

	assert.Equal(t, int64(1), testhelpers.Count(t, db, &models.Follower{}))
}

func TestUserServiceFollowSelf(t *testing.T) {
	svc, db, _ := setupUserService(t)
	alice := testhelpers.CreateUser(t, db, "Alice")

	err := svc.Follow(context.Background(), alice.ID, alice.ID.String())
	requireHTTPError(t, err, http.StatusBadRequest, "Cannot follow yourself")

	err = svc.Follow(context.Background(), alice.ID, strings.ToUpper(alice.ID.String()))
	requireHTTPError(t, err, http.StatusBadRequest, "Cannot follow yourself")

	assert.Zero(t, testhelpers.Count(t, db, &models.Follower{}))
}

func TestUserServiceFollowSelfAlternateSpellings(t *testing.T) {
	svc, db, _ := setupUserService(t)
	alice := testhelpers.CreateUser(t, db, "Alice")
	id := alice.ID.String()

	spellings := map[string]string{
		"undashed": strings.ReplaceAll(id, "-", ""),
		"urn":      "urn:uuid:" + id,
		"braced":   "{" + id + "}",
		"padded":   "  " + strings.ToUpper(id) + " ",
	}
	for name, target := range spellings {
		t.Run(name, func(t *testing.T) {
			err := svc.Follow(context.Background(), alice.ID, target)
			requireHTTPError(t, err, http.StatusBadRequest, "Cannot follow yourself")
		})
	}

	assert.Zero(t, testhelpers.Count(t, db, &models.Follower{}))
}

func TestUserServiceUnfollow(t *testing.T) {
	svc, db, _ := setupUserService(t)
	ctx := context.Background()

	alice := testhelpers.CreateUser(t, db, "Alice")
	bob := testhelpers.CreateUser(t, db, "Bob")
	testhelpers.CreateFollow(t, db, bob.ID, alice.ID, 0)

	require.NoError(t, svc.Unfollow(ctx, alice.ID, bob.ID.String()))

	err := svc.Unfollow(ctx, alice.ID, bob.ID.String())
	requireHTTPError(t, err, http.StatusNotFound, "Not following this user")

	err = svc.Unfollow(ctx, alice.ID, "bad-id")
	requireHTTPError(t, err, http.StatusNotFound, "Not following this user")
}

func TestUserServiceFollowersAndFollowing(t *testing.T) {
	svc, db, _ := setupUserService(t)
	ctx := context.Background()

	alice := testhelpers.CreateUser(t, db, "Alice")
	bob := testhelpers.CreateUser(t, db, "Bob")
	carol := testhelpers.CreateUser(t, db, "Carol")
	testhelpers.CreateFollow(t, db, alice.ID, bob.ID, 0)
	testhelpers.CreateFollow(t, db, alice.ID, carol.ID, time.Minute)
	testhelpers.CreateFollow(t, db, bob.ID, alice.ID, 2*time.Minute)

	followers, err := svc.Followers(ctx, alice.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 2, followers.Total)
	require.Len(t, followers.Followers, 2)
	assert.Equal(t, carol.ID, followers.Followers[0].ID)
	assert.Equal(t, bob.ID, followers.Followers[1].ID)

	following, err := svc.Following(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, following.Total)
	assert.Equal(t, "Bob", following.Following[0].Name)

	following, err = svc.Following(ctx, carol.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, following.Total)

	nobody := testhelpers.CreateUser(t, db, "Nobody")
	followers, err = svc.Followers(ctx, nobody.ID.String())
	require.NoError(t, err)
	assert.Zero(t, followers.Total)
	assert.NotNil(t, followers.Followers)

	_, err = svc.Followers(ctx, uuid.NewString())
	requireHTTPError(t, err, http.StatusNotFound, "User not found")
}

func TestUserServiceStats(t *testing.T) {
	svc, db, _ := setupUserService(t)
	ctx := context.Background()

	fx := testhelpers.NewRecipeFixture(t, db)
	owner := fx.Owner
	r1 := fx.CreateRecipe(t, db, "One", 0)
	fx.CreateRecipe(t, db, "Two", time.Minute)

	fan := testhelpers.CreateUser(t, db, "Fan")
	testhelpers.CreateFavorite(t, db, owner.ID, r1.ID, 0)
	testhelpers.CreateFollow(t, db, owner.ID, fan.ID, 0)
	testhelpers.CreateFollow(t, db, fan.ID, owner.ID, time.Minute)
	extra := testhelpers.CreateUser(t, db, "Extra")
	testhelpers.CreateFollow(t, db, owner.ID, extra.ID, 2*time.Minute)

	current, err := svc.Current(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, owner.Email, current.Email)
	assert.Equal(t, int64(2), current.RecipesCount)
	assert.Equal(t, int64(1), current.FavoritesCount)
	assert.Equal(t, int64(2), current.FollowersCount)
	assert.Equal(t, int64(1), current.FollowingCount)

	public, err := svc.GetByID(ctx, owner.ID.String())
	require.NoError(t, err)
	assert.Equal(t, owner.Name, public.Name)
	assert.Equal(t, int64(2), public.RecipesCount)
	assert.Equal(t, int64(2), public.FollowersCount)

	_, err = svc.GetByID(ctx, uuid.NewString())
	requireHTTPError(t, err, http.StatusNotFound, "User not found")
}

func TestUserServiceUpdateAvatar(t *testing.T) {
	svc, db, media := setupUserService(t)
	ctx := context.Background()
	user := testhelpers.CreateUser(t, db, "Alice")

	_, err := svc.UpdateAvatar(ctx, user, nil)
	requireHTTPError(t, err, http.StatusBadRequest, "No file uploaded")

	first := "https://cdn.example.com/avatars/1.png"
	second := "https://cdn.example.com/avatars/2.png"
	image := &service.Upload{Data: []byte("img"), ContentType: "image/png"}
	media.On("Upload", mock.Anything, image.Data, "image/png", service.FolderAvatars).Return(first, nil).Once()

	resp, err := svc.UpdateAvatar(ctx, user, image)
	require.NoError(t, err)
	require.NotNil(t, resp.Avatar)
	assert.Equal(t, first, *resp.Avatar)

	media.On("Upload", mock.Anything, image.Data, "image/png", service.FolderAvatars).Return(second, nil).Once()
	media.On("Delete", mock.Anything, first).Return(nil).Once()

	resp, err = svc.UpdateAvatar(ctx, user, image)
	require.NoError(t, err)
	assert.Equal(t, second, *resp.Avatar)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	require.NotNil(t, stored.Avatar)
	assert.Equal(t, second, *stored.Avatar)
}
