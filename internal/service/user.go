package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pageza/foodies/backend/internal/apperrors"
	"github.com/pageza/foodies/backend/internal/models"
	"github.com/pageza/foodies/backend/internal/repository"
	"github.com/pageza/foodies/backend/internal/types"
)

const (
	msgSelfFollow       = "Cannot follow yourself"
	msgAlreadyFollowing = "Already following this user"
	msgNotFollowing     = "Not following this user"
)

type UserService struct {
	users     *repository.UserRepository
	recipes   *repository.RecipeRepository
	favorites *repository.FavoriteRepository
	followers *repository.FollowerRepository
	media     MediaStorage
	log       *zap.Logger
}

func NewUserService(repos *repository.Repositories, media MediaStorage, log *zap.Logger) *UserService {
	return &UserService{
		users:     repos.Users,
		recipes:   repos.Recipes,
		favorites: repos.Favorites,
		followers: repos.Followers,
		media:     media,
		log:       log.Named("users"),
	}
}

// Current returns the authenticated user's profile with all four counters
func (s *UserService) Current(ctx context.Context, user *models.User) (*types.CurrentUserResponse, error) {
	resp := &types.CurrentUserResponse{UserResponse: types.NewUserResponse(user)}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		resp.RecipesCount, err = s.recipes.CountByOwner(gctx, user.ID)
		return err
	})
	g.Go(func() (err error) {
		resp.FavoritesCount, err = s.favorites.CountByUser(gctx, user.ID)
		return err
	})
	g.Go(func() (err error) {
		resp.FollowersCount, err = s.followers.CountFollowers(gctx, user.ID)
		return err
	})
	g.Go(func() (err error) {
		resp.FollowingCount, err = s.followers.CountFollowing(gctx, user.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to count user stats: %w", err)
	}
	return resp, nil
}

// GetByID returns another user's profile with recipe and follower counts
func (s *UserService) GetByID(ctx context.Context, id string) (*types.PublicUserResponse, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := &types.PublicUserResponse{UserResponse: types.NewUserResponse(user)}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		resp.RecipesCount, err = s.recipes.CountByOwner(gctx, user.ID)
		return err
	})
	g.Go(func() (err error) {
		resp.FollowersCount, err = s.followers.CountFollowers(gctx, user.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to count user stats: %w", err)
	}
	return resp, nil
}

// isSelf compares parsed ids so any spelling uuid.Parse accepts matches
// the caller's own id.
func isSelf(currentID uuid.UUID, targetID string) bool {
	targetID = strings.TrimSpace(targetID)
	if id, err := uuid.Parse(targetID); err == nil {
		return id == currentID
	}
	return strings.EqualFold(targetID, currentID.String())
}

// Follow makes currentID a follower of targetID
func (s *UserService) Follow(ctx context.Context, currentID uuid.UUID, targetID string) error {
	if isSelf(currentID, targetID) {
		return apperrors.BadRequest(msgSelfFollow)
	}
	target, err := s.findUser(ctx, targetID)
	if err != nil {
		return err
	}

	already, err := s.followers.Exists(ctx, target.ID, currentID)
	if err != nil {
		return fmt.Errorf("failed to check follow: %w", err)
	}
	if already {
		return apperrors.Conflict(msgAlreadyFollowing)
	}

	if err := s.followers.Create(ctx, &models.Follower{UserID: target.ID, FollowerID: currentID}); err != nil {
		if repository.IsDuplicate(err) {
			return apperrors.Conflict(msgAlreadyFollowing)
		}
		return fmt.Errorf("failed to follow user: %w", err)
	}
	return nil
}

func (s *UserService) Unfollow(ctx context.Context, currentID uuid.UUID, targetID string) error {
	id, err := uuid.Parse(targetID)
	if err != nil {
		return apperrors.NotFound(msgNotFollowing)
	}
	removed, err := s.followers.Delete(ctx, id, currentID)
	if err != nil {
		return fmt.Errorf("failed to unfollow user: %w", err)
	}
	if removed == 0 {
		return apperrors.NotFound(msgNotFollowing)
	}
	return nil
}

func (s *UserService) Followers(ctx context.Context, userID string) (*types.FollowersResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	users, err := s.followers.Followers(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}
	summaries := types.NewUserSummaries(users)
	return &types.FollowersResponse{Followers: summaries, Total: len(summaries)}, nil
}

func (s *UserService) Following(ctx context.Context, currentID uuid.UUID) (*types.FollowingResponse, error) {
	users, err := s.followers.Following(ctx, currentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}
	summaries := types.NewUserSummaries(users)
	return &types.FollowingResponse{Following: summaries, Total: len(summaries)}, nil
}

// UpdateAvatar uploads image and makes it the user's avatar. The previous
// avatar object is released afterwards.
func (s *UserService) UpdateAvatar(ctx context.Context, user *models.User, image *Upload) (*types.UserResponse, error) {
	if image == nil {
		return nil, apperrors.BadRequest("No file uploaded")
	}

	url, err := s.media.Upload(ctx, image.Data, image.ContentType, FolderAvatars)
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}
	if err := s.users.SetAvatar(ctx, user.ID, url); err != nil {
		return nil, fmt.Errorf("failed to save avatar: %w", err)
	}

	previous := user.Avatar
	user.Avatar = &url
	if previous != nil && *previous != "" {
		if err := s.media.Delete(ctx, *previous); err != nil {
			s.log.Warn("failed to delete previous avatar", zap.String("url", *previous), zap.Error(err))
		}
	}

	resp := types.NewUserResponse(user)
	return &resp, nil
}

func (s *UserService) findUser(ctx context.Context, id string) (*models.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NotFound(msgUserNotFound)
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NotFound(msgUserNotFound)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}
