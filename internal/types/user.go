package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/pageza/foodies/backend/internal/models"
)

// UserSummary is the public identity shown on recipes, follows and testimonials
type UserSummary struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar *string   `json:"avatar"`
}

type UserResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar *string   `json:"avatar"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type CurrentUserResponse struct {
	UserResponse
	RecipesCount   int64 `json:"recipesCount"`
	FavoritesCount int64 `json:"favoritesCount"`
	FollowersCount int64 `json:"followersCount"`
	FollowingCount int64 `json:"followingCount"`
}

type PublicUserResponse struct {
	UserResponse
	RecipesCount   int64 `json:"recipesCount"`
	FollowersCount int64 `json:"followersCount"`
}

type FollowersResponse struct {
	Followers []UserSummary `json:"followers"`
	Total     int           `json:"total"`
}

type FollowingResponse struct {
	Following []UserSummary `json:"following"`
	Total     int           `json:"total"`
}

type TestimonialView struct {
	ID          uuid.UUID    `json:"id"`
	Testimonial string       `json:"testimonial"`
	UserID      uuid.UUID    `json:"userId"`
	CreatedAt   time.Time    `json:"createdAt"`
	User        *UserSummary `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Avatar: u.Avatar}
}

func NewUserSummary(u *models.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}

// NewUserSummaries never returns nil so empty lists encode as []
func NewUserSummaries(users []models.User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for i := range users {
		out = append(out, *NewUserSummary(&users[i]))
	}
	return out
}

func NewTestimonialView(t *models.Testimonial) TestimonialView {
	return TestimonialView{
		ID:          t.ID,
		Testimonial: t.Testimonial,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		User:        NewUserSummary(t.User),
	}
}
