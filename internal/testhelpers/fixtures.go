package testhelpers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/foodies/backend/internal/models"
)

// BaseTime anchors fixture timestamps so ordering assertions are deterministic
var BaseTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func CreateUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{
		Name:     name,
		Email:    uuid.NewString()[:8] + "@example.com",
		Password: "$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func CreateCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return c
}

func CreateArea(t *testing.T, db *gorm.DB, name string) *models.Area {
	t.Helper()
	a := &models.Area{Name: name}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("failed to create area: %v", err)
	}
	return a
}

func CreateIngredient(t *testing.T, db *gorm.DB, name string) *models.Ingredient {
	t.Helper()
	i := &models.Ingredient{Name: name}
	if err := db.Create(i).Error; err != nil {
		t.Fatalf("failed to create ingredient: %v", err)
	}
	return i
}

// RecipeFixture bundles the reference rows a recipe needs
type RecipeFixture struct {
	Owner    *models.User
	Category *models.Category
	Area     *models.Area
}

func NewRecipeFixture(t *testing.T, db *gorm.DB) RecipeFixture {
	t.Helper()
	return RecipeFixture{
		Owner:    CreateUser(t, db, "Owner"),
		Category: CreateCategory(t, db, "Dessert"),
		Area:     CreateArea(t, db, "Italian"),
	}
}

// CreateRecipe inserts a recipe created offset after BaseTime with the given ingredients
func (f RecipeFixture) CreateRecipe(t *testing.T, db *gorm.DB, title string, offset time.Duration, ingredients ...*models.Ingredient) *models.Recipe {
	t.Helper()
	created := BaseTime.Add(offset)
	r := &models.Recipe{
		Title:        title,
		Instructions: "Mix everything and bake.",
		OwnerID:      f.Owner.ID,
		CategoryID:   f.Category.ID,
		AreaID:       f.Area.ID,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
	for _, ing := range ingredients {
		r.Ingredients = append(r.Ingredients, models.RecipeIngredient{IngredientID: ing.ID, Measure: "1 cup"})
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("failed to create recipe: %v", err)
	}
	return r
}

func CreateFavorite(t *testing.T, db *gorm.DB, userID, recipeID uuid.UUID, offset time.Duration) {
	t.Helper()
	fav := &models.Favorite{UserID: userID, RecipeID: recipeID, CreatedAt: BaseTime.Add(offset)}
	if err := db.Create(fav).Error; err != nil {
		t.Fatalf("failed to create favorite: %v", err)
	}
}

func CreateFollow(t *testing.T, db *gorm.DB, userID, followerID uuid.UUID, offset time.Duration) {
	t.Helper()
	f := &models.Follower{UserID: userID, FollowerID: followerID, CreatedAt: BaseTime.Add(offset)}
	if err := db.Create(f).Error; err != nil {
		t.Fatalf("failed to create follow: %v", err)
	}
}

func Count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	return n
}
