package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Recipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title        string    `gorm:"size:200;not null"`
	Instructions string    `gorm:"type:text;not null"`
	Thumb        *string   `gorm:"size:500"`
	Time         *string   `gorm:"size:50"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AreaID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time

	Owner       *User              `gorm:"foreignKey:OwnerID"`
	Category    *Category          `gorm:"foreignKey:CategoryID"`
	Area        *Area              `gorm:"foreignKey:AreaID"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Favorites   []Favorite         `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

func (Recipe) TableName() string {
	return "recipes"
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RecipeIngredient links a recipe to an ingredient with a free text measure
type RecipeIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipeID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_ingredient"`
	IngredientID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_ingredient;index"`
	Measure      string    `gorm:"size:100;not null"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

func (ri *RecipeIngredient) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}
