package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/foodies/backend/internal/models"
)

// Models lists every table in dependency order
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Category{},
		&models.Area{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Favorite{},
		&models.Follower{},
		&models.Testimonial{},
	}
}

// RunMigrations creates or updates the schema for both postgres and sqlite
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
