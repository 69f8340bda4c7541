// Package repository is the access layer over the relational store. Each
// repository owns the queries for one entity family; join plans are spelled
// out on the methods that assemble multi-table views.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrUnknownReference is returned when a write names a row that does not exist
var ErrUnknownReference = errors.New("referenced record does not exist")

// IsNotFound reports whether err means the requested row is absent
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate reports whether err is a unique constraint violation
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Repositories groups every repository built on one store handle
type Repositories struct {
	Users      *UserRepository
	Recipes    *RecipeRepository
	Favorites  *FavoriteRepository
	Followers  *FollowerRepository
	References *ReferenceRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(db),
		Recipes:    NewRecipeRepository(db),
		Favorites:  NewFavoriteRepository(db),
		Followers:  NewFollowerRepository(db),
		References: NewReferenceRepository(db),
	}
}

// ownerPublicFields limits preloaded owners to their public identity
func ownerPublicFields(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "avatar")
}
