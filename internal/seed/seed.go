// Package seed imports the legacy MongoDB exports. Every legacy id is mapped
// to a v5 UUID, so running the import again creates nothing new.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/foodies/backend/internal/models"
	"github.com/pageza/foodies/backend/internal/repository"
	"github.com/pageza/foodies/backend/internal/service"
)

// DefaultPassword is given to every imported account
const DefaultPassword = "password123"

// categoryImageOverrides lists image files not named after their category
var categoryImageOverrides = map[string]string{
	"Dessert": "Desserts.jpg",
}

// Counts tracks one entity kind
type Counts struct {
	Created int
	Skipped int
	Updated int
}

// Report summarizes a seeding run
type Report struct {
	Users        Counts
	Categories   Counts
	Areas        Counts
	Ingredients  Counts
	Recipes      Counts
	Testimonials Counts
}

// Created is the total number of inserted rows across all kinds
func (r Report) Created() int {
	return r.Users.Created + r.Categories.Created + r.Areas.Created +
		r.Ingredients.Created + r.Recipes.Created + r.Testimonials.Created
}

type Seeder struct {
	db        *gorm.DB
	recipes   *repository.RecipeRepository
	media     service.MediaStorage
	dataDir   string
	imagesDir string
	log       *zap.Logger
	cost      int
}

// NewSeeder reads exports from dataDir. Category images are read from
// imagesDir and uploaded through media; a nil media skips images.
func NewSeeder(db *gorm.DB, media service.MediaStorage, dataDir, imagesDir string, log *zap.Logger) *Seeder {
	return &Seeder{
		db:        db,
		recipes:   repository.NewRecipeRepository(db),
		media:     media,
		dataDir:   dataDir,
		imagesDir: imagesDir,
		log:       log.Named("seed"),
		cost:      bcrypt.DefaultCost,
	}
}

// ids collects the mappings later steps resolve references through
type ids struct {
	users       map[LegacyID]uuid.UUID
	categories  map[string]uuid.UUID
	areas       map[string]uuid.UUID
	ingredients map[LegacyID]uuid.UUID
}

// Run executes every step in dependency order
func (s *Seeder) Run(ctx context.Context) (*Report, error) {
	report := &Report{}
	known := &ids{
		users:       map[LegacyID]uuid.UUID{},
		categories:  map[string]uuid.UUID{},
		areas:       map[string]uuid.UUID{},
		ingredients: map[LegacyID]uuid.UUID{},
	}

	steps := []struct {
		name string
		run  func(context.Context, *ids, *Report) error
	}{
		{"users", s.seedUsers},
		{"categories", s.seedCategories},
		{"areas", s.seedAreas},
		{"ingredients", s.seedIngredients},
		{"recipes", s.seedRecipes},
		{"testimonials", s.seedTestimonials},
	}
	for _, step := range steps {
		if err := step.run(ctx, known, report); err != nil {
			return report, fmt.Errorf("seed %s: %w", step.name, err)
		}
		s.log.Info("seeded", zap.String("step", step.name))
	}
	return report, nil
}

func (s *Seeder) seedUsers(ctx context.Context, known *ids, report *Report) error {
	var records []userRecord
	if err := s.load("users.json", &records); err != nil {
		return err
	}

	var hash []byte
	for _, rec := range records {
		id := rec.ID.UUID()
		known.users[rec.ID] = id

		exists, err := s.exists(ctx, &models.User{}, id)
		if err != nil {
			return err
		}
		if exists {
			report.Users.Skipped++
			continue
		}

		if hash == nil {
			if hash, err = bcrypt.GenerateFromPassword([]byte(DefaultPassword), s.cost); err != nil {
				return fmt.Errorf("hash default password: %w", err)
			}
		}
		user := &models.User{ID: id, Name: rec.Name, Email: rec.Email, Avatar: rec.Avatar, Password: string(hash)}
		if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
			return fmt.Errorf("create user %s: %w", rec.Email, err)
		}
		report.Users.Created++
	}
	return nil
}

func (s *Seeder) seedCategories(ctx context.Context, known *ids, report *Report) error {
	var records []categoryRecord
	if err := s.load("categories.json", &records); err != nil {
		return err
	}

	for _, rec := range records {
		id := rec.ID.UUID()
		known.categories[rec.Name] = id

		var existing models.Category
		err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error
		switch {
		case err == nil:
			if existing.Thumb != nil {
				report.Categories.Skipped++
				continue
			}
			thumb := s.uploadCategoryImage(ctx, rec.Name)
			if thumb == nil {
				report.Categories.Skipped++
				continue
			}
			if err := s.db.WithContext(ctx).Model(&existing).Update("thumb", *thumb).Error; err != nil {
				return fmt.Errorf("update category %s: %w", rec.Name, err)
			}
			report.Categories.Updated++
		case errors.Is(err, gorm.ErrRecordNotFound):
			category := &models.Category{ID: id, Name: rec.Name, Thumb: s.uploadCategoryImage(ctx, rec.Name)}
			if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
				return fmt.Errorf("create category %s: %w", rec.Name, err)
			}
			report.Categories.Created++
		default:
			return err
		}
	}
	return nil
}

// uploadCategoryImage returns nil when there is no storage, no file or the upload fails
func (s *Seeder) uploadCategoryImage(ctx context.Context, name string) *string {
	if s.media == nil || s.imagesDir == "" {
		return nil
	}
	file, ok := categoryImageOverrides[name]
	if !ok {
		file = name + ".jpg"
	}
	data, err := os.ReadFile(filepath.Join(s.imagesDir, file))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("failed to read category image", zap.String("category", name), zap.Error(err))
		}
		return nil
	}

	url, err := s.media.Upload(ctx, data, mimetype.Detect(data).String(), service.FolderCategories)
	if err != nil {
		s.log.Warn("failed to upload category image", zap.String("category", name), zap.Error(err))
		return nil
	}
	return &url
}

func (s *Seeder) seedAreas(ctx context.Context, known *ids, report *Report) error {
	var records []areaRecord
	if err := s.load("areas.json", &records); err != nil {
		return err
	}

	for _, rec := range records {
		id := rec.ID.UUID()
		known.areas[rec.Name] = id

		created, err := s.createIfMissing(ctx, id, &models.Area{ID: id, Name: rec.Name})
		if err != nil {
			return fmt.Errorf("create area %s: %w", rec.Name, err)
		}
		tally(&report.Areas, created)
	}
	return nil
}

func (s *Seeder) seedIngredients(ctx context.Context, known *ids, report *Report) error {
	var records []ingredientRecord
	if err := s.load("ingredients.json", &records); err != nil {
		return err
	}

	for _, rec := range records {
		id := rec.ID.UUID()
		known.ingredients[rec.ID] = id

		ingredient := &models.Ingredient{ID: id, Name: rec.Name, Description: optional(rec.Desc), Img: optional(rec.Img)}
		created, err := s.createIfMissing(ctx, id, ingredient)
		if err != nil {
			return fmt.Errorf("create ingredient %s: %w", rec.Name, err)
		}
		tally(&report.Ingredients, created)
	}
	return nil
}

func (s *Seeder) seedRecipes(ctx context.Context, known *ids, report *Report) error {
	var records []recipeRecord
	if err := s.load("recipes.json", &records); err != nil {
		return err
	}

	for _, rec := range records {
		id := rec.ID.UUID()
		exists, err := s.exists(ctx, &models.Recipe{}, id)
		if err != nil {
			return err
		}
		if exists {
			report.Recipes.Skipped++
			continue
		}

		ownerID, okOwner := known.users[rec.Owner]
		categoryID, okCategory := known.categories[rec.Category]
		areaID, okArea := known.areas[rec.Area]
		if !okOwner || !okCategory || !okArea {
			s.log.Warn("skipping recipe with missing reference", zap.String("title", rec.Title))
			report.Recipes.Skipped++
			continue
		}

		recipe := &models.Recipe{
			ID:           id,
			Title:        rec.Title,
			Instructions: rec.Instructions,
			Thumb:        optional(rec.Thumb),
			OwnerID:      ownerID,
			CategoryID:   categoryID,
			AreaID:       areaID,
		}
		if rec.Time != "" {
			t := rec.Time + " min"
			recipe.Time = &t
		}

		if err := s.recipes.CreateWithIngredients(ctx, recipe, recipeIngredients(rec, known)); err != nil {
			return fmt.Errorf("create recipe %s: %w", rec.Title, err)
		}
		report.Recipes.Created++
	}
	return nil
}

// recipeIngredients drops unknown ingredients and repeats of one ingredient
func recipeIngredients(rec recipeRecord, known *ids) []models.RecipeIngredient {
	out := make([]models.RecipeIngredient, 0, len(rec.Ingredients))
	seen := make(map[uuid.UUID]struct{}, len(rec.Ingredients))
	for _, ing := range rec.Ingredients {
		id, ok := known.ingredients[ing.ID]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, models.RecipeIngredient{IngredientID: id, Measure: ing.Measure})
	}
	return out
}

func (s *Seeder) seedTestimonials(ctx context.Context, known *ids, report *Report) error {
	var records []testimonialRecord
	if err := s.load("testimonials.json", &records); err != nil {
		return err
	}

	for _, rec := range records {
		userID, ok := known.users[rec.Owner]
		if !ok {
			s.log.Warn("skipping testimonial with missing user", zap.String("owner", string(rec.Owner)))
			report.Testimonials.Skipped++
			continue
		}

		id := rec.ID.UUID()
		created, err := s.createIfMissing(ctx, id, &models.Testimonial{ID: id, Testimonial: rec.Testimonial, UserID: userID})
		if err != nil {
			return fmt.Errorf("create testimonial: %w", err)
		}
		tally(&report.Testimonials, created)
	}
	return nil
}

// load decodes file from the data directory. A missing file is an empty set.
func (s *Seeder) load(file string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dataDir, file))
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Info("no export found", zap.String("file", file))
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", file, err)
	}
	return nil
}

func (s *Seeder) exists(ctx context.Context, model interface{}, id uuid.UUID) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (s *Seeder) createIfMissing(ctx context.Context, id uuid.UUID, row interface{}) (bool, error) {
	exists, err := s.exists(ctx, row, id)
	if err != nil || exists {
		return false, err
	}
	return true, s.db.WithContext(ctx).Create(row).Error
}

func tally(c *Counts, created bool) {
	if created {
		c.Created++
	} else {
		c.Skipped++
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
