package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/pageza/foodies/backend/config"
	"github.com/pageza/foodies/backend/internal/database"
	"github.com/pageza/foodies/backend/internal/logger"
	"github.com/pageza/foodies/backend/internal/seed"
	"github.com/pageza/foodies/backend/internal/service"
)

func main() {
	dataDir := flag.String("data", "seed", "directory holding the JSON exports")
	imagesDir := flag.String("images", "seed/category_images", "directory holding category images")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	zl, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx := context.Background()

	db, err := database.New(cfg, zl)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if err := database.RunMigrations(db); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}

	var media service.MediaStorage
	if cfg.Media.Enabled() {
		s3cfg, err := config.NewS3Config(ctx, cfg.Media)
		if err != nil {
			zl.Fatal("failed to initialize S3", zap.Error(err))
		}
		media = service.NewS3MediaStorage(s3cfg, zl)
	} else {
		zl.Warn("S3_BUCKET not set, category images are skipped")
	}

	report, err := seed.NewSeeder(db, media, *dataDir, *imagesDir, zl).Run(ctx)
	if err != nil {
		zl.Fatal("seeding failed", zap.Error(err))
	}
	zl.Info("seeding completed",
		zap.Int("created", report.Created()),
		zap.Int("users", report.Users.Created),
		zap.Int("categories", report.Categories.Created),
		zap.Int("categories_updated", report.Categories.Updated),
		zap.Int("areas", report.Areas.Created),
		zap.Int("ingredients", report.Ingredients.Created),
		zap.Int("recipes", report.Recipes.Created),
		zap.Int("recipes_skipped", report.Recipes.Skipped),
		zap.Int("testimonials", report.Testimonials.Created),
	)
}
