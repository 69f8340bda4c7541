package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/pageza/foodies/backend/config"
	"github.com/pageza/foodies/backend/internal/database"
	"github.com/pageza/foodies/backend/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	zl, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.New(cfg, zl)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if err := database.RunMigrations(db); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}
	zl.Info("migrations applied", zap.Int("models", len(database.Models())))
}
