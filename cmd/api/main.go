package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/foodies/backend/config"
	"github.com/pageza/foodies/backend/internal/database"
	"github.com/pageza/foodies/backend/internal/logger"
	"github.com/pageza/foodies/backend/internal/middleware"
	"github.com/pageza/foodies/backend/internal/repository"
	"github.com/pageza/foodies/backend/internal/router"
	"github.com/pageza/foodies/backend/internal/server"
	"github.com/pageza/foodies/backend/internal/service"
)

const startupTimeout = 15 * time.Second

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
	zap.ReplaceGlobals(zl)
	gin.SetMode(cfg.Environment.GinMode())

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server error", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := database.New(cfg, zl)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	if err := database.RunMigrations(db); err != nil {
		return err
	}

	media := service.DisabledMediaStorage()
	if cfg.Media.Enabled() {
		s3cfg, err := config.NewS3Config(ctx, cfg.Media)
		if err != nil {
			return err
		}
		media = service.NewS3MediaStorage(s3cfg, zl)
	} else {
		zl.Warn("S3_BUCKET not set, image uploads are disabled")
	}

	var limiter gin.HandlerFunc
	if database.RedisConfigured(cfg) {
		rdb, err := database.NewRedisClient(ctx, cfg, zl)
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()
		limiter = middleware.NewAuthRateLimiter(rdb, cfg.AuthRateLimit, zl).Middleware()
	} else {
		zl.Warn("redis not configured, auth rate limiting is disabled")
	}

	repos := repository.New(db)
	engine := router.SetupRouter(router.Dependencies{
		DB:          db,
		Logger:      zl,
		Auth:        service.NewAuthService(repos.Users, cfg.JWTSecret, cfg.JWTTTL, zl),
		Recipes:     service.NewRecipeService(repos, media, zl),
		Users:       service.NewUserService(repos, media, zl),
		References:  service.NewReferenceService(repos),
		AuthLimiter: limiter,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := server.New(cfg.Addr(), engine, zl)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		zl.Info("received signal", zap.String("signal", sig.String()))
	}

	zl.Info("shutting down server")
	if err := srv.Shutdown(context.Background()); err != nil {
		return err
	}
	zl.Info("server stopped")
	return nil
}
