package config

import (
	"errors"
	"fmt"
	"slices"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	supportedDrivers = []string{"postgres", "sqlite"}
	validLogLevels   = []string{"debug", "info", "warn", "error"}
)

// ValidateConfig checks that the configuration can start the application.
// All problems are reported at once, joined into a single error.
func ValidateConfig(cfg *Config) error {
	var errs []error

	if cfg.JWTSecret == "" {
		errs = append(errs, ValidationError{"JWT_SECRET", "is required"})
	}
	if _, err := ParseExpiry(cfg.JWTExpiresIn); err != nil {
		errs = append(errs, ValidationError{"JWT_EXPIRES_IN", err.Error()})
	}

	if !slices.Contains(supportedDrivers, cfg.DBDriver) {
		errs = append(errs, ValidationError{"DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}
	if cfg.DBDriver == "postgres" && cfg.DatabaseURL == "" {
		if cfg.DBHost == "" {
			errs = append(errs, ValidationError{"DB_HOST", "is required when DATABASE_URL is not set"})
		}
		if cfg.DBName == "" {
			errs = append(errs, ValidationError{"DB_NAME", "is required when DATABASE_URL is not set"})
		}
	}
	if cfg.DBDriver == "sqlite" && cfg.SQLitePath == "" {
		errs = append(errs, ValidationError{"SQLITE_PATH", "is required for the sqlite driver"})
	}

	if !slices.Contains(validLogLevels, cfg.LogLevel) {
		errs = append(errs, ValidationError{"LOG_LEVEL", fmt.Sprintf("must be one of %v", validLogLevels)})
	}
	if cfg.AuthRateLimit < 0 {
		errs = append(errs, ValidationError{"RATE_LIMIT_AUTH", "must not be negative"})
	}

	return errors.Join(errs...)
}
