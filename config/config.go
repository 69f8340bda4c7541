package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration
	DBDriver    string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	SQLitePath  string

	// Redis configuration
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT configuration
	JWTSecret    string
	JWTExpiresIn string
	JWTTTL       time.Duration

	// Requests per minute per client IP on register and login
	AuthRateLimit int

	CORSOrigins []string
	LogLevel    string

	Media MediaConfig
}

// MediaConfig describes the S3 compatible bucket used for uploaded images
type MediaConfig struct {
	Bucket          string
	Region          string
	Endpoint        string
	PublicURL       string
	AccessKeyID     string
	SecretAccessKey string
	ForcePathStyle  bool
}

// Enabled reports whether a bucket has been configured
func (m MediaConfig) Enabled() bool {
	return m.Bucket != ""
}

// secretKeys are read from SECRETS_DIR and take precedence over env values
var secretKeys = []string{
	"jwt_secret",
	"db_password",
	"redis_password",
	"aws_secret_access_key",
}

// LoadConfig reads configuration from environment variables and docker secrets
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	for _, name := range secretKeys {
		if value := readSecret(name); value != "" {
			v.Set(name, value)
		}
	}

	cfg := &Config{
		Environment: GetEnvironment(),

		ServerHost: v.GetString("server_host"),
		ServerPort: v.GetString("server_port"),

		DBDriver:    strings.ToLower(v.GetString("db_driver")),
		DatabaseURL: v.GetString("database_url"),
		DBHost:      v.GetString("db_host"),
		DBPort:      v.GetString("db_port"),
		DBUser:      v.GetString("db_user"),
		DBPassword:  v.GetString("db_password"),
		DBName:      v.GetString("db_name"),
		DBSSLMode:   v.GetString("db_ssl_mode"),
		SQLitePath:  v.GetString("sqlite_path"),

		RedisURL:      v.GetString("redis_url"),
		RedisHost:     v.GetString("redis_host"),
		RedisPort:     v.GetString("redis_port"),
		RedisPassword: v.GetString("redis_password"),
		RedisDB:       v.GetInt("redis_db"),

		JWTSecret:    v.GetString("jwt_secret"),
		JWTExpiresIn: v.GetString("jwt_expires_in"),

		AuthRateLimit: v.GetInt("rate_limit_auth"),

		CORSOrigins: splitList(v.GetString("cors_origin")),
		LogLevel:    strings.ToLower(v.GetString("log_level")),

		Media: MediaConfig{
			Bucket:          v.GetString("s3_bucket"),
			Region:          v.GetString("aws_region"),
			Endpoint:        v.GetString("s3_endpoint"),
			PublicURL:       v.GetString("s3_public_url"),
			AccessKeyID:     v.GetString("aws_access_key_id"),
			SecretAccessKey: v.GetString("aws_secret_access_key"),
			ForcePathStyle:  v.GetBool("s3_force_path_style"),
		},
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	ttl, _ := ParseExpiry(cfg.JWTExpiresIn)
	cfg.JWTTTL = ttl

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_host", "")
	v.SetDefault("server_port", "3000")

	v.SetDefault("db_driver", "postgres")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_ssl_mode", "disable")
	v.SetDefault("sqlite_path", "foodies.db")

	v.SetDefault("redis_db", 0)

	v.SetDefault("jwt_expires_in", "7d")
	v.SetDefault("rate_limit_auth", 20)

	v.SetDefault("cors_origin", "*")
	v.SetDefault("log_level", "info")

	v.SetDefault("aws_region", "us-east-1")
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// PostgresDSN builds a connection string, preferring DATABASE_URL when set
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// ParseExpiry accepts Go durations plus a day suffix, e.g. "7d" or "12h"
func ParseExpiry(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid day count %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("expiry must be positive, got %q", s)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
