package database

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/foodies/backend/config"
)

const (
	redisClientName  = "foodies-api"
	redisPingTimeout = 5 * time.Second
	redisOpTimeout   = 500 * time.Millisecond
	redisPoolSize    = 10
)

// RedisConfigured reports whether the configuration names a redis instance
func RedisConfigured(cfg *config.Config) bool {
	return cfg.RedisURL != "" || cfg.RedisHost != ""
}

// redisOptions resolves connection options. REDIS_URL wins over the
// host/port pair; an explicit REDIS_PASSWORD fills in a URL without one.
// Timeouts are short because the only caller is the auth rate limiter,
// which fails open.
func redisOptions(cfg *config.Config) (*redis.Options, error) {
	var opts *redis.Options
	if cfg.RedisURL != "" {
		parsed, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		opts = parsed
		if opts.Password == "" {
			opts.Password = cfg.RedisPassword
		}
	} else {
		port := cfg.RedisPort
		if port == "" {
			port = "6379"
		}
		opts = &redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, port),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}
	}

	opts.ClientName = redisClientName
	opts.DialTimeout = redisPingTimeout
	opts.ReadTimeout = redisOpTimeout
	opts.WriteTimeout = redisOpTimeout
	if opts.PoolSize == 0 {
		opts.PoolSize = redisPoolSize
	}
	return opts, nil
}

// NewRedisClient connects the rate limiter backend and verifies it with a ping
func NewRedisClient(ctx context.Context, cfg *config.Config, log *zap.Logger) (*redis.Client, error) {
	opts, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}

	log.Info("redis ready", zap.String("addr", opts.Addr), zap.Int("db", opts.DB))
	return client, nil
}
