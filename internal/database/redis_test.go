package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/foodies/backend/config"
)

func TestRedisConfigured(t *testing.T) {
	assert.False(t, RedisConfigured(&config.Config{}))
	assert.True(t, RedisConfigured(&config.Config{RedisHost: "cache"}))
	assert.True(t, RedisConfigured(&config.Config{RedisURL: "redis://cache:6379"}))
}

func TestRedisOptionsFromURL(t *testing.T) {
	opts, err := redisOptions(&config.Config{
		RedisURL:  "redis://:s3cret@cache.internal:6380/2",
		RedisHost: "ignored",
		RedisDB:   5,
	})
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, "s3cret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, redisClientName, opts.ClientName)
	assert.Equal(t, redisOpTimeout, opts.ReadTimeout)
}

func TestRedisOptionsURLTakesConfiguredPassword(t *testing.T) {
	opts, err := redisOptions(&config.Config{RedisURL: "redis://cache:6379", RedisPassword: "fallback"})
	require.NoError(t, err)
	assert.Equal(t, "fallback", opts.Password)
}

func TestRedisOptionsFromHost(t *testing.T) {
	opts, err := redisOptions(&config.Config{RedisHost: "cache", RedisPort: "7000", RedisPassword: "pw", RedisDB: 3})
	require.NoError(t, err)
	assert.Equal(t, "cache:7000", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 3, opts.DB)
	assert.Equal(t, redisPoolSize, opts.PoolSize)
	assert.Equal(t, redisPingTimeout, opts.DialTimeout)

	opts, err = redisOptions(&config.Config{RedisHost: "cache"})
	require.NoError(t, err)
	assert.Equal(t, "cache:6379", opts.Addr)
}

func TestRedisOptionsInvalidURL(t *testing.T) {
	_, err := redisOptions(&config.Config{RedisURL: "http://cache:6379"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid REDIS_URL")

	_, err = NewRedisClient(context.Background(), &config.Config{RedisURL: "::not a url"}, zap.NewNop())
	require.Error(t, err)
}
