package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit/pkg/redis"
)

func TestIsConfigured(t *testing.T) {
	t.Parallel()

	assert.False(t, redis.Config{}.IsConfigured())
	assert.True(t, redis.Config{ConnectionURL: "redis://localhost:6379/0"}.IsConfigured())
}

func TestConnect(t *testing.T) {
	t.Parallel()

	t.Run("empty url", func(t *testing.T) {
		t.Parallel()

		_, err := redis.Connect(context.Background(), redis.Config{})
		assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
	})

	t.Run("unparseable url", func(t *testing.T) {
		t.Parallel()

		_, err := redis.Connect(context.Background(), redis.Config{
			ConnectionURL:  "not-a-redis-url",
			RetryAttempts:  1,
			RetryInterval:  time.Millisecond,
			ConnectTimeout: time.Second,
		})
		assert.ErrorIs(t, err, redis.ErrParseConnString)
	})

	t.Run("unreachable server", func(t *testing.T) {
		t.Parallel()

		// TEST-NET-1 address; nothing listens there.
		_, err := redis.Connect(context.Background(), redis.Config{
			ConnectionURL:  "redis://192.0.2.1:6379/0",
			RetryAttempts:  1,
			RetryInterval:  time.Millisecond,
			ConnectTimeout: 200 * time.Millisecond,
		})
		assert.ErrorIs(t, err, redis.ErrNotReady)
	})
}
