package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, max int64, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRateLimiter(client, max, window), mr
}

func TestRateLimiter_Allow(t *testing.T) {
	limiter, _ := newLimiter(t, 2, time.Minute)
	ctx := context.Background()

	ok, remaining, err := limiter.Allow(ctx, "10.0.0.1", "/api/customers")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(1), remaining)

	ok, remaining, err = limiter.Allow(ctx, "10.0.0.1", "/api/customers")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(0), remaining)

	ok, remaining, err = limiter.Allow(ctx, "10.0.0.1", "/api/customers")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(0), remaining)

	// Another client has its own counter.
	ok, _, err = limiter.Allow(ctx, "10.0.0.2", "/api/customers")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	limiter, mr := newLimiter(t, 1, 30*time.Second)
	ctx := context.Background()

	ok, _, err := limiter.Allow(ctx, "c", "e")
	require.NoError(t, err)
	require.True(t, ok)

	ok, _, err = limiter.Allow(ctx, "c", "e")
	require.NoError(t, err)
	require.False(t, ok)

	mr.FastForward(31 * time.Second)

	ok, _, err = limiter.Allow(ctx, "c", "e")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimiter_RedisDown(t *testing.T) {
	limiter, mr := newLimiter(t, 1, time.Minute)
	mr.Close()

	_, _, err := limiter.Allow(context.Background(), "c", "e")
	assert.Error(t, err)
}
