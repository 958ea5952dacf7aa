// internal/pkg/ratelimit/redis_limiter.go
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window request counter stored in Redis.
type RateLimiter struct {
	client      *redis.Client
	maxRequests int64
	window      time.Duration
}

func NewRateLimiter(client *redis.Client, maxRequests int64, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client:      client,
		maxRequests: maxRequests,
		window:      window,
	}
}

// Allow counts one request for clientKey on endpoint and reports whether it fits in the window.
func (r *RateLimiter) Allow(ctx context.Context, clientKey, endpoint string) (bool, int64, error) {
	key := fmt.Sprintf("ratelimit:api:%s:%s", clientKey, endpoint)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to increment API rate limit: %w", err)
	}

	// Set expiration on first request of the window
	if count == 1 {
		if err := r.client.Expire(ctx, key, r.window).Err(); err != nil {
			return false, 0, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	remaining := r.maxRequests - count
	if remaining < 0 {
		remaining = 0
	}

	return count <= r.maxRequests, remaining, nil
}
