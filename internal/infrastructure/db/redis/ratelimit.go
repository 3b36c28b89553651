package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// counterCmds is the slice of Redis commands the counter needs.
type counterCmds interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	ExpireNX(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RequestCounter implements a fixed-window request counter backed by Redis.
// Key format: ratelimit:<client>. The counter resets when the key expires.
type RequestCounter struct {
	client counterCmds
	window time.Duration
}

// NewRequestCounter creates a RequestCounter with the given window length.
func NewRequestCounter(client *redis.Client, window time.Duration) *RequestCounter {
	if window <= 0 {
		window = time.Hour
	}
	return &RequestCounter{client: client, window: window}
}

// Incr increments the counter for this client and returns the number of
// requests seen in the current window, including this one. The window expiry
// is re-attempted on every increment: ExpireNX only sets a TTL when the key
// has none, so a TTL lost to a transient failure heals on the next request
// instead of leaving a counter that grows forever and never resets.
func (c *RequestCounter) Incr(ctx context.Context, clientKey string) (int64, error) {
	key := c.key(clientKey)

	n, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("rate count: %w", err)
	}

	if err := c.client.ExpireNX(ctx, key, c.window).Err(); err != nil {
		if n == 1 {
			// A fresh key without a TTL would never reset. Drop it so the
			// window restarts cleanly once the store recovers.
			_ = c.client.Del(ctx, key)
		}
		return n, fmt.Errorf("rate window: %w", err)
	}

	return n, nil
}

func (c *RequestCounter) key(clientKey string) string {
	return "ratelimit:" + clientKey
}
