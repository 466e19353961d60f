// Package cache provides the Redis client used for short-lived byte caches,
// currently only rendered PDF documents.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// New creates a new Redis client and verifies connectivity.
func New(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("platform/cache: ping: %w", err)
	}

	return client, nil
}

// Bytes is a TTL-bounded byte cache on top of a Redis client. A nil Bytes is
// a no-op cache, which lets callers run without Redis in tests.
type Bytes struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBytes wraps client with a default TTL for stored entries.
func NewBytes(client *redis.Client, ttl time.Duration) *Bytes {
	if client == nil {
		return nil
	}
	return &Bytes{client: client, ttl: ttl}
}

// Get returns the cached value for key, or ok=false on miss or error.
func (b *Bytes) Get(ctx context.Context, key string) ([]byte, bool) {
	if b == nil {
		return nil, false
	}
	data, err := b.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores value under key for the configured TTL. Errors are discarded;
// the cache is best-effort.
func (b *Bytes) Set(ctx context.Context, key string, value []byte) {
	if b == nil {
		return
	}
	_ = b.client.Set(ctx, key, value, b.ttl).Err()
}
