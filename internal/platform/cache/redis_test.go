package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesRoundTrip(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewBytes(client, time.Minute)
	ctx := context.Background()

	_, ok := cache.Get(ctx, "pdf:1:100")
	assert.False(t, ok)

	cache.Set(ctx, "pdf:1:100", []byte("%PDF-1.4 content"))

	data, ok := cache.Get(ctx, "pdf:1:100")
	require.True(t, ok)
	assert.Equal(t, []byte("%PDF-1.4 content"), data)
}

func TestBytesExpiry(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewBytes(client, time.Second)
	ctx := context.Background()

	cache.Set(ctx, "pdf:2:200", []byte("stale"))
	srv.FastForward(2 * time.Second)

	_, ok := cache.Get(ctx, "pdf:2:200")
	assert.False(t, ok)
}

func TestNilBytesIsNoop(t *testing.T) {
	var cache *Bytes
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("value"))
	_, ok := cache.Get(ctx, "key")
	assert.False(t, ok)

	assert.Nil(t, NewBytes(nil, time.Minute))
}
