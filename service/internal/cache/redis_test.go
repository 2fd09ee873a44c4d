// internal/cache/redis_test.go
package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tjwilson90/turbo-hearts-sub000/service/internal/config"
)

// testRedis connects to HEARTS_TEST_REDIS_ADDR, skipping when it is unset.
func testRedis(t *testing.T) *Redis {
	t.Helper()
	addr := os.Getenv("HEARTS_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("HEARTS_TEST_REDIS_ADDR not set")
	}
	cfg := config.Default()
	cfg.RedisAddr = addr
	cfg.CacheTTL = time.Minute
	r := NewRedis(cfg)
	t.Cleanup(func() { _ = r.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, r.Ping(ctx))
	return r
}

func TestRedisRoundTrip(t *testing.T) {
	r := testRedis(t)
	ctx := context.Background()
	key := "hearts:test:" + uuid.NewString()
	t.Cleanup(func() { _ = r.Delete(context.Background(), key) })

	_, ok, err := r.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok, "fresh key should miss")

	require.NoError(t, r.Set(ctx, key, []byte{0x2c, 0, 0, 0x10, 0}))
	data, ok, err := r.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{0x2c, 0, 0, 0x10, 0}, data)

	ttl, err := r.client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestRedisUnreachable(t *testing.T) {
	cfg := config.Default()
	cfg.RedisAddr = "127.0.0.1:1"
	r := NewRedis(cfg)
	defer r.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, _, err := r.Get(ctx, "hearts:test:unreachable")
	assert.Error(t, err)
	assert.Error(t, r.Ping(ctx))
}
