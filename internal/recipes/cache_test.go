package recipes

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_, ok := c.Get(ctx, "missing")
	require.False(t, ok)

	c.Set(ctx, "k", []byte("v"), time.Minute)
	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	require.Equal(t, []byte("v"), got)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	c.Set(ctx, "k", []byte("v"), -time.Second)
	_, ok := c.Get(ctx, "k")
	require.False(t, ok)
}

func TestRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()
	c := NewRedisCache(rdb)

	_, ok := c.Get(ctx, "missing")
	require.False(t, ok)

	c.Set(ctx, "search?query=soep", []byte(`{"results":[]}`), time.Minute)
	got, ok := c.Get(ctx, "search?query=soep")
	require.True(t, ok)
	require.Equal(t, []byte(`{"results":[]}`), got)

	// keys are namespaced per service
	require.True(t, mr.Exists("recipes:search?query=soep"))

	mr.FastForward(2 * time.Minute)
	_, ok = c.Get(ctx, "search?query=soep")
	require.False(t, ok)
}
