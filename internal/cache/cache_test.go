package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCachePanicsWhenUnset(t *testing.T) {
	c := &FakeCache{}
	ctx := context.Background()
	require.Panics(t, func() { c.Get(ctx, "k") })
	require.Panics(t, func() { c.Set(ctx, "k", 1, 0) })
	require.Panics(t, func() { c.Incr(ctx, "k") })
	require.Panics(t, func() { c.Expire(ctx, "k", time.Second) })
	require.Panics(t, func() { c.Del(ctx, "k") })
	require.NoError(t, c.Close())
}

func TestFakeCacheDelegates(t *testing.T) {
	ctx := context.Background()
	var expired time.Duration
	var deleted []string
	c := &FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd { return redis.NewStringResult("v", nil) },
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("OK", nil)
		},
		IncrFn: func(context.Context, string) *redis.IntCmd { return redis.NewIntResult(3, nil) },
		ExpireFn: func(_ context.Context, _ string, ttl time.Duration) *redis.BoolCmd {
			expired = ttl
			return redis.NewBoolResult(true, nil)
		},
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			deleted = keys
			return redis.NewIntResult(int64(len(keys)), nil)
		},
		CloseFn: func() error { return errors.New("close") },
	}

	require.Equal(t, "v", c.Get(ctx, "k").Val())
	require.Equal(t, "OK", c.Set(ctx, "k", 1, 0).Val())
	require.EqualValues(t, 3, c.Incr(ctx, "k").Val())
	require.True(t, c.Expire(ctx, "k", time.Minute).Val())
	require.Equal(t, time.Minute, expired)
	require.EqualValues(t, 2, c.Del(ctx, "a", "b").Val())
	require.Equal(t, []string{"a", "b"}, deleted)
	require.EqualError(t, c.Close(), "close")
}
