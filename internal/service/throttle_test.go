package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"product-api/internal/cache"
)

func TestLoginThrottleAllowed(t *testing.T) {
	ctx := context.Background()
	var current string
	var getErr error
	c := &cache.FakeCache{GetFn: func(_ context.Context, key string) *redis.StringCmd {
		require.Equal(t, "login:fail:a@b.c", key)
		return redis.NewStringResult(current, getErr)
	}}
	th := NewLoginThrottle(c, 3, time.Minute, nil)

	getErr = redis.Nil
	require.True(t, th.Allowed(ctx, "a@b.c"))

	getErr = nil
	current = "2"
	require.True(t, th.Allowed(ctx, "a@b.c"))
	current = "3"
	require.False(t, th.Allowed(ctx, "a@b.c"))

	getErr = errors.New("down")
	require.True(t, th.Allowed(ctx, "a@b.c"))
}

func TestLoginThrottleFail(t *testing.T) {
	ctx := context.Background()
	counter := int64(0)
	expireCalls := 0
	c := &cache.FakeCache{
		IncrFn: func(context.Context, string) *redis.IntCmd {
			counter++
			return redis.NewIntResult(counter, nil)
		},
		ExpireFn: func(_ context.Context, _ string, ttl time.Duration) *redis.BoolCmd {
			expireCalls++
			require.Equal(t, time.Minute, ttl)
			return redis.NewBoolResult(true, nil)
		},
	}
	th := NewLoginThrottle(c, 3, time.Minute, nil)
	th.Fail(ctx, "a@b.c")
	th.Fail(ctx, "a@b.c")
	require.EqualValues(t, 2, counter)
	require.Equal(t, 1, expireCalls)

	c.IncrFn = func(context.Context, string) *redis.IntCmd { return redis.NewIntResult(0, errors.New("down")) }
	th.Fail(ctx, "a@b.c")
	require.Equal(t, 1, expireCalls)
}

func TestLoginThrottleReset(t *testing.T) {
	var deleted []string
	c := &cache.FakeCache{DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
		deleted = keys
		return redis.NewIntResult(1, nil)
	}}
	NewLoginThrottle(c, 3, time.Minute, nil).Reset(context.Background(), "a@b.c")
	require.Equal(t, []string{"login:fail:a@b.c"}, deleted)
}

func TestLoginThrottleDisabled(t *testing.T) {
	ctx := context.Background()
	var nilThrottle *LoginThrottle
	require.True(t, nilThrottle.Allowed(ctx, "x"))
	nilThrottle.Fail(ctx, "x")
	nilThrottle.Reset(ctx, "x")

	// FakeCache panics on any call, so a disabled throttle must not touch it.
	off := NewLoginThrottle(&cache.FakeCache{}, 0, time.Minute, nil)
	require.True(t, off.Allowed(ctx, "x"))
	off.Fail(ctx, "x")
	off.Reset(ctx, "x")
}
