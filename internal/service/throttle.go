// File: internal/service/throttle.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"product-api/internal/cache"
)

const loginFailurePrefix = "login:fail:"

// LoginThrottle 以 Redis 計數每個 email 的登入失敗次數
// Redis 發生錯誤時放行並記錄日誌
type LoginThrottle struct {
	cache       cache.Cache
	maxAttempts int
	window      time.Duration
	logger      *slog.Logger
}

// NewLoginThrottle maxAttempts <= 0 表示不限制
func NewLoginThrottle(c cache.Cache, maxAttempts int, window time.Duration, logger *slog.Logger) *LoginThrottle {
	if logger == nil {
		logger = slog.Default()
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginThrottle{cache: c, maxAttempts: maxAttempts, window: window, logger: logger}
}

func (t *LoginThrottle) key(email string) string {
	return loginFailurePrefix + email
}

// Allowed 回報該 email 目前是否仍可嘗試登入
func (t *LoginThrottle) Allowed(ctx context.Context, email string) bool {
	if t == nil || t.maxAttempts <= 0 {
		return true
	}
	v, err := t.cache.Get(ctx, t.key(email)).Result()
	if errors.Is(err, redis.Nil) {
		return true
	}
	if err != nil {
		t.logger.Error("login throttle lookup failed", "op", "get", "error", err)
		return true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return true
	}
	return n < t.maxAttempts
}

// Fail 記錄一次失敗；第一次失敗時設定視窗過期時間
func (t *LoginThrottle) Fail(ctx context.Context, email string) {
	if t == nil || t.maxAttempts <= 0 {
		return
	}
	key := t.key(email)
	n, err := t.cache.Incr(ctx, key).Result()
	if err != nil {
		t.logger.Error("login throttle update failed", "op", "incr", "error", err)
		return
	}
	if n == 1 {
		if err := t.cache.Expire(ctx, key, t.window).Err(); err != nil {
			t.logger.Error("login throttle update failed", "op", "expire", "error", err)
		}
	}
}

// Reset 於登入成功後清除計數
func (t *LoginThrottle) Reset(ctx context.Context, email string) {
	if t == nil || t.maxAttempts <= 0 {
		return
	}
	if err := t.cache.Del(ctx, t.key(email)).Err(); err != nil {
		t.logger.Error("login throttle reset failed", "op", "del", "error", err)
	}
}
