// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config 為程序層級設定，啟動時載入一次後以值傳遞給需要的元件
type Config struct {
	HTTPAddr         string
	DatabaseURL      string
	JWTSecret        string
	TokenTTL         time.Duration
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	WorkerCount      int
	BcryptCost       int
	LoginMaxAttempts int
	LoginLockout     time.Duration
	AdminEmails      []string
	Debug            bool
}

// Load 從環境變數讀取設定，缺少必要值或格式錯誤時回傳錯誤
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:      getString("HTTP_ADDR", ":8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		AdminEmails:   splitList(os.Getenv("ADMIN_EMAILS")),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if _, err := pgxpool.ParseConfig(cfg.DatabaseURL); err != nil {
		return Config{}, fmt.Errorf("無效的 DATABASE_URL: %w", err)
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}
	if cfg.RedisAddr == "" {
		return Config{}, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}

	var err error
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.WorkerCount, err = getInt("WORKER_COUNT", 1); err != nil {
		return Config{}, err
	}
	if cfg.WorkerCount <= 0 {
		return Config{}, fmt.Errorf("無效的 WORKER_COUNT: %d", cfg.WorkerCount)
	}
	if cfg.BcryptCost, err = getInt("BCRYPT_COST", 10); err != nil {
		return Config{}, err
	}
	if cfg.LoginMaxAttempts, err = getInt("LOGIN_MAX_ATTEMPTS", 5); err != nil {
		return Config{}, err
	}
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 15*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("無效的 TOKEN_TTL: %s", cfg.TokenTTL)
	}
	if cfg.LoginLockout, err = getDuration("LOGIN_LOCKOUT", 15*time.Minute); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("DEBUG"); v != "" {
		if cfg.Debug, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("無效的 DEBUG: %v", err)
		}
	}
	return cfg, nil
}

// IsInvitedAdmin 判斷 email 是否在管理員邀請名單中 (大小寫視為相異)
func (c Config) IsInvitedAdmin(email string) bool {
	for _, e := range c.AdminEmails {
		if e == email {
			return true
		}
	}
	return false
}

func getString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %v", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %v", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
