// File: internal/service/password.go
package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"product-api/internal/worker"
)

// DefaultBcryptCost 與既有資料相容的固定成本
const DefaultBcryptCost = 10

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// PasswordHasher 供 handler 注入，測試可替換
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Compare(hash, password string) bool
}

// Hasher 以 bcrypt 產生與比對密碼雜湊，雜湊運算交由 worker pool 執行
type Hasher struct {
	cost int
	pool worker.Pool
}

// NewHasher 建立 Hasher；pool 為 nil 時直接在呼叫端 goroutine 計算
func NewHasher(cost int, pool worker.Pool) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &Hasher{cost: cost, pool: pool}
}

// Hash 接收明文密碼，回傳 bcrypt 哈希字串
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if h.pool == nil {
		return h.hash(password)
	}

	type result struct {
		hash string
		err  error
	}
	done := make(chan result, 1)
	if err := h.pool.SubmitContext(ctx, func() {
		hash, err := h.hash(password)
		done <- result{hash: hash, err: err}
	}); err != nil {
		return "", err
	}

	select {
	case r := <-done:
		return r.hash, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (h *Hasher) hash(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// Compare 使用 bcrypt 的常數時間比對，不符時回傳 false 而非錯誤
func (h *Hasher) Compare(hash, password string) bool {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
