package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var pgxpoolNew = pgxpool.New

// NewPgxPool 建立連線池並立即 Ping，連線字串錯誤或資料庫無法連線皆回傳錯誤
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpoolNew(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("NewPgxPool: %w", err)
	}
	if err := pingPool(ctx, pool); err != nil {
		closePool(pool)
		return nil, fmt.Errorf("NewPgxPool: %w", err)
	}
	return pool, nil
}

var (
	pingPool  = func(ctx context.Context, pool *pgxpool.Pool) error { return pool.Ping(ctx) }
	closePool = func(pool *pgxpool.Pool) { pool.Close() }
)
