// @title        Product API
// @version      1.0
// @description  使用者註冊登入與商品管理的後端 API 文件
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description 格式為 "Bearer {accessToken}"
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-api/internal/cache"
	"product-api/internal/config"
	"product-api/internal/database"
	"product-api/internal/router"
	"product-api/internal/service"
	"product-api/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "product-api/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadEnv         = func() error { return godotenv.Load() }
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = serveWithShutdown
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

// serveWithShutdown 啟動 HTTP 服務，收到 SIGINT/SIGTERM 時等待進行中的請求結束
func serveWithShutdown(e *echo.Echo, addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(addr) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}

func run() error {
	// .env 不存在時只使用既有環境變數
	if err := loadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("讀取 .env 失敗: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	tokens, err := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return err
	}

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Debug = cfg.Debug
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, router.Deps{
		DB:             db,
		Cache:          rdb,
		Hasher:         service.NewHasher(cfg.BcryptCost, wp),
		Tokens:         tokens,
		Throttle:       service.NewLoginThrottle(rdb, cfg.LoginMaxAttempts, cfg.LoginLockout, logger),
		IsInvitedAdmin: cfg.IsInvitedAdmin,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logger.Info("server starting", "addr", cfg.HTTPAddr, "workers", cfg.WorkerCount)
	return startServer(e, cfg.HTTPAddr)
}

func main() {
	if err := run(); err != nil {
		slog.Error("service exited", "error", err)
		exitFunc(1)
	}
}
