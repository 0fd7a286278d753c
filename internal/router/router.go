package router

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"product-api/internal/cache"
	"product-api/internal/database"
	"product-api/internal/handler"
	"product-api/internal/handler/auth"
	"product-api/internal/handler/products"
	"product-api/internal/handler/users"
	"product-api/internal/middleware"
	"product-api/internal/service"
)

// 註冊與登入的每 IP 請求上限
const (
	authRate  = rate.Limit(5)
	authBurst = 10
)

// Deps 為路由所需的共用元件
type Deps struct {
	DB             database.DB
	Cache          cache.Cache
	Hasher         service.PasswordHasher
	Tokens         *service.TokenIssuer
	Throttle       *service.LoginThrottle
	IsInvitedAdmin func(email string) bool
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	api := e.Group("/api")
	requireAuth := middleware.RequireAuth(d.Tokens)

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	limiter := echomw.RateLimiter(echomw.NewRateLimiterMemoryStoreWithConfig(
		echomw.RateLimiterMemoryStoreConfig{Rate: authRate, Burst: authBurst, ExpiresIn: 3 * time.Minute},
	))
	apiUsers := api.Group("/users")
	apiUsers.POST("/register", auth.RegisterHandler(d.DB, d.Hasher, d.IsInvitedAdmin), limiter)
	apiUsers.POST("/login", auth.LoginHandler(d.DB, d.Hasher, d.Tokens, d.Throttle), limiter)
	apiUsers.GET("/profile", auth.ProfileHandler(), requireAuth)

	// 列表僅限管理員；單筆操作的權限由 policy 決定
	apiUsers.GET("", users.ListUsersHandler(d.DB), requireAuth, middleware.RequireAdmin)
	apiUsers.GET("/:id", users.GetUserHandler(d.DB), requireAuth)
	apiUsers.PUT("/:id", users.UpdateUserHandler(d.DB, d.Hasher), requireAuth)
	apiUsers.DELETE("/:id", users.DeleteUserHandler(d.DB), requireAuth)

	apiProducts := api.Group("/products")
	apiProducts.GET("", products.ListProductsHandler(d.DB))
	apiProducts.GET("/:id", products.GetProductHandler(d.DB))
	apiProducts.POST("", products.CreateProductHandler(d.DB), requireAuth)
	apiProducts.PUT("/:id", products.UpdateProductHandler(d.DB), requireAuth)
	apiProducts.DELETE("/:id", products.DeleteProductHandler(d.DB), requireAuth)
}
