// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"

	"product-api/internal/api"
	"product-api/internal/database"
	"product-api/internal/service"
	"product-api/internal/store"

	"github.com/labstack/echo/v4"
)

var authenticateUser = service.AuthenticateUser

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與到期時間；連續失敗過多時暫時鎖定
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     429  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /users/login [post]
func LoginHandler(db database.DB, hasher service.PasswordHasher, tokens *service.TokenIssuer, throttle *service.LoginThrottle) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "all fields are required: " + err.Error()})
		}

		ctx := c.Request().Context()
		if !throttle.Allowed(ctx, req.Email) {
			return c.JSON(http.StatusTooManyRequests, api.ErrorResponse{Message: "too many failed login attempts, try again later"})
		}

		user, err := getUserByEmail(ctx, db, req.Email)
		if errors.Is(err, store.ErrNotFound) {
			throttle.Fail(ctx, req.Email)
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid email or password"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if err := authenticateUser(hasher, *user, req.Password); err != nil {
			throttle.Fail(ctx, req.Email)
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid email or password"})
		}

		token, expiresAt, err := tokens.Issue(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}
		throttle.Reset(ctx, req.Email)

		return c.JSON(http.StatusOK, api.LoginResponse{AccessToken: token, ExpiresAt: expiresAt})
	}
}
