package middleware

import (
	"errors"
	"net/http"
	"strings"

	"product-api/internal/api"
	"product-api/internal/policy"
	"product-api/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextCallerKey = "caller"

// TokenVerifier 由 *service.TokenIssuer 實作
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

func unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: msg})
}

func bearerToken(c echo.Context) (string, string) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", "missing token"
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", "invalid authorization header format"
	}
	return strings.TrimSpace(parts[1]), ""
}

// RequireAuth 驗證 Bearer token，成功時把 policy.Caller 放入 context，失敗一律 401 且不執行後續 handler
func RequireAuth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, problem := bearerToken(c)
			if problem != "" {
				return unauthorized(c, problem)
			}

			claims, err := tokens.Verify(tokenString)
			switch {
			case err == nil:
			case errors.Is(err, service.ErrTokenExpired):
				return unauthorized(c, "token expired")
			case errors.Is(err, service.ErrTokenMalformed):
				return unauthorized(c, "malformed token")
			default:
				return unauthorized(c, "invalid token")
			}

			c.Set(ContextCallerKey, policy.Caller{
				ID:      claims.User.ID,
				Name:    claims.User.Name,
				Email:   claims.User.Email,
				IsAdmin: claims.User.IsAdmin,
			})
			return next(c)
		}
	}
}

// RequireAdmin 必須掛在 RequireAuth 之後
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, ok := CallerFrom(c)
		if !ok || policy.CanListUsers(caller) != nil {
			return unauthorized(c, "admin privileges required")
		}
		return next(c)
	}
}

// CallerFrom 取出 RequireAuth 放入的呼叫者
func CallerFrom(c echo.Context) (policy.Caller, bool) {
	caller, ok := c.Get(ContextCallerKey).(policy.Caller)
	if !ok || caller.ID <= 0 {
		return policy.Caller{}, false
	}
	return caller, true
}
