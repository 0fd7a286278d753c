package auth

import (
	"net/http"

	"product-api/internal/api"
	"product-api/internal/middleware"

	"github.com/labstack/echo/v4"
)

// ProfileHandler 回傳令牌內的身分資訊，不查詢資料庫
// @Summary     Get current user profile
// @Description 回傳 JWT 解出的 _id、name、email、isAdmin
// @Tags        users
// @Produce     json
// @Success     200 {object} api.ProfileResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/profile [get]
func ProfileHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, ok := middleware.CallerFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		return c.JSON(http.StatusOK, api.ProfileResponse{User: api.ProfileUser{
			ID:      caller.ID,
			Name:    caller.Name,
			Email:   caller.Email,
			IsAdmin: caller.IsAdmin,
		}})
	}
}
