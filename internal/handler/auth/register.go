// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"

	"product-api/internal/api"
	"product-api/internal/database"
	"product-api/internal/model"
	"product-api/internal/service"
	"product-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createUser     = store.CreateUser
	getUserByEmail = store.GetUserByEmail
)

// RegisterHandler 建立新使用者
// isInvitedAdmin 決定是否授予管理員身分，請求本身無法要求管理員
// @Summary     Register a new user
// @Description 建立帳號並回傳公開欄位 (不含密碼)；email 大小寫視為相異
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     201  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /users/register [post]
func RegisterHandler(db database.DB, hasher service.PasswordHasher, isInvitedAdmin func(email string) bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "all fields are required: " + err.Error()})
		}

		ctx := c.Request().Context()
		if _, err := getUserByEmail(ctx, db, req.Email); err == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "user already exists"})
		} else if !errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hasher.Hash(ctx, req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(ctx, db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			IsAdmin:      isInvitedAdmin != nil && isInvitedAdmin(req.Email),
		})
		if errors.Is(err, store.ErrDuplicateEmail) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "user already exists"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}
