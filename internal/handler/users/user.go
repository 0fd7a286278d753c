package users

import (
	"errors"
	"net/http"
	"strconv"

	"product-api/internal/api"
	"product-api/internal/database"
	"product-api/internal/middleware"
	"product-api/internal/model"
	"product-api/internal/policy"
	"product-api/internal/service"
	"product-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listUsers   = store.ListUsers
	getUserByID = store.GetUserByID
	updateUser  = store.UpdateUser
	deleteUser  = store.DeleteUser
)

// loadTarget 解析路徑 id 並取得使用者；失敗時已寫入回應
func loadTarget(c echo.Context, db database.DB) (*model.User, bool, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return nil, false, c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
	}
	user, err := getUserByID(c.Request().Context(), db, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, false, c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
	}
	if err != nil {
		return nil, false, c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
	}
	return user, true, nil
}

func forbidden(c echo.Context, err error) error {
	return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: err.Error()})
}

// ListUsersHandler 列出所有使用者 (僅限管理員)
// @Summary     List all users
// @Description 取得所有使用者的公開欄位
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserListResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, _ := middleware.CallerFrom(c)
		if err := policy.CanListUsers(caller); err != nil {
			return forbidden(c, err)
		}

		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := api.UserListResponse{Users: make([]api.UserResponse, 0, len(users))}
		for i := range users {
			resp.Users = append(resp.Users, api.NewUserResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// GetUserHandler 取得指定使用者，只能讀取自己
// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id  path     int true "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok, err := loadTarget(c, db)
		if !ok {
			return err
		}
		caller, _ := middleware.CallerFrom(c)
		if err := policy.CanReadUser(caller, *user); err != nil {
			return forbidden(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// UpdateUserHandler 更新自己的資料
// 所有欄位先完成驗證與密碼雜湊，再以單一 UPDATE 寫入；任何錯誤都不會留下部分變更
// @Summary     Update a user by ID
// @Description 可更新 name、email、password (需附 password_confirmation)；isAdmin 僅管理員可變更
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path     int                   true "使用者 ID"
// @Param       body body     api.UpdateUserRequest true "更新內容"
// @Success     200  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [put]
func UpdateUserHandler(db database.DB, hasher service.PasswordHasher) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := strconv.Atoi(c.Param("id")); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, ok, err := loadTarget(c, db)
		if !ok {
			return err
		}
		caller, _ := middleware.CallerFrom(c)
		if err := policy.CanUpdateUser(caller, *user, req.IsAdmin != nil); err != nil {
			return forbidden(c, err)
		}

		if req.Password != nil {
			if req.PasswordConfirmation == nil || *req.PasswordConfirmation != *req.Password {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "password confirmation does not match"})
			}
			hash, err := hasher.Hash(c.Request().Context(), *req.Password)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
			}
			user.PasswordHash = hash
		}
		if req.Name != nil {
			user.Name = *req.Name
		}
		if req.Email != nil {
			user.Email = *req.Email
		}
		if req.IsAdmin != nil {
			user.IsAdmin = *req.IsAdmin
		}

		updated, err := updateUser(c.Request().Context(), db, user)
		switch {
		case errors.Is(err, store.ErrDuplicateEmail):
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "email already in use"})
		case errors.Is(err, store.ErrNotFound):
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		case err != nil:
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(updated))
	}
}

// DeleteUserHandler 刪除使用者；本人或管理員可執行，其商品一併刪除
// @Summary     Delete a user by ID
// @Tags        users
// @Param       id  path int true "使用者 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok, err := loadTarget(c, db)
		if !ok {
			return err
		}
		caller, _ := middleware.CallerFrom(c)
		if err := policy.CanDeleteUser(caller, *user); err != nil {
			return forbidden(c, err)
		}

		err = deleteUser(c.Request().Context(), db, user.ID)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
