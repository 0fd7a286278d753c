// Package policy 決定已驗證的呼叫者能否讀取或變更某筆資料。
// 所有函式皆為純函式：不存取資料庫，零值 Caller 一律拒絕。
package policy

import (
	"errors"

	"product-api/internal/model"
)

var (
	ErrForbidden            = errors.New("not authorized")
	ErrAdminFieldRestricted = errors.New("only admins may change the admin flag")
)

// Caller 為 Auth Gate 從令牌解出的身分
type Caller struct {
	ID      int
	Name    string
	Email   string
	IsAdmin bool
}

func (c Caller) authenticated() bool { return c.ID > 0 }

func (c Caller) owns(userID int) bool {
	return c.authenticated() && c.ID == userID
}

func CanListUsers(caller Caller) error {
	if caller.authenticated() && caller.IsAdmin {
		return nil
	}
	return ErrForbidden
}

// CanReadUser 只允許讀取自己的資料
func CanReadUser(caller Caller, target model.User) error {
	if caller.owns(target.ID) {
		return nil
	}
	return ErrForbidden
}

// CanUpdateUser 只允許更新自己；changesAdmin 表示請求帶有 isAdmin 欄位
func CanUpdateUser(caller Caller, target model.User, changesAdmin bool) error {
	if !caller.owns(target.ID) {
		return ErrForbidden
	}
	if changesAdmin && !caller.IsAdmin {
		return ErrAdminFieldRestricted
	}
	return nil
}

func CanDeleteUser(caller Caller, target model.User) error {
	if caller.owns(target.ID) || (caller.authenticated() && caller.IsAdmin) {
		return nil
	}
	return ErrForbidden
}

func CanUpdateProduct(caller Caller, product model.Product) error {
	if caller.owns(product.UserID) {
		return nil
	}
	return ErrForbidden
}

func CanDeleteProduct(caller Caller, product model.Product) error {
	if caller.owns(product.UserID) {
		return nil
	}
	return ErrForbidden
}
