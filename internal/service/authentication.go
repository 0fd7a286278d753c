// File: internal/service/authentication.go
package service

import (
	"errors"

	"product-api/internal/model"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthenticateUser 以明文密碼比對使用者的雜湊，不符時回傳 ErrInvalidCredentials
func AuthenticateUser(hasher PasswordHasher, user model.User, password string) error {
	if user.PasswordHash == "" || !hasher.Compare(user.PasswordHash, password) {
		return ErrInvalidCredentials
	}
	return nil
}
