// File: internal/api/update_user_request.go
package api

// UpdateUserRequest 每個欄位皆為選填，nil 表示不變更
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Name                 *string `json:"name" validate:"omitempty,min=1" example:"Alice"`
	Email                *string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
	IsAdmin              *bool   `json:"isAdmin" example:"false"`
	Password             *string `json:"password" validate:"omitempty,min=1" example:"NewSecret456!"`
	PasswordConfirmation *string `json:"password_confirmation" example:"NewSecret456!"`
}
