// File: internal/api/register_request.go
package api

// RegisterRequest 不接受 isAdmin，管理員身分只由邀請名單決定
// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" validate:"required" example:"Alice"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}
