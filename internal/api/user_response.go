package api

import (
	"time"

	"product-api/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"_id" example:"1"`
	Name      string    `json:"name" example:"Alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	IsAdmin   bool      `json:"isAdmin" example:"false"`
	CreatedAt time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2025-05-01T15:04:05Z"`
}

// swagger:model api.UserListResponse
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// NewUserResponse 只輸出公開欄位，不含密碼雜湊
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
