// File: internal/api/user_response.go
package api

import (
	"time"

	"event-management/internal/model"
)

// UserResponse 回傳的使用者資訊，永不包含密碼哈希。
// swagger:model api.UserResponse
type UserResponse struct {
	ID        int        `json:"id" example:"1"`
	Name      string     `json:"name" example:"Alice"`
	Email     string     `json:"email" example:"alice@example.com"`
	Role      model.Role `json:"role" example:"normal"`
	CreatedAt time.Time  `json:"created_at" example:"2026-05-01T15:04:05Z"`
}

// NewUserResponse 由資料列組裝回應。
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
