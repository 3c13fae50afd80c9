// File: internal/api/signup_request.go
package api

// swagger:model api.SignupRequest
type SignupRequest struct {
	Name     string `json:"name" validate:"required" example:"Alice"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
	// 省略時預設為 normal
	Role string `json:"role" validate:"omitempty,oneof=normal admin" example:"normal"`
}
