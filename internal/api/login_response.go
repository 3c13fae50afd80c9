// File: internal/api/login_response.go
package api

import "event-management/internal/model"

// swagger:model api.LoginResponse
type LoginResponse struct {
	AccessToken string     `json:"access_token" example:"eyJhbGciOi..."`
	TokenType   string     `json:"token_type" example:"bearer"`
	Role        model.Role `json:"role" example:"normal"`
}
