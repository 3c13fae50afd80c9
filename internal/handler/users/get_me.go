// File: internal/handler/users/get_me.go
package users

import (
	"net/http"

	"event-management/internal/api"
	"event-management/internal/middleware"

	"github.com/labstack/echo/v4"
)

// GetMeHandler 取得當前使用者資訊
// @Summary     Get current user
// @Description 回傳 RequireAuth 綁定的使用者資料
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "could not validate credentials"})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}
