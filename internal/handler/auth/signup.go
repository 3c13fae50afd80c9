// File: internal/handler/auth/signup.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"event-management/internal/api"
	"event-management/internal/database"
	"event-management/internal/model"
	"event-management/internal/service"
	"event-management/internal/store"

	"github.com/labstack/echo/v4"
)

// 測試可覆寫的進入點
var (
	hashPassword   = service.HashPassword
	createUser     = store.CreateUser
	getUserByEmail = store.GetUserByEmail
)

// SignupHandler 註冊新使用者
// @Summary     Sign up
// @Description 建立新帳號，Email 轉小寫且不得重複，未指定角色時預設 normal
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       payload body api.SignupRequest true "註冊資料"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// Email 一律轉小寫；角色在資料模型邊界驗證
		req.Email = strings.ToLower(req.Email)
		role := model.Role(req.Role)
		if req.Role == "" {
			role = model.RoleNormal
		}
		if !role.Valid() {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid role"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         role,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Email already registered"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create user"})
		}

		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}
