// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"

	"event-management/internal/api"
	"event-management/internal/config"
	"event-management/internal/database"
	"event-management/internal/service"

	"github.com/labstack/echo/v4"
)

// 測試可覆寫的進入點
var (
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
)

// invalidCredentials 登入失敗統一回應，帳號不存在與密碼錯誤不可區分。
func invalidCredentials(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Incorrect email or password"})
}

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     Log in
// @Description 驗證 Email 與密碼，簽發有效期為設定值的存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       payload body api.LoginRequest true "登入資料"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(cfg *config.Config, db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return invalidCredentials(c)
		}
		if err := authenticateUser(user.PasswordHash, req.Password); err != nil {
			return invalidCredentials(c)
		}

		// 有效期一律採用設定值
		token, err := issueAccessToken(cfg, *user, cfg.AccessTokenTTL())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken: token,
			TokenType:   "bearer",
			Role:        user.Role,
		})
	}
}
