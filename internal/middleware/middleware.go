// File: internal/middleware/middleware.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"event-management/internal/api"
	"event-management/internal/config"
	"event-management/internal/database"
	"event-management/internal/model"
	"event-management/internal/service"
	"event-management/internal/store"

	"github.com/labstack/echo/v4"
)

// ContextUserKey echo context 中綁定的當前使用者（*model.User）
const ContextUserKey = "user"

// 測試可覆寫的進入點
var (
	verifyAccessToken = service.VerifyAccessToken
	getUserByEmail    = store.GetUserByEmail
)

// 驗證失敗的原因，對應 401 回應中的訊息。
var (
	errMissingToken       = errors.New("missing token")
	errBadAuthHeader      = errors.New("invalid authorization header format")
	errInvalidCredentials = errors.New("could not validate credentials")
)

// unauthenticated 統一的 401 回應，附帶 WWW-Authenticate 挑戰。
func unauthenticated(c echo.Context, message string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: message})
}

// resolveUser 逐步驗證請求：取出 bearer token、驗證簽章與期限、
// 以 subject email 查回使用者資料列。任一步失敗即回傳非 nil 錯誤，
// 由 RequireAuth 負責寫出 401。
func resolveUser(c echo.Context, cfg *config.Config, db database.DB) (*model.User, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, errMissingToken
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, errBadAuthHeader
	}

	claims, err := verifyAccessToken(cfg, parts[1])
	if err != nil {
		return nil, errInvalidCredentials
	}
	if claims.Subject == "" {
		return nil, errInvalidCredentials
	}

	// 令牌結構合法仍須對應到現存使用者；帳號已刪除的令牌一律拒絕
	user, err := getUserByEmail(c.Request().Context(), db, claims.Subject)
	if err != nil {
		return nil, errInvalidCredentials
	}
	return user, nil
}

// RequireAuth 驗證 bearer token 並將使用者綁定到 context。
// 任一步驟失敗即回 401，不呼叫下一層 handler。
func RequireAuth(cfg *config.Config, db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := resolveUser(c, cfg, db)
			if err != nil {
				return unauthenticated(c, err.Error())
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireAdmin 在 RequireAuth 之上要求資料列中的角色為 admin。
func RequireAdmin(cfg *config.Config, db database.DB) echo.MiddlewareFunc {
	requireAuth := RequireAuth(cfg, db)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return requireAuth(func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok || !user.Role.IsAdmin() {
				return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "admin access required"})
			}
			return next(c)
		})
	}
}

// CurrentUser 取出 RequireAuth 綁定的使用者。
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	return user, ok
}
