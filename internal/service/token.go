// File: internal/service/token.go
package service

import (
	"errors"
	"fmt"
	"time"

	"event-management/internal/config"
	"event-management/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// 令牌驗證失敗的兩種結果：簽章或結構不合法、以及已過期。
var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// 測試可覆寫的時間與解析進入點
var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// CustomClaims JWT 負載內容，Subject 帶使用者 Email。
type CustomClaims struct {
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

// IssueAccessToken 依據設定簽發 JWT，exp = now + ttl。
func IssueAccessToken(cfg *config.Config, user model.User, ttl time.Duration) (string, error) {
	now := timeNow()
	claims := CustomClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.GetSigningMethod(cfg.Algorithm), claims)
	return token.SignedString([]byte(cfg.SecretKey))
}

// VerifyAccessToken 驗證簽章與期限並解析 claims。
// 過期回傳 ErrTokenExpired，其餘失敗一律回傳 ErrTokenInvalid。
func VerifyAccessToken(cfg *config.Config, tokenString string) (*CustomClaims, error) {
	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok || t.Method.Alg() != cfg.Algorithm {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
