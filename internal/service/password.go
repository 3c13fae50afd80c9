// File: internal/service/password.go
package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// 測試可覆寫的 bcrypt 進入點
var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

var errInvalidPassword = errors.New("invalid password")

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串；相同明文每次產生不同結果（隨機鹽）。
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文與 bcrypt 哈希，成功回傳 nil。
// 哈希格式損壞時同樣回傳錯誤，不會 panic。
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}

// AuthenticateUser 驗證使用者密碼，失敗時一律回傳相同錯誤，避免洩漏細節。
func AuthenticateUser(passwordHash, password string) error {
	if err := ComparePassword(passwordHash, password); err != nil {
		return errInvalidPassword
	}
	return nil
}
