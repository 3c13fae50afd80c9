// File: internal/store/store.go
package store

import "errors"

// 供 handler 對應 HTTP 狀態碼的哨兵錯誤。
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)
