// File: internal/model/user.go
package model

import "time"

// Role 使用者角色，僅允許 normal 與 admin 兩種值。
type Role string

const (
	RoleNormal Role = "normal"
	RoleAdmin  Role = "admin"
)

// Valid 回報角色是否為合法列舉值。
func (r Role) Valid() bool {
	return r == RoleNormal || r == RoleAdmin
}

// IsAdmin 回報角色是否為管理員。
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
