// File: internal/model/event.go
package model

import "time"

// Event 活動資料列。Date 與 Time 沿用字串格式，由前端決定呈現方式；
// CreatedAt/UpdatedAt 由 handler 設定，不交給資料庫。
type Event struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Date        string    `db:"date" json:"date"`
	Time        string    `db:"time" json:"time"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
