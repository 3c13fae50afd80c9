// File: internal/api/event_request.go
package api

// EventRequest 建立與整列更新共用的活動欄位。
// swagger:model api.EventRequest
type EventRequest struct {
	Title       string `json:"title" validate:"required" example:"Go Meetup"`
	Description string `json:"description" validate:"required" example:"Monthly community meetup"`
	Date        string `json:"date" validate:"required" example:"2026-09-01"`
	Time        string `json:"time" validate:"required" example:"19:00"`
	ImageURL    string `json:"image_url" validate:"omitempty,url" example:"https://example.com/meetup.png"`
}
