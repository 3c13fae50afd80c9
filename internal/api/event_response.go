// File: internal/api/event_response.go
package api

import (
	"time"

	"event-management/internal/model"
)

// swagger:model api.EventResponse
type EventResponse struct {
	ID          int       `json:"id" example:"1"`
	Title       string    `json:"title" example:"Go Meetup"`
	Description string    `json:"description" example:"Monthly community meetup"`
	Date        string    `json:"date" example:"2026-09-01"`
	Time        string    `json:"time" example:"19:00"`
	ImageURL    string    `json:"image_url" example:"https://example.com/meetup.png"`
	CreatedAt   time.Time `json:"created_at" example:"2026-05-01T15:04:05Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2026-05-01T15:04:05Z"`
}

// NewEventResponse 由資料列組裝回應。
func NewEventResponse(ev *model.Event) EventResponse {
	return EventResponse{
		ID:          ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		Date:        ev.Date,
		Time:        ev.Time,
		ImageURL:    ev.ImageURL,
		CreatedAt:   ev.CreatedAt,
		UpdatedAt:   ev.UpdatedAt,
	}
}
