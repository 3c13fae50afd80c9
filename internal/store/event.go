// File: internal/store/event.go
package store

import (
	"context"
	"errors"
	"fmt"

	"event-management/internal/database"
	"event-management/internal/model"

	"github.com/jackc/pgx/v5"
)

func ListEvents(ctx context.Context, db database.DB) ([]model.Event, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, description, date, time, image_url, created_at, updated_at
		 FROM events ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListEvents: %w", err)
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		var ev model.Event
		if err := rows.Scan(
			&ev.ID,
			&ev.Title,
			&ev.Description,
			&ev.Date,
			&ev.Time,
			&ev.ImageURL,
			&ev.CreatedAt,
			&ev.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListEvents: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListEvents: %w", err)
	}
	return events, nil
}

func GetEventByID(ctx context.Context, db database.DB, eventID int) (*model.Event, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, description, date, time, image_url, created_at, updated_at
		 FROM events WHERE id = $1`,
		eventID,
	)
	ev := &model.Event{}
	if err := row.Scan(
		&ev.ID,
		&ev.Title,
		&ev.Description,
		&ev.Date,
		&ev.Time,
		&ev.ImageURL,
		&ev.CreatedAt,
		&ev.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetEventByID: %w", err)
	}
	return ev, nil
}

func CreateEvent(ctx context.Context, db database.DB, ev *model.Event) (*model.Event, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO events (title, description, date, time, image_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		ev.Title,
		ev.Description,
		ev.Date,
		ev.Time,
		ev.ImageURL,
		ev.CreatedAt,
		ev.UpdatedAt,
	)
	if err := row.Scan(&ev.ID); err != nil {
		return nil, fmt.Errorf("CreateEvent: %w", err)
	}
	return ev, nil
}

// UpdateEvent 整列覆寫指定活動，資料列不存在時回傳 ErrNotFound。
func UpdateEvent(ctx context.Context, db database.DB, ev *model.Event) error {
	tag, err := db.Exec(ctx,
		`UPDATE events
		 SET title = $1, description = $2, date = $3, time = $4, image_url = $5, updated_at = $6
		 WHERE id = $7`,
		ev.Title,
		ev.Description,
		ev.Date,
		ev.Time,
		ev.ImageURL,
		ev.UpdatedAt,
		ev.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateEvent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteEvent 刪除指定活動，資料列不存在時回傳 ErrNotFound。
func DeleteEvent(ctx context.Context, db database.DB, eventID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM events WHERE id = $1`,
		eventID,
	)
	if err != nil {
		return fmt.Errorf("DeleteEvent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
