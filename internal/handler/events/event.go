// File: internal/handler/events/event.go
package events

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"event-management/internal/api"
	"event-management/internal/database"
	"event-management/internal/model"
	"event-management/internal/store"

	"github.com/labstack/echo/v4"
)

// 測試可覆寫的進入點
var (
	listEvents   = store.ListEvents
	createEvent  = store.CreateEvent
	getEventByID = store.GetEventByID
	updateEvent  = store.UpdateEvent
	deleteEvent  = store.DeleteEvent
	timeNow      = time.Now
)

// ListEventsHandler 取得所有活動
// @Summary     List events
// @Description 回傳全部活動，無分頁
// @Tags        events
// @Produce     json
// @Success     200 {array} api.EventResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /events [get]
func ListEventsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		events, err := listEvents(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list events"})
		}
		resp := make([]api.EventResponse, 0, len(events))
		for i := range events {
			resp = append(resp, api.NewEventResponse(&events[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// CreateEventHandler 建立活動（僅管理員）
// @Summary     Create an event
// @Description 建立活動，created_at/updated_at 由伺服器設定
// @Tags        events
// @Accept      json
// @Produce     json
// @Param       payload body api.EventRequest true "活動資料"
// @Success     201 {object} api.EventResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /events [post]
func CreateEventHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.EventRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		now := timeNow().UTC()
		ev, err := createEvent(c.Request().Context(), db, &model.Event{
			Title:       req.Title,
			Description: req.Description,
			Date:        req.Date,
			Time:        req.Time,
			ImageURL:    req.ImageURL,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create event"})
		}
		return c.JSON(http.StatusCreated, api.NewEventResponse(ev))
	}
}

// UpdateEventHandler 整列更新活動（僅管理員）
// @Summary     Update an event
// @Description 依 ID 整列覆寫活動欄位並更新 updated_at
// @Tags        events
// @Accept      json
// @Produce     json
// @Param       event_id path int true "活動 ID"
// @Param       payload  body api.EventRequest true "活動資料"
// @Success     200 {object} api.EventResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /events/{event_id} [put]
func UpdateEventHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid event ID"})
		}

		var req api.EventRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ev := &model.Event{
			ID:          id,
			Title:       req.Title,
			Description: req.Description,
			Date:        req.Date,
			Time:        req.Time,
			ImageURL:    req.ImageURL,
			UpdatedAt:   timeNow().UTC(),
		}
		if err := updateEvent(c.Request().Context(), db, ev); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Event not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update event"})
		}

		// 覆寫後讀回完整資料列（含 created_at）
		updated, err := getEventByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load event"})
		}
		return c.JSON(http.StatusOK, api.NewEventResponse(updated))
	}
}

// DeleteEventHandler 刪除活動（僅管理員）
// @Summary     Delete an event
// @Description 依 ID 刪除活動，成功回傳 204
// @Tags        events
// @Param       event_id path int true "活動 ID"
// @Success     204
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /events/{event_id} [delete]
func DeleteEventHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid event ID"})
		}
		if err := deleteEvent(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Event not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to delete event"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
