// File: internal/handler/root.go
package handler

import (
	"net/http"
	"time"

	"event-management/internal/api"
	"event-management/internal/cache"
	"event-management/internal/database"

	"github.com/labstack/echo/v4"
)

// RootHandler API 首頁歡迎訊息
// @Summary     Welcome message
// @Description 回傳歡迎訊息
// @Tags        root
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      / [get]
func RootHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Welcome to the Event Management System API"})
	}
}

// HealthHandler 健康檢查
// @Summary     Health check
// @Description 檢查資料庫與 Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /healthz [get]
func HealthHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := cch.Set(ctx, "healthz", time.Now().Unix(), time.Minute).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
	}
}
