// File: internal/router/router.go
package router

import (
	"event-management/internal/cache"
	"event-management/internal/config"
	"event-management/internal/database"
	"event-management/internal/handler"
	"event-management/internal/handler/auth"
	"event-management/internal/handler/events"
	"event-management/internal/handler/users"
	"event-management/internal/middleware"

	"github.com/labstack/echo/v4"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, cfg *config.Config, db database.DB, rdb cache.Cache) {
	requireAuth := middleware.RequireAuth(cfg, db)
	requireAdmin := middleware.RequireAdmin(cfg, db)

	e.GET("/", handler.RootHandler())
	e.GET("/healthz", handler.HealthHandler(db, rdb))

	// 註冊與登入不需認證
	e.POST("/signup", auth.SignupHandler(db))
	e.POST("/login", auth.LoginHandler(cfg, db))

	// 當前使用者
	e.GET("/users/me", users.GetMeHandler(), requireAuth)

	// 活動：讀取需登入，寫入僅限管理員
	e.GET("/events", events.ListEventsHandler(db), requireAuth)
	e.POST("/events", events.CreateEventHandler(db), requireAdmin)
	e.PUT("/events/:event_id", events.UpdateEventHandler(db), requireAdmin)
	e.DELETE("/events/:event_id", events.DeleteEventHandler(db), requireAdmin)
}
