package router

import (
	"github.com/labstack/echo/v4"

	"jalsetu/internal/adapter/api/handler"
)

func SetupNotificationRouter(e *echo.Echo, notificationHandler *handler.NotificationHandler) {
	e.GET("/v1/ws/notifications", notificationHandler.Subscribe)
}
