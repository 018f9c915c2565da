package router

import (
	"github.com/labstack/echo/v4"

	"jalsetu/internal/adapter/api/handler"
	"jalsetu/internal/adapter/api/middleware"
)

func SetupPhotoRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {

	photoHandler := handler.GetPhotoHandler()

	photos := e.Group("/v1/photos")
	photos.Use(authMiddleware.Authenticate)
	photos.POST("", photoHandler.Upload)
	photos.DELETE("", photoHandler.Delete)
}
