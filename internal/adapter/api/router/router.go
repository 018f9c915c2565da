package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jalsetu/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, actorMiddleware *middleware.ActorMiddleware) {
	SetupActorRouter(e, authMiddleware, actorMiddleware)
	SetupComplaintRouter(e, authMiddleware, actorMiddleware)
	SetupInventoryRouter(e, authMiddleware, actorMiddleware)
	SetupBillingRouter(e, authMiddleware, actorMiddleware)
	SetupPhotoRouter(e, authMiddleware)
	SetupHealthRouter(e)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
