package router

import (
	"github.com/labstack/echo/v4"

	"jalsetu/internal/adapter/api/handler"
	"jalsetu/internal/adapter/api/middleware"
	"jalsetu/internal/domain/entity"
)

func SetupActorRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, actorMiddleware *middleware.ActorMiddleware) {

	actorHandler := handler.GetActorHandler()

	actors := e.Group("/v1/actors")
	actors.Use(authMiddleware.Authenticate)

	// Registration only needs a verified identity, not an existing actor
	actors.POST("", actorHandler.Register)

	registered := e.Group("/v1/actors")
	registered.Use(authMiddleware.Authenticate)
	registered.Use(actorMiddleware.Load)
	registered.GET("/me", actorHandler.Me)
	registered.GET("/contractors", actorHandler.ListContractors,
		actorMiddleware.RequireTier(entity.TierDistrictBody))
}
