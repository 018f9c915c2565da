package router

import (
	"github.com/labstack/echo/v4"

	"jalsetu/internal/adapter/api/handler"
	"jalsetu/internal/adapter/api/middleware"
	"jalsetu/internal/domain/entity"
)

func SetupComplaintRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, actorMiddleware *middleware.ActorMiddleware) {

	complaintHandler := handler.GetComplaintHandler()

	complaints := e.Group("/v1/complaints")
	complaints.Use(authMiddleware.Authenticate)
	complaints.Use(actorMiddleware.Load)

	complaints.POST("", complaintHandler.Create,
		actorMiddleware.RequireTier(entity.TierCitizen))
	complaints.GET("", complaintHandler.List)
	complaints.GET("/stats", complaintHandler.Stats,
		actorMiddleware.RequireTier(entity.TierVillageCouncil))
	complaints.GET("/escalated", complaintHandler.ListEscalated,
		actorMiddleware.RequireTier(entity.TierBlockCouncil, entity.TierDistrictBody))
	complaints.GET("/:id", complaintHandler.Get)
	complaints.POST("/:id/escalate", complaintHandler.Escalate,
		actorMiddleware.RequireTier(entity.TierVillageCouncil, entity.TierBlockCouncil))
	complaints.POST("/:id/resolve", complaintHandler.Resolve,
		actorMiddleware.RequireTier(entity.TierVillageCouncil, entity.TierBlockCouncil, entity.TierDistrictBody))
	complaints.POST("/:id/assign", complaintHandler.Assign,
		actorMiddleware.RequireTier(entity.TierDistrictBody))
	complaints.GET("/:id/resolution", complaintHandler.ResolutionDetails)

	works := e.Group("/v1/works")
	works.Use(authMiddleware.Authenticate)
	works.Use(actorMiddleware.Load)
	works.Use(actorMiddleware.RequireTier(entity.TierContractor))
	works.GET("", complaintHandler.ListWorks)
	works.POST("/:id/complete", complaintHandler.CompleteWork)
}
