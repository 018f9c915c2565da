package router

import (
	"github.com/labstack/echo/v4"

	"jalsetu/internal/adapter/api/handler"
	"jalsetu/internal/adapter/api/middleware"
	"jalsetu/internal/domain/entity"
)

func SetupInventoryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, actorMiddleware *middleware.ActorMiddleware) {

	inventoryHandler := handler.GetInventoryHandler()

	inventory := e.Group("/v1/inventory")
	inventory.Use(authMiddleware.Authenticate)
	inventory.Use(actorMiddleware.Load)

	village := actorMiddleware.RequireTier(entity.TierVillageCouncil)
	block := actorMiddleware.RequireTier(entity.TierBlockCouncil)

	inventory.POST("/items", inventoryHandler.AddItem, village)
	inventory.GET("/items", inventoryHandler.ListItems, village)
	inventory.GET("/items/:id", inventoryHandler.GetItem)
	inventory.PATCH("/items/:id/quantity", inventoryHandler.UpdateQuantity, village)
	inventory.PATCH("/items/:id/maintenance", inventoryHandler.SetMaintenance, village)
	inventory.GET("/stats", inventoryHandler.Stats, village)
	inventory.GET("/low-stock", inventoryHandler.ListLowStock, village)

	inventory.POST("/request", inventoryHandler.SubmitRequest, village)
	inventory.GET("/requests", inventoryHandler.ListRequests)
	inventory.POST("/requests/:id/approved", inventoryHandler.ApproveRequest, block)
	inventory.POST("/requests/:id/rejected", inventoryHandler.RejectRequest, block)
}
