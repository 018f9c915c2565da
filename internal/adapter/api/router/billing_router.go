package router

import (
	"github.com/labstack/echo/v4"

	"jalsetu/internal/adapter/api/handler"
	"jalsetu/internal/adapter/api/middleware"
	"jalsetu/internal/domain/entity"
)

func SetupBillingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, actorMiddleware *middleware.ActorMiddleware) {

	billingHandler := handler.GetBillingHandler()

	billing := e.Group("/v1/billing")
	billing.Use(authMiddleware.Authenticate)
	billing.Use(actorMiddleware.Load)

	village := actorMiddleware.RequireTier(entity.TierVillageCouncil)

	billing.POST("/bills", billingHandler.IssueBill, village)
	billing.POST("/bills/generate-all", billingHandler.GenerateForAllCitizens, village)
	billing.POST("/transactions/:id/paid", billingHandler.MarkPaid, village)
	billing.POST("/transactions/:id/failed", billingHandler.MarkFailed, village)
	billing.GET("/cash-book", billingHandler.CashBook, village)
	billing.GET("/transactions", billingHandler.ListTransactions)
}
