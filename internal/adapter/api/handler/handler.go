package handler

import (
	"jalsetu/internal/usecase"
)

var (
	actorHandler     *ActorHandler
	complaintHandler *ComplaintHandler
	inventoryHandler *InventoryHandler
	billingHandler   *BillingHandler
)

func Setup(
	hierarchyUseCase *usecase.HierarchyUseCase,
	complaintUseCase *usecase.ComplaintUseCase,
	resolutionUseCase *usecase.ResolutionUseCase,
	inventoryUseCase *usecase.InventoryUseCase,
	billingUseCase *usecase.BillingUseCase,
) {
	actorHandler = NewActorHandler(hierarchyUseCase)
	complaintHandler = NewComplaintHandler(complaintUseCase, resolutionUseCase)
	inventoryHandler = NewInventoryHandler(inventoryUseCase)
	billingHandler = NewBillingHandler(billingUseCase)
}

func GetActorHandler() *ActorHandler {
	return actorHandler
}

func GetComplaintHandler() *ComplaintHandler {
	return complaintHandler
}

func GetInventoryHandler() *InventoryHandler {
	return inventoryHandler
}

func GetBillingHandler() *BillingHandler {
	return billingHandler
}
