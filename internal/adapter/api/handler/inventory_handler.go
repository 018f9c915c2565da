package handler

import (
	"github.com/labstack/echo/v4"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/usecase"
	"jalsetu/pkg/response"
)

type InventoryHandler struct {
	inventoryUseCase *usecase.InventoryUseCase
}

func NewInventoryHandler(inventoryUseCase *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{
		inventoryUseCase: inventoryUseCase,
	}
}

type itemSpecRequest struct {
	Name         string  `json:"name" validate:"required"`
	Category     string  `json:"category" validate:"required,oneof=pipes motors tanks valves meters chemicals filters other"`
	Quantity     int64   `json:"quantity" validate:"gte=0"`
	Unit         string  `json:"unit" validate:"required"`
	UnitCost     float64 `json:"unit_cost" validate:"gte=0"`
	MinimumStock int64   `json:"minimum_stock" validate:"gte=0"`
	Location     string  `json:"location"`
	Description  string  `json:"description"`
	Urgency      string  `json:"urgency" validate:"omitempty,oneof=low normal high"`
}

func (r *itemSpecRequest) toSpec() usecase.ItemSpec {
	return usecase.ItemSpec{
		Name:         r.Name,
		Category:     entity.ItemCategory(r.Category),
		Quantity:     r.Quantity,
		Unit:         r.Unit,
		UnitCost:     r.UnitCost,
		MinimumStock: r.MinimumStock,
		Location:     r.Location,
		Description:  r.Description,
		Urgency:      entity.Urgency(r.Urgency),
	}
}

func (h *InventoryHandler) AddItem(c echo.Context) error {
	var req itemSpecRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	councilID := c.Get("uid").(string)

	item, err := h.inventoryUseCase.AddItem(c.Request().Context(), councilID, req.toSpec())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *InventoryHandler) ListItems(c echo.Context) error {
	councilID := c.Get("uid").(string)

	items, err := h.inventoryUseCase.ListItems(c.Request().Context(), councilID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

func (h *InventoryHandler) GetItem(c echo.Context) error {
	item, err := h.inventoryUseCase.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

type updateQuantityRequest struct {
	Quantity int64 `json:"quantity" validate:"gte=0"`
}

func (h *InventoryHandler) UpdateQuantity(c echo.Context) error {
	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	councilID := c.Get("uid").(string)

	item, err := h.inventoryUseCase.UpdateQuantity(c.Request().Context(), c.Param("id"), councilID, req.Quantity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

type maintenanceRequest struct {
	InMaintenance bool `json:"in_maintenance"`
}

func (h *InventoryHandler) SetMaintenance(c echo.Context) error {
	var req maintenanceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	councilID := c.Get("uid").(string)

	item, err := h.inventoryUseCase.SetMaintenance(c.Request().Context(), c.Param("id"), councilID, req.InMaintenance)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *InventoryHandler) Stats(c echo.Context) error {
	councilID := c.Get("uid").(string)

	stats, err := h.inventoryUseCase.Stats(c.Request().Context(), councilID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func (h *InventoryHandler) ListLowStock(c echo.Context) error {
	councilID := c.Get("uid").(string)

	items, err := h.inventoryUseCase.ListLowStock(c.Request().Context(), councilID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

func (h *InventoryHandler) SubmitRequest(c echo.Context) error {
	var req itemSpecRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	councilID := c.Get("uid").(string)

	request, err := h.inventoryUseCase.SubmitRequest(c.Request().Context(), councilID, req.toSpec())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}

// ListRequests serves both ends of the workflow: block councils see requests
// awaiting their decision, village councils see what they submitted.
func (h *InventoryHandler) ListRequests(c echo.Context) error {
	actor := c.Get("actor").(*entity.Actor)

	var requests []*entity.InventoryRequest
	var err error

	if actor.Tier == entity.TierBlockCouncil {
		status := entity.RequestStatus(c.QueryParam("status"))
		requests, err = h.inventoryUseCase.ListRequestsForApprover(c.Request().Context(), actor.ID, status)
	} else {
		requests, err = h.inventoryUseCase.ListRequestsByCouncil(c.Request().Context(), actor.ID)
	}
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, requests)
}

func (h *InventoryHandler) ApproveRequest(c echo.Context) error {
	approverID := c.Get("uid").(string)

	request, err := h.inventoryUseCase.Approve(c.Request().Context(), c.Param("id"), approverID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

func (h *InventoryHandler) RejectRequest(c echo.Context) error {
	approverID := c.Get("uid").(string)

	request, err := h.inventoryUseCase.Reject(c.Request().Context(), c.Param("id"), approverID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}
