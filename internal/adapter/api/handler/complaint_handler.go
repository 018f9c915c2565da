package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/usecase"
	"jalsetu/pkg/response"
	"jalsetu/pkg/utils"
)

type ComplaintHandler struct {
	complaintUseCase  *usecase.ComplaintUseCase
	resolutionUseCase *usecase.ResolutionUseCase
}

func NewComplaintHandler(complaintUseCase *usecase.ComplaintUseCase, resolutionUseCase *usecase.ResolutionUseCase) *ComplaintHandler {
	return &ComplaintHandler{
		complaintUseCase:  complaintUseCase,
		resolutionUseCase: resolutionUseCase,
	}
}

type coordinatesRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

type createComplaintRequest struct {
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description" validate:"required"`
	Location    string              `json:"location" validate:"required"`
	Coordinates *coordinatesRequest `json:"coordinates"`
	PhotoURL    string              `json:"photo_url"`
}

func (h *ComplaintHandler) Create(c echo.Context) error {
	var req createComplaintRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	citizenID := c.Get("uid").(string)

	input := usecase.CreateComplaintInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		PhotoURL:    req.PhotoURL,
	}
	if req.Coordinates != nil {
		input.Coordinates = &entity.Coordinates{
			Latitude:  req.Coordinates.Latitude,
			Longitude: req.Coordinates.Longitude,
		}
	}

	complaint, err := h.complaintUseCase.CreateComplaint(c.Request().Context(), citizenID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, complaint)
}

// List returns the complaints relevant to the caller's tier: citizens see
// their own, village councils see their jurisdiction, higher tiers see what
// has been escalated to them.
func (h *ComplaintHandler) List(c echo.Context) error {
	actor := c.Get("actor").(*entity.Actor)
	pagination := utils.GetPagination(c)

	var complaints []*entity.Complaint
	var err error

	switch actor.Tier {
	case entity.TierCitizen:
		complaints, err = h.complaintUseCase.ListByCitizen(c.Request().Context(), actor.ID, pagination.Limit, pagination.Offset())
	case entity.TierVillageCouncil:
		status := entity.ComplaintStatus(c.QueryParam("status"))
		complaints, err = h.complaintUseCase.ListByCouncil(c.Request().Context(), actor.ID, status, pagination.Limit, pagination.Offset())
	default:
		complaints, err = h.complaintUseCase.ListEscalatedTo(c.Request().Context(), actor.ID, pagination.Limit, pagination.Offset())
	}
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, complaints)
}

func (h *ComplaintHandler) Get(c echo.Context) error {
	complaint, err := h.complaintUseCase.GetComplaint(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, complaint)
}

func (h *ComplaintHandler) ListEscalated(c echo.Context) error {
	actorID := c.Get("uid").(string)
	pagination := utils.GetPagination(c)

	complaints, err := h.complaintUseCase.ListEscalatedTo(c.Request().Context(), actorID, pagination.Limit, pagination.Offset())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, complaints)
}

func (h *ComplaintHandler) Stats(c echo.Context) error {
	actor := c.Get("actor").(*entity.Actor)

	stats, err := h.complaintUseCase.Stats(c.Request().Context(), actor.ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

type escalateComplaintRequest struct {
	TargetID string `json:"target_id" validate:"required"`
}

func (h *ComplaintHandler) Escalate(c echo.Context) error {
	var req escalateComplaintRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actorID := c.Get("uid").(string)

	complaint, err := h.complaintUseCase.Escalate(c.Request().Context(), c.Param("id"), actorID, req.TargetID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, complaint)
}

type inventoryLineRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
}

type resolveComplaintRequest struct {
	Expenditure   float64                `json:"expenditure" validate:"gte=0"` // rupees
	InventoryUsed []inventoryLineRequest `json:"inventory_used" validate:"dive"`
	Remarks       string                 `json:"remarks"`
}

func (h *ComplaintHandler) Resolve(c echo.Context) error {
	var req resolveComplaintRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	resolverID := c.Get("uid").(string)

	lines := make([]usecase.InventoryLineInput, len(req.InventoryUsed))
	for i, line := range req.InventoryUsed {
		lines[i] = usecase.InventoryLineInput{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		}
	}

	result, err := h.resolutionUseCase.ResolveComplaint(c.Request().Context(), c.Param("id"), resolverID, req.Expenditure, lines, req.Remarks)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *ComplaintHandler) ResolutionDetails(c echo.Context) error {
	record, err := h.resolutionUseCase.GetResolutionDetails(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, record)
}

type assignWorkRequest struct {
	ContractorID  string    `json:"contractor_id" validate:"required"`
	EstimatedCost float64   `json:"estimated_cost" validate:"gte=0"`
	Deadline      time.Time `json:"deadline"`
}

func (h *ComplaintHandler) Assign(c echo.Context) error {
	var req assignWorkRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actorID := c.Get("uid").(string)

	work, err := h.complaintUseCase.Assign(c.Request().Context(), c.Param("id"), actorID, usecase.AssignWorkInput{
		ContractorID:  req.ContractorID,
		EstimatedCost: req.EstimatedCost,
		Deadline:      req.Deadline,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, work)
}

type completeWorkRequest struct {
	Expenditure float64  `json:"expenditure" validate:"gte=0"`
	Remarks     string   `json:"remarks"`
	WorkPhotos  []string `json:"work_photos"`
}

func (h *ComplaintHandler) CompleteWork(c echo.Context) error {
	var req completeWorkRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	contractorID := c.Get("uid").(string)

	work, err := h.complaintUseCase.CompleteAssignedWork(c.Request().Context(), c.Param("id"), contractorID, usecase.CompleteWorkInput{
		Expenditure: req.Expenditure,
		Remarks:     req.Remarks,
		WorkPhotos:  req.WorkPhotos,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, work)
}

func (h *ComplaintHandler) ListWorks(c echo.Context) error {
	contractorID := c.Get("uid").(string)

	works, err := h.complaintUseCase.ListWorksByContractor(c.Request().Context(), contractorID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, works)
}
