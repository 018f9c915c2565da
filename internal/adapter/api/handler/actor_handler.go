package handler

import (
	"github.com/labstack/echo/v4"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/usecase"
	"jalsetu/pkg/response"
)

type ActorHandler struct {
	hierarchyUseCase *usecase.HierarchyUseCase
}

func NewActorHandler(hierarchyUseCase *usecase.HierarchyUseCase) *ActorHandler {
	return &ActorHandler{
		hierarchyUseCase: hierarchyUseCase,
	}
}

type agencyDetailsRequest struct {
	CompanyName        string   `json:"company_name" validate:"required"`
	RegistrationNumber string   `json:"registration_number" validate:"required"`
	ContactNumber      string   `json:"contact_number"`
	Address            string   `json:"address"`
	ServiceArea        []string `json:"service_area"`
	Specializations    []string `json:"specializations"`
}

type registerActorRequest struct {
	UniqueID      string                `json:"unique_id"`
	Tier          string                `json:"tier" validate:"required,oneof=citizen village_council block_council district_body contractor"`
	ParentID      string                `json:"parent_id"`
	AgencyDetails *agencyDetailsRequest `json:"agency_details"`
}

func (h *ActorHandler) Register(c echo.Context) error {
	var req registerActorRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	input := usecase.RegisterActorInput{
		ID:       uid,
		UniqueID: req.UniqueID,
		Tier:     entity.Tier(req.Tier),
		ParentID: req.ParentID,
	}
	if req.AgencyDetails != nil {
		input.AgencyDetails = &entity.AgencyDetails{
			CompanyName:        req.AgencyDetails.CompanyName,
			RegistrationNumber: req.AgencyDetails.RegistrationNumber,
			ContactNumber:      req.AgencyDetails.ContactNumber,
			Address:            req.AgencyDetails.Address,
			ServiceArea:        req.AgencyDetails.ServiceArea,
			Specializations:    req.AgencyDetails.Specializations,
		}
	}

	actor, err := h.hierarchyUseCase.RegisterActor(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, actor)
}

func (h *ActorHandler) Me(c echo.Context) error {
	actor := c.Get("actor").(*entity.Actor)
	return response.Success(c, actor)
}

func (h *ActorHandler) ListContractors(c echo.Context) error {
	contractors, err := h.hierarchyUseCase.ListContractors(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, contractors)
}
