package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/usecase"
	"jalsetu/pkg/response"
	"jalsetu/pkg/utils"
)

type BillingHandler struct {
	billingUseCase *usecase.BillingUseCase
}

func NewBillingHandler(billingUseCase *usecase.BillingUseCase) *BillingHandler {
	return &BillingHandler{
		billingUseCase: billingUseCase,
	}
}

type billPeriodRequest struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type issueBillRequest struct {
	CitizenID string             `json:"citizen_id" validate:"required"`
	Amount    int64              `json:"amount" validate:"required,gt=0"` // paise
	BillType  string             `json:"bill_type" validate:"required"`
	DueDate   time.Time          `json:"due_date"`
	Period    *billPeriodRequest `json:"period"`
}

func (h *BillingHandler) IssueBill(c echo.Context) error {
	var req issueBillRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	councilID := c.Get("uid").(string)

	input := usecase.IssueBillInput{
		CitizenID: req.CitizenID,
		Amount:    req.Amount,
		BillType:  req.BillType,
		DueDate:   req.DueDate,
	}
	if req.Period != nil {
		input.Period = &entity.BillPeriod{From: req.Period.From, To: req.Period.To}
	}

	transaction, err := h.billingUseCase.IssueBill(c.Request().Context(), councilID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, transaction)
}

type batchBillRequest struct {
	Amount   int64              `json:"amount" validate:"required,gt=0"` // paise
	BillType string             `json:"bill_type" validate:"required"`
	DueDate  time.Time          `json:"due_date"`
	Period   *billPeriodRequest `json:"period"`
}

func (h *BillingHandler) GenerateForAllCitizens(c echo.Context) error {
	var req batchBillRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	councilID := c.Get("uid").(string)

	input := usecase.IssueBillInput{
		Amount:   req.Amount,
		BillType: req.BillType,
		DueDate:  req.DueDate,
	}
	if req.Period != nil {
		input.Period = &entity.BillPeriod{From: req.Period.From, To: req.Period.To}
	}

	result, err := h.billingUseCase.IssueBillToAllCitizens(c.Request().Context(), councilID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *BillingHandler) MarkPaid(c echo.Context) error {
	councilID := c.Get("uid").(string)

	transaction, err := h.billingUseCase.MarkPaid(c.Request().Context(), councilID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, transaction)
}

func (h *BillingHandler) MarkFailed(c echo.Context) error {
	councilID := c.Get("uid").(string)

	transaction, err := h.billingUseCase.MarkFailed(c.Request().Context(), councilID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, transaction)
}

func (h *BillingHandler) CashBook(c echo.Context) error {
	councilID := c.Get("uid").(string)

	stats, err := h.billingUseCase.CashBook(c.Request().Context(), councilID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

// ListTransactions returns the citizen's own entries or the full ledger of
// the issuing council, depending on the caller's tier.
func (h *BillingHandler) ListTransactions(c echo.Context) error {
	actor := c.Get("actor").(*entity.Actor)

	var transactions []*entity.Transaction
	var err error

	if actor.Tier == entity.TierCitizen {
		pagination := utils.GetPagination(c)
		transactions, err = h.billingUseCase.ListByCitizen(c.Request().Context(), actor.ID, pagination.Limit, pagination.Offset())
	} else {
		transactions, err = h.billingUseCase.ListByCouncil(c.Request().Context(), actor.ID)
	}
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, transactions)
}
