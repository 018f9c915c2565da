package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/repository"
	"jalsetu/internal/infrastructure/metrics"
	"jalsetu/pkg/errors"
)

// InventoryUseCase owns per-council stock records and the request workflow
// that feeds new stock in: a village council proposes, its parent block
// council approves or rejects, and approval is the only path that creates
// an item.
type InventoryUseCase struct {
	itemRepo    repository.InventoryRepository
	requestRepo repository.InventoryRequestRepository
	hierarchy   *HierarchyUseCase
	uow         repository.UnitOfWork
}

func NewInventoryUseCase(
	itemRepo repository.InventoryRepository,
	requestRepo repository.InventoryRequestRepository,
	hierarchy *HierarchyUseCase,
	uow repository.UnitOfWork,
) *InventoryUseCase {
	return &InventoryUseCase{
		itemRepo:    itemRepo,
		requestRepo: requestRepo,
		hierarchy:   hierarchy,
		uow:         uow,
	}
}

type ItemSpec struct {
	Name         string
	Category     entity.ItemCategory
	Quantity     int64
	Unit         string
	UnitCost     float64
	MinimumStock int64
	Location     string
	Description  string
	Urgency      entity.Urgency
}

// AddItem records stock a village council already holds.
func (uc *InventoryUseCase) AddItem(ctx context.Context, councilID string, spec ItemSpec) (*entity.InventoryItem, error) {
	council, err := uc.hierarchy.GetActor(ctx, councilID)
	if err != nil {
		return nil, err
	}
	if council.Tier != entity.TierVillageCouncil {
		return nil, errors.Forbidden("inventory is owned by village councils", nil)
	}
	if spec.Quantity < 0 {
		return nil, errors.BadRequest("quantity cannot be negative", nil)
	}

	item := uc.newItem(council.ID, spec)
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, errors.Internal("failed to create inventory item", err)
	}
	return item, nil
}

func (uc *InventoryUseCase) newItem(councilID string, spec ItemSpec) *entity.InventoryItem {
	now := time.Now()
	item := &entity.InventoryItem{
		ID:               uuid.New().String(),
		Name:             spec.Name,
		Category:         spec.Category,
		Quantity:         spec.Quantity,
		Unit:             spec.Unit,
		UnitCost:         spec.UnitCost,
		MinimumStock:     spec.MinimumStock,
		Location:         spec.Location,
		VillageCouncilID: councilID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	item.DeriveStatus()
	return item
}

func (uc *InventoryUseCase) GetItem(ctx context.Context, itemID string) (*entity.InventoryItem, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, errors.NotFound("inventory item", err)
	}
	return item, nil
}

func (uc *InventoryUseCase) ListItems(ctx context.Context, councilID string) ([]*entity.InventoryItem, error) {
	return uc.itemRepo.ListByCouncil(ctx, councilID)
}

func (uc *InventoryUseCase) ListLowStock(ctx context.Context, councilID string) ([]*entity.InventoryItem, error) {
	return uc.itemRepo.ListLowStock(ctx, councilID)
}

// UpdateQuantity sets the absolute stock level and re-derives the status.
// Consumption during complaint resolution does not come through here; that
// path runs inside the resolution coordinator's atomic unit.
func (uc *InventoryUseCase) UpdateQuantity(ctx context.Context, itemID, councilID string, quantity int64) (*entity.InventoryItem, error) {
	if quantity < 0 {
		return nil, errors.BadRequest("quantity cannot be negative", nil)
	}

	var updated *entity.InventoryItem
	err := uc.uow.Run(ctx, func(ctx context.Context, store repository.TxStore) error {
		item, err := store.GetInventoryItem(ctx, itemID)
		if err != nil {
			return errors.NotFound("inventory item", err)
		}
		if item.VillageCouncilID != councilID {
			return errors.Forbidden("item belongs to another council", nil)
		}

		item.Quantity = quantity
		item.DeriveStatus()
		item.UpdatedAt = time.Now()
		if err := store.SetInventoryItem(ctx, item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, coordinationErr(err)
	}
	return updated, nil
}

// SetMaintenance parks an item in maintenance or returns it to derived
// status.
func (uc *InventoryUseCase) SetMaintenance(ctx context.Context, itemID, councilID string, inMaintenance bool) (*entity.InventoryItem, error) {
	var updated *entity.InventoryItem
	err := uc.uow.Run(ctx, func(ctx context.Context, store repository.TxStore) error {
		item, err := store.GetInventoryItem(ctx, itemID)
		if err != nil {
			return errors.NotFound("inventory item", err)
		}
		if item.VillageCouncilID != councilID {
			return errors.Forbidden("item belongs to another council", nil)
		}

		if inMaintenance {
			item.Status = entity.ItemMaintenance
		} else {
			item.Status = entity.ItemActive
			item.DeriveStatus()
		}
		item.UpdatedAt = time.Now()
		if err := store.SetInventoryItem(ctx, item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, coordinationErr(err)
	}
	return updated, nil
}

// Stats recomputes the council's stock aggregate from the item list.
func (uc *InventoryUseCase) Stats(ctx context.Context, councilID string) (*entity.InventoryStats, error) {
	items, err := uc.itemRepo.ListByCouncil(ctx, councilID)
	if err != nil {
		return nil, errors.Internal("failed to list inventory", err)
	}

	stats := &entity.InventoryStats{}
	for _, item := range items {
		stats.TotalItems++
		stats.TotalValue += float64(item.Quantity) * item.UnitCost
		switch item.Status {
		case entity.ItemActive:
			stats.ActiveItems++
		case entity.ItemMaintenance:
			stats.MaintenanceItems++
		}
		if item.Quantity <= item.MinimumStock {
			stats.LowStockItems++
		}
	}
	return stats, nil
}

// SubmitRequest proposes new stock to the council's parent block council.
// The parent is resolved once, at submit time, and stored on the request.
func (uc *InventoryUseCase) SubmitRequest(ctx context.Context, councilID string, spec ItemSpec) (*entity.InventoryRequest, error) {
	council, err := uc.hierarchy.GetActor(ctx, councilID)
	if err != nil {
		return nil, err
	}
	if council.Tier != entity.TierVillageCouncil {
		return nil, errors.Forbidden("only village councils can request inventory", nil)
	}
	if spec.Quantity <= 0 {
		return nil, errors.BadRequest("requested quantity must be positive", nil)
	}

	parent, err := uc.hierarchy.ParentOf(ctx, council.ID)
	if err != nil {
		return nil, errors.NotFound("parent block council", nil)
	}

	urgency := spec.Urgency
	if urgency == "" {
		urgency = entity.UrgencyNormal
	}

	request := &entity.InventoryRequest{
		ID:               uuid.New().String(),
		ItemName:         spec.Name,
		Category:         spec.Category,
		Quantity:         spec.Quantity,
		Unit:             spec.Unit,
		UnitCost:         spec.UnitCost,
		MinimumStock:     spec.MinimumStock,
		Description:      spec.Description,
		Urgency:          urgency,
		Status:           entity.RequestPending,
		VillageCouncilID: council.ID,
		BlockCouncilID:   parent.ID,
		CreatedAt:        time.Now(),
	}

	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, errors.Internal("failed to create inventory request", err)
	}

	metrics.InventoryRequests.Inc()
	return request, nil
}

// Approve moves a pending request to approved and creates the inventory
// item for the requesting council, atomically. Only the parent stored on
// the request may approve.
func (uc *InventoryUseCase) Approve(ctx context.Context, requestID, approverID string) (*entity.InventoryRequest, error) {
	return uc.process(ctx, requestID, approverID, true)
}

// Reject moves a pending request to rejected. No item is created.
func (uc *InventoryUseCase) Reject(ctx context.Context, requestID, approverID string) (*entity.InventoryRequest, error) {
	return uc.process(ctx, requestID, approverID, false)
}

func (uc *InventoryUseCase) process(ctx context.Context, requestID, approverID string, approve bool) (*entity.InventoryRequest, error) {
	var processed *entity.InventoryRequest

	err := uc.uow.Run(ctx, func(ctx context.Context, store repository.TxStore) error {
		request, err := store.GetInventoryRequest(ctx, requestID)
		if err != nil {
			return errors.NotFound("inventory request", err)
		}
		if request.BlockCouncilID != approverID {
			return errors.Forbidden("not authorized to process this request", nil)
		}
		if request.Status != entity.RequestPending {
			return errors.InvalidTransition("request has already been processed")
		}

		now := time.Now()
		if approve {
			item := uc.newItem(request.VillageCouncilID, ItemSpec{
				Name:         request.ItemName,
				Category:     request.Category,
				Quantity:     request.Quantity,
				Unit:         request.Unit,
				UnitCost:     request.UnitCost,
				MinimumStock: request.MinimumStock,
			})
			if err := store.SetInventoryItem(ctx, item); err != nil {
				return err
			}
			request.Status = entity.RequestApproved
		} else {
			request.Status = entity.RequestRejected
		}
		request.ProcessedBy = approverID
		request.ProcessedAt = &now

		if err := store.SetInventoryRequest(ctx, request); err != nil {
			return err
		}
		processed = request
		return nil
	})
	if err != nil {
		return nil, coordinationErr(err)
	}
	return processed, nil
}

func (uc *InventoryUseCase) ListRequestsForApprover(ctx context.Context, blockCouncilID string, status entity.RequestStatus) ([]*entity.InventoryRequest, error) {
	return uc.requestRepo.ListByApprover(ctx, blockCouncilID, status)
}

func (uc *InventoryUseCase) ListRequestsByCouncil(ctx context.Context, councilID string) ([]*entity.InventoryRequest, error) {
	return uc.requestRepo.ListByCouncil(ctx, councilID)
}
