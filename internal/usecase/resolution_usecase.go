package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/repository"
	"jalsetu/internal/infrastructure/metrics"
	"jalsetu/pkg/errors"
	"jalsetu/pkg/logger"
)

// ResolutionUseCase coordinates the terminal handling of a complaint:
// consuming inventory, recording the resolution, driving the complaint to
// resolved and appending the matching ledger debit. The whole sequence runs
// inside one unit of work, so partial application is never observable.
type ResolutionUseCase struct {
	uow            repository.UnitOfWork
	hierarchy      *HierarchyUseCase
	resolutionRepo repository.ResolutionRepository
	notifier       Notifier
}

func NewResolutionUseCase(
	uow repository.UnitOfWork,
	hierarchy *HierarchyUseCase,
	resolutionRepo repository.ResolutionRepository,
	notifier Notifier,
) *ResolutionUseCase {
	return &ResolutionUseCase{
		uow:            uow,
		hierarchy:      hierarchy,
		resolutionRepo: resolutionRepo,
		notifier:       notifier,
	}
}

type InventoryLineInput struct {
	ItemID   string
	Quantity int64
}

type ResolveComplaintResult struct {
	Complaint  *entity.Complaint        `json:"complaint"`
	Resolution *entity.ResolutionRecord `json:"resolution"`
}

// ResolveComplaint resolves a complaint on behalf of resolverID, consuming
// the listed inventory and recording the expenditure (rupees). The consumed
// items must belong to the village council that owns the complaint; a
// higher tier resolving on the village's behalf still spends the village's
// stock. Idempotent per complaint: a second call fails AlreadyResolved and
// mutates nothing.
func (uc *ResolutionUseCase) ResolveComplaint(ctx context.Context, complaintID, resolverID string, expenditure float64, lines []InventoryLineInput, remarks string) (*ResolveComplaintResult, error) {
	if expenditure < 0 {
		return nil, errors.BadRequest("expenditure cannot be negative", nil)
	}

	resolver, err := uc.hierarchy.GetActor(ctx, resolverID)
	if err != nil {
		return nil, err
	}
	switch resolver.Tier {
	case entity.TierVillageCouncil, entity.TierBlockCouncil, entity.TierDistrictBody:
	default:
		return nil, errors.Forbidden("only council tiers can resolve complaints", nil)
	}

	var result *ResolveComplaintResult

	err = uc.uow.Run(ctx, func(ctx context.Context, store repository.TxStore) error {
		complaint, err := store.GetComplaint(ctx, complaintID)
		if err != nil {
			return errors.NotFound("complaint", err)
		}
		if complaint.Status == entity.ComplaintResolved {
			return errors.AlreadyResolved(complaint.ID)
		}

		// Load each item once; repeated lines for the same item accumulate
		// against a single in-memory copy so the stock check sees the
		// combined consumption.
		items := make(map[string]*entity.InventoryItem)
		resolutionLines := make([]entity.ResolutionLine, 0, len(lines))
		totalInventoryCost := 0.0

		for _, line := range lines {
			if line.Quantity <= 0 {
				return errors.BadRequest("consumed quantity must be positive", nil)
			}

			item, ok := items[line.ItemID]
			if !ok {
				item, err = store.GetInventoryItem(ctx, line.ItemID)
				if err != nil {
					return errors.NotFound(fmt.Sprintf("inventory item %s", line.ItemID), err)
				}
				if item.VillageCouncilID != complaint.VillageCouncilID {
					return errors.NotFound(fmt.Sprintf("inventory item %s", line.ItemID), nil)
				}
				items[line.ItemID] = item
			}

			if item.Quantity < line.Quantity {
				return errors.InsufficientStock(item.Name)
			}
			item.Quantity -= line.Quantity

			lineCost := float64(line.Quantity) * item.UnitCost
			totalInventoryCost += lineCost

			resolutionLines = append(resolutionLines, entity.ResolutionLine{
				ItemID:   item.ID,
				ItemName: item.Name,
				Quantity: line.Quantity,
				Unit:     item.Unit,
				Cost:     lineCost,
			})
		}

		now := time.Now()
		for _, item := range items {
			item.DeriveStatus()
			item.UpdatedAt = now
			if err := store.SetInventoryItem(ctx, item); err != nil {
				return err
			}
		}

		record := &entity.ResolutionRecord{
			ID:                 uuid.New().String(),
			ComplaintID:        complaint.ID,
			ResolvedByID:       resolver.ID,
			ResolvedByTier:     resolver.Tier,
			Expenditure:        expenditure,
			InventoryUsed:      resolutionLines,
			TotalInventoryCost: totalInventoryCost,
			Remarks:            remarks,
			ResolvedAt:         now,
		}
		if err := store.SetResolution(ctx, record); err != nil {
			return err
		}

		complaint.Status = entity.ComplaintResolved
		complaint.Resolution = &entity.ResolutionSummary{
			ResolutionID: record.ID,
			Expenditure:  expenditure,
			ResolvedAt:   now,
			Remarks:      remarks,
		}
		complaint.UpdatedAt = now
		if err := store.SetComplaint(ctx, complaint); err != nil {
			return err
		}

		// Ledger keeps integer paise; the debit is born successful since
		// the expense has already happened by the time it is recorded.
		debit := &entity.Transaction{
			ID:        uuid.New().String(),
			CitizenID: complaint.CitizenID,
			GeneratedBy: entity.GeneratedBy{
				ActorID:  resolver.ID,
				UniqueID: resolver.UniqueID,
				Tier:     resolver.Tier,
			},
			Kind:         entity.TransactionDebit,
			Amount:       int64(math.Round(expenditure * 100)),
			Status:       entity.TransactionSuccess,
			Purpose:      "Inventory Usage",
			BillNumber:   fmt.Sprintf("INV-BILL-%d-%s", now.UnixMilli(), record.ID[:8]),
			BillType:     "Other",
			ResolutionID: record.ID,
			InventoryExpense: &entity.InventoryExpense{
				ComplaintID: complaint.ID,
				Items:       resolutionLines,
				TotalCost:   int64(math.Round(totalInventoryCost * 100)),
			},
			CreatedAt:   now,
			PaymentDate: now,
		}
		if err := store.SetTransaction(ctx, debit); err != nil {
			return err
		}

		result = &ResolveComplaintResult{
			Complaint:  complaint,
			Resolution: record,
		}
		return nil
	})
	if err != nil {
		return nil, coordinationErr(err)
	}

	logger.Info("complaint %s resolved by %s, expenditure %.2f, %d inventory lines",
		complaintID, resolver.UniqueID, expenditure, len(lines))
	metrics.ComplaintsResolved.Inc()

	if uc.notifier != nil {
		uc.notifier.PublishComplaintEvent(EventComplaintResolved, result.Complaint)
	}
	return result, nil
}

// GetResolutionDetails returns the immutable resolution record for a
// resolved complaint.
func (uc *ResolutionUseCase) GetResolutionDetails(ctx context.Context, complaintID string) (*entity.ResolutionRecord, error) {
	record, err := uc.resolutionRepo.GetByComplaintID(ctx, complaintID)
	if err != nil {
		return nil, errors.NotFound("resolution details", err)
	}
	return record, nil
}

// TotalExpenditureBy sums the expenditure across every resolution recorded
// by one actor.
func (uc *ResolutionUseCase) TotalExpenditureBy(ctx context.Context, resolverID string) (float64, error) {
	records, err := uc.resolutionRepo.ListByResolver(ctx, resolverID)
	if err != nil {
		return 0, errors.Internal("failed to list resolutions", err)
	}
	total := 0.0
	for _, r := range records {
		total += r.Expenditure
	}
	return total, nil
}
