package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/repository"
	"jalsetu/internal/infrastructure/metrics"
	"jalsetu/pkg/errors"
	"jalsetu/pkg/logger"
)

// BillingUseCase owns the financial ledger. Credits are bills issued
// against citizens; debits come from the resolution coordinator. The cash
// book is recomputed from the entry log on every read.
type BillingUseCase struct {
	transactionRepo repository.TransactionRepository
	hierarchy       *HierarchyUseCase
	uow             repository.UnitOfWork
}

func NewBillingUseCase(
	transactionRepo repository.TransactionRepository,
	hierarchy *HierarchyUseCase,
	uow repository.UnitOfWork,
) *BillingUseCase {
	return &BillingUseCase{
		transactionRepo: transactionRepo,
		hierarchy:       hierarchy,
		uow:             uow,
	}
}

type IssueBillInput struct {
	CitizenID string
	Amount    int64 // paise
	BillType  string
	DueDate   time.Time
	Period    *entity.BillPeriod
}

// IssueBill creates a pending credit entry against one citizen. The citizen
// must be associated with the issuing council.
func (uc *BillingUseCase) IssueBill(ctx context.Context, councilID string, input IssueBillInput) (*entity.Transaction, error) {
	council, err := uc.hierarchy.GetActor(ctx, councilID)
	if err != nil {
		return nil, err
	}
	if council.Tier != entity.TierVillageCouncil {
		return nil, errors.Forbidden("only village councils can generate bills", nil)
	}
	if input.Amount <= 0 {
		return nil, errors.BadRequest("bill amount must be positive", nil)
	}

	citizen, err := uc.hierarchy.GetActor(ctx, input.CitizenID)
	if err != nil {
		return nil, errors.NotFound("citizen", err)
	}
	if citizen.Tier != entity.TierCitizen || citizen.ParentID != council.ID {
		return nil, errors.NotFound("citizen", nil)
	}

	transaction := uc.newBill(council, citizen, input)
	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, errors.Internal("failed to create bill", err)
	}

	metrics.BillsGenerated.Inc()
	return transaction, nil
}

type BatchBillResult struct {
	GeneratedCount int                   `json:"generatedCount"`
	FailedCount    int                   `json:"failedCount"`
	Bills          []*entity.Transaction `json:"bills"`
}

// IssueBillToAllCitizens fans IssueBill out over every citizen of the
// council. A single citizen's failure does not abort the batch; failures
// are counted and reported alongside the successes.
func (uc *BillingUseCase) IssueBillToAllCitizens(ctx context.Context, councilID string, input IssueBillInput) (*BatchBillResult, error) {
	council, err := uc.hierarchy.GetActor(ctx, councilID)
	if err != nil {
		return nil, err
	}
	if council.Tier != entity.TierVillageCouncil {
		return nil, errors.Forbidden("only village councils can generate bills", nil)
	}
	if input.Amount <= 0 {
		return nil, errors.BadRequest("bill amount must be positive", nil)
	}

	citizens, err := uc.hierarchy.CitizensOf(ctx, council.ID)
	if err != nil {
		return nil, err
	}

	result := &BatchBillResult{Bills: make([]*entity.Transaction, 0, len(citizens))}
	for _, citizen := range citizens {
		if citizen.Tier != entity.TierCitizen {
			result.FailedCount++
			logger.Warn("skipping malformed citizen record %s during bill generation", citizen.ID)
			continue
		}

		transaction := uc.newBill(council, citizen, input)
		if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
			result.FailedCount++
			logger.LogLedgerError(transaction.BillNumber, "issue_bill", err)
			continue
		}
		result.GeneratedCount++
		result.Bills = append(result.Bills, transaction)
		metrics.BillsGenerated.Inc()
	}

	return result, nil
}

func (uc *BillingUseCase) newBill(council, citizen *entity.Actor, input IssueBillInput) *entity.Transaction {
	now := time.Now()
	due := input.DueDate
	id := uuid.New().String()
	return &entity.Transaction{
		ID:        id,
		CitizenID: citizen.ID,
		GeneratedBy: entity.GeneratedBy{
			ActorID:  council.ID,
			UniqueID: council.UniqueID,
			Tier:     council.Tier,
		},
		Kind:       entity.TransactionCredit,
		Amount:     input.Amount,
		Status:     entity.TransactionPending,
		Purpose:    input.BillType,
		BillNumber: fmt.Sprintf("BILL-%d-%s", now.UnixMilli(), id[:8]),
		BillType:   input.BillType,
		BillPeriod: input.Period,
		DueDate:    &due,
		CreatedAt:  now,
	}
}

// MarkPaid flips a pending credit to success. The only mutation the ledger
// ever applies to an existing entry.
func (uc *BillingUseCase) MarkPaid(ctx context.Context, councilID, transactionID string) (*entity.Transaction, error) {
	return uc.settle(ctx, councilID, transactionID, entity.TransactionSuccess)
}

// MarkFailed flips a pending credit to failed.
func (uc *BillingUseCase) MarkFailed(ctx context.Context, councilID, transactionID string) (*entity.Transaction, error) {
	return uc.settle(ctx, councilID, transactionID, entity.TransactionFailed)
}

func (uc *BillingUseCase) settle(ctx context.Context, councilID, transactionID string, status entity.TransactionStatus) (*entity.Transaction, error) {
	var settled *entity.Transaction

	err := uc.uow.Run(ctx, func(ctx context.Context, store repository.TxStore) error {
		transaction, err := store.GetTransaction(ctx, transactionID)
		if err != nil {
			return errors.NotFound("transaction", err)
		}
		if transaction.GeneratedBy.ActorID != councilID {
			return errors.Forbidden("transaction belongs to another council", nil)
		}
		if transaction.Kind != entity.TransactionCredit {
			return errors.InvalidTransition("only credit entries change status")
		}
		if transaction.Status != entity.TransactionPending {
			return errors.InvalidTransition(fmt.Sprintf("transaction is already %s", transaction.Status))
		}

		transaction.Status = status
		if status == entity.TransactionSuccess {
			transaction.PaymentDate = time.Now()
		}
		if err := store.SetTransaction(ctx, transaction); err != nil {
			return err
		}
		settled = transaction
		return nil
	})
	if err != nil {
		return nil, coordinationErr(err)
	}

	return settled, nil
}

// CashBook recomputes the council's aggregate from the full entry log.
// Deliberately not maintained incrementally: the numbers can never drift
// from the entries that back them.
func (uc *BillingUseCase) CashBook(ctx context.Context, councilID string) (*entity.CashBookStats, error) {
	transactions, err := uc.transactionRepo.ListByCouncil(ctx, councilID)
	if err != nil {
		return nil, errors.Internal("failed to load ledger entries", err)
	}

	stats := &entity.CashBookStats{}
	for _, t := range transactions {
		switch t.Kind {
		case entity.TransactionCredit:
			stats.TotalBillsGenerated++
			switch t.Status {
			case entity.TransactionSuccess:
				stats.TotalAmountCollected += t.Amount
			case entity.TransactionPending:
				stats.PendingAmount += t.Amount
			}
		case entity.TransactionDebit:
			if t.Status == entity.TransactionSuccess {
				stats.TotalExpenses += t.Amount
			}
		}
	}
	stats.NetBalance = stats.TotalAmountCollected - stats.TotalExpenses

	return stats, nil
}

func (uc *BillingUseCase) ListByCitizen(ctx context.Context, citizenID string, limit, offset int) ([]*entity.Transaction, error) {
	return uc.transactionRepo.ListByCitizen(ctx, citizenID, limit, offset)
}

func (uc *BillingUseCase) ListByCouncil(ctx context.Context, councilID string) ([]*entity.Transaction, error) {
	return uc.transactionRepo.ListByCouncil(ctx, councilID)
}
