package repository

import (
	"context"

	"jalsetu/internal/domain/entity"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	ListByCitizen(ctx context.Context, citizenID string, limit, offset int) ([]*entity.Transaction, error)
	// ListByCouncil returns every ledger entry generated by the council,
	// newest first. The cash book recomputes its aggregates from this.
	ListByCouncil(ctx context.Context, councilID string) ([]*entity.Transaction, error)
}
