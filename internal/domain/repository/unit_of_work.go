package repository

import (
	"context"

	"jalsetu/internal/domain/entity"
)

// TxStore is the view of the stores available inside one atomic unit. Reads
// observe a consistent snapshot; writes are buffered and commit together or
// not at all.
type TxStore interface {
	GetComplaint(ctx context.Context, id string) (*entity.Complaint, error)
	SetComplaint(ctx context.Context, complaint *entity.Complaint) error

	GetInventoryItem(ctx context.Context, id string) (*entity.InventoryItem, error)
	SetInventoryItem(ctx context.Context, item *entity.InventoryItem) error

	GetInventoryRequest(ctx context.Context, id string) (*entity.InventoryRequest, error)
	SetInventoryRequest(ctx context.Context, request *entity.InventoryRequest) error

	GetAssignedWork(ctx context.Context, id string) (*entity.AssignedWork, error)
	SetAssignedWork(ctx context.Context, work *entity.AssignedWork) error

	GetTransaction(ctx context.Context, id string) (*entity.Transaction, error)
	SetTransaction(ctx context.Context, transaction *entity.Transaction) error

	SetResolution(ctx context.Context, record *entity.ResolutionRecord) error
}

// UnitOfWork runs fn atomically. Concurrent units touching the same records
// serialize: the implementation either retries fn on contention (so the
// loser re-reads committed state) or fails the whole unit. fn must therefore
// be side-effect free outside the TxStore.
type UnitOfWork interface {
	Run(ctx context.Context, fn func(ctx context.Context, store TxStore) error) error
}
