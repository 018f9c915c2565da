package repository

import (
	"context"

	"jalsetu/internal/domain/entity"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	ListByCouncil(ctx context.Context, councilID string) ([]*entity.InventoryItem, error)
	ListLowStock(ctx context.Context, councilID string) ([]*entity.InventoryItem, error)
}

type InventoryRequestRepository interface {
	Create(ctx context.Context, request *entity.InventoryRequest) error
	GetByID(ctx context.Context, id string) (*entity.InventoryRequest, error)
	ListByApprover(ctx context.Context, blockCouncilID string, status entity.RequestStatus) ([]*entity.InventoryRequest, error)
	ListByCouncil(ctx context.Context, villageCouncilID string) ([]*entity.InventoryRequest, error)
}
