package repository

import (
	"context"

	"jalsetu/internal/domain/entity"
)

type ActorRepository interface {
	Create(ctx context.Context, actor *entity.Actor) error
	GetByID(ctx context.Context, id string) (*entity.Actor, error)
	GetByUniqueID(ctx context.Context, uniqueID string) (*entity.Actor, error)
	ListByParent(ctx context.Context, parentID string, tier entity.Tier) ([]*entity.Actor, error)
	ListByTier(ctx context.Context, tier entity.Tier) ([]*entity.Actor, error)
}
