package repository

import (
	"context"

	"jalsetu/internal/domain/entity"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	GetByID(ctx context.Context, id string) (*entity.Complaint, error)
	Update(ctx context.Context, complaint *entity.Complaint) error
	ListByCouncil(ctx context.Context, councilID string, status entity.ComplaintStatus, limit, offset int) ([]*entity.Complaint, error)
	ListByCitizen(ctx context.Context, citizenID string, limit, offset int) ([]*entity.Complaint, error)
	ListEscalatedTo(ctx context.Context, actorID string, limit, offset int) ([]*entity.Complaint, error)
	CountByStatus(ctx context.Context, councilID string) (map[entity.ComplaintStatus]int, error)
}

type ResolutionRepository interface {
	GetByID(ctx context.Context, id string) (*entity.ResolutionRecord, error)
	GetByComplaintID(ctx context.Context, complaintID string) (*entity.ResolutionRecord, error)
	ListByResolver(ctx context.Context, resolverID string) ([]*entity.ResolutionRecord, error)
}

type AssignedWorkRepository interface {
	Create(ctx context.Context, work *entity.AssignedWork) error
	GetByID(ctx context.Context, id string) (*entity.AssignedWork, error)
	Update(ctx context.Context, work *entity.AssignedWork) error
	ListByContractor(ctx context.Context, contractorID string) ([]*entity.AssignedWork, error)
}
