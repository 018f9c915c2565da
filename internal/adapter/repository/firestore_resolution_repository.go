package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/repository"
	"jalsetu/pkg/logger"
)

type firestoreResolutionRepository struct {
	client *firestore.Client
}

func NewFirestoreResolutionRepository(client *firestore.Client) repository.ResolutionRepository {
	return &firestoreResolutionRepository{
		client: client,
	}
}

func (r *firestoreResolutionRepository) GetByID(ctx context.Context, id string) (*entity.ResolutionRecord, error) {
	doc, err := r.client.Collection("resolutions").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var record entity.ResolutionRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *firestoreResolutionRepository) GetByComplaintID(ctx context.Context, complaintID string) (*entity.ResolutionRecord, error) {
	query := r.client.Collection("resolutions").Where("complaintId", "==", complaintID).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		return nil, err
	}

	var record entity.ResolutionRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *firestoreResolutionRepository) ListByResolver(ctx context.Context, resolverID string) ([]*entity.ResolutionRecord, error) {
	iter := r.client.Collection("resolutions").Where("resolvedById", "==", resolverID).Documents(ctx)
	defer iter.Stop()

	records := make([]*entity.ResolutionRecord, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var record entity.ResolutionRecord
		if err := doc.DataTo(&record); err != nil {
			logger.Warn("error converting resolution document: %v", err)
			continue
		}
		records = append(records, &record)
	}

	return records, nil
}

type firestoreAssignedWorkRepository struct {
	client *firestore.Client
}

func NewFirestoreAssignedWorkRepository(client *firestore.Client) repository.AssignedWorkRepository {
	return &firestoreAssignedWorkRepository{
		client: client,
	}
}

func (r *firestoreAssignedWorkRepository) Create(ctx context.Context, work *entity.AssignedWork) error {
	_, err := r.client.Collection("assigned_works").Doc(work.ID).Set(ctx, work)
	return err
}

func (r *firestoreAssignedWorkRepository) GetByID(ctx context.Context, id string) (*entity.AssignedWork, error) {
	doc, err := r.client.Collection("assigned_works").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var work entity.AssignedWork
	if err := doc.DataTo(&work); err != nil {
		return nil, err
	}

	return &work, nil
}

func (r *firestoreAssignedWorkRepository) Update(ctx context.Context, work *entity.AssignedWork) error {
	_, err := r.client.Collection("assigned_works").Doc(work.ID).Set(ctx, work)
	return err
}

func (r *firestoreAssignedWorkRepository) ListByContractor(ctx context.Context, contractorID string) ([]*entity.AssignedWork, error) {
	iter := r.client.Collection("assigned_works").Where("contractorId", "==", contractorID).Documents(ctx)
	defer iter.Stop()

	works := make([]*entity.AssignedWork, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var work entity.AssignedWork
		if err := doc.DataTo(&work); err != nil {
			logger.Warn("error converting assigned work document: %v", err)
			continue
		}
		works = append(works, &work)
	}

	return works, nil
}
