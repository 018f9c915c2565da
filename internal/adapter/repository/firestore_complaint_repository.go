package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/repository"
	"jalsetu/pkg/logger"
)

type firestoreComplaintRepository struct {
	client *firestore.Client
}

func NewFirestoreComplaintRepository(client *firestore.Client) repository.ComplaintRepository {
	return &firestoreComplaintRepository{
		client: client,
	}
}

func (r *firestoreComplaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	_, err := r.client.Collection("complaints").Doc(complaint.ID).Set(ctx, complaint)
	return err
}

func (r *firestoreComplaintRepository) GetByID(ctx context.Context, id string) (*entity.Complaint, error) {
	doc, err := r.client.Collection("complaints").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var complaint entity.Complaint
	if err := doc.DataTo(&complaint); err != nil {
		return nil, err
	}

	return &complaint, nil
}

func (r *firestoreComplaintRepository) Update(ctx context.Context, complaint *entity.Complaint) error {
	_, err := r.client.Collection("complaints").Doc(complaint.ID).Set(ctx, complaint)
	return err
}

func (r *firestoreComplaintRepository) ListByCouncil(ctx context.Context, councilID string, status entity.ComplaintStatus, limit, offset int) ([]*entity.Complaint, error) {
	// Simple query without OrderBy to avoid composite index requirement
	query := r.client.Collection("complaints").Where("villageCouncilId", "==", councilID)
	if status != "" {
		query = query.Where("status", "==", string(status))
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.collect(ctx, query)
}

func (r *firestoreComplaintRepository) ListByCitizen(ctx context.Context, citizenID string, limit, offset int) ([]*entity.Complaint, error) {
	query := r.client.Collection("complaints").Where("citizenId", "==", citizenID)
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.collect(ctx, query)
}

func (r *firestoreComplaintRepository) ListEscalatedTo(ctx context.Context, actorID string, limit, offset int) ([]*entity.Complaint, error) {
	query := r.client.Collection("complaints").
		Where("escalatedTo", "==", actorID).
		Where("status", "==", string(entity.ComplaintEscalated))
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.collect(ctx, query)
}

func (r *firestoreComplaintRepository) CountByStatus(ctx context.Context, councilID string) (map[entity.ComplaintStatus]int, error) {
	complaints, err := r.ListByCouncil(ctx, councilID, "", 0, 0)
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.ComplaintStatus]int)
	for _, c := range complaints {
		counts[c.Status]++
	}
	return counts, nil
}

func (r *firestoreComplaintRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Complaint, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	complaints := make([]*entity.Complaint, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var complaint entity.Complaint
		if err := doc.DataTo(&complaint); err != nil {
			logger.Warn("error converting complaint document: %v", err)
			continue
		}
		complaints = append(complaints, &complaint)
	}

	return complaints, nil
}
