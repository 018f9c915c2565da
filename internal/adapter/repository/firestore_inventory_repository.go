package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/repository"
	"jalsetu/pkg/logger"
)

type firestoreInventoryRepository struct {
	client *firestore.Client
}

func NewFirestoreInventoryRepository(client *firestore.Client) repository.InventoryRepository {
	return &firestoreInventoryRepository{
		client: client,
	}
}

func (r *firestoreInventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	_, err := r.client.Collection("inventory_items").Doc(item.ID).Set(ctx, item)
	return err
}

func (r *firestoreInventoryRepository) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	doc, err := r.client.Collection("inventory_items").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var item entity.InventoryItem
	if err := doc.DataTo(&item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *firestoreInventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	_, err := r.client.Collection("inventory_items").Doc(item.ID).Set(ctx, item)
	return err
}

func (r *firestoreInventoryRepository) ListByCouncil(ctx context.Context, councilID string) ([]*entity.InventoryItem, error) {
	query := r.client.Collection("inventory_items").Where("villageCouncilId", "==", councilID)
	return r.collect(ctx, query)
}

// ListLowStock filters in memory: Firestore cannot compare two fields of the
// same document in a query.
func (r *firestoreInventoryRepository) ListLowStock(ctx context.Context, councilID string) ([]*entity.InventoryItem, error) {
	items, err := r.ListByCouncil(ctx, councilID)
	if err != nil {
		return nil, err
	}

	low := make([]*entity.InventoryItem, 0)
	for _, item := range items {
		if item.Quantity <= item.MinimumStock {
			low = append(low, item)
		}
	}
	return low, nil
}

func (r *firestoreInventoryRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.InventoryItem, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	items := make([]*entity.InventoryItem, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var item entity.InventoryItem
		if err := doc.DataTo(&item); err != nil {
			logger.Warn("error converting inventory item document: %v", err)
			continue
		}
		items = append(items, &item)
	}

	return items, nil
}

type firestoreInventoryRequestRepository struct {
	client *firestore.Client
}

func NewFirestoreInventoryRequestRepository(client *firestore.Client) repository.InventoryRequestRepository {
	return &firestoreInventoryRequestRepository{
		client: client,
	}
}

func (r *firestoreInventoryRequestRepository) Create(ctx context.Context, request *entity.InventoryRequest) error {
	_, err := r.client.Collection("inventory_requests").Doc(request.ID).Set(ctx, request)
	return err
}

func (r *firestoreInventoryRequestRepository) GetByID(ctx context.Context, id string) (*entity.InventoryRequest, error) {
	doc, err := r.client.Collection("inventory_requests").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var request entity.InventoryRequest
	if err := doc.DataTo(&request); err != nil {
		return nil, err
	}

	return &request, nil
}

func (r *firestoreInventoryRequestRepository) ListByApprover(ctx context.Context, blockCouncilID string, status entity.RequestStatus) ([]*entity.InventoryRequest, error) {
	query := r.client.Collection("inventory_requests").Where("blockCouncilId", "==", blockCouncilID)
	if status != "" {
		query = query.Where("status", "==", string(status))
	}
	return r.collect(ctx, query)
}

func (r *firestoreInventoryRequestRepository) ListByCouncil(ctx context.Context, villageCouncilID string) ([]*entity.InventoryRequest, error) {
	query := r.client.Collection("inventory_requests").Where("villageCouncilId", "==", villageCouncilID)
	return r.collect(ctx, query)
}

func (r *firestoreInventoryRequestRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.InventoryRequest, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	requests := make([]*entity.InventoryRequest, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var request entity.InventoryRequest
		if err := doc.DataTo(&request); err != nil {
			logger.Warn("error converting inventory request document: %v", err)
			continue
		}
		requests = append(requests, &request)
	}

	return requests, nil
}
