package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/repository"
	apperrors "jalsetu/pkg/errors"
)

type firestoreUnitOfWork struct {
	client *firestore.Client
}

// NewFirestoreUnitOfWork returns a UnitOfWork backed by Firestore
// transactions. Contended units are retried by the client library, so the
// losing unit re-runs against committed state.
func NewFirestoreUnitOfWork(client *firestore.Client) repository.UnitOfWork {
	return &firestoreUnitOfWork{
		client: client,
	}
}

func (u *firestoreUnitOfWork) Run(ctx context.Context, fn func(ctx context.Context, store repository.TxStore) error) error {
	return u.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		return fn(ctx, &firestoreTxStore{client: u.client, tx: tx})
	})
}

// firestoreTxStore adapts one *firestore.Transaction to the TxStore
// interface. Firestore requires all reads before any write inside a
// transaction; callers already order their operations that way.
type firestoreTxStore struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

func (s *firestoreTxStore) get(collection, id, label string, out interface{}) error {
	doc, err := s.tx.Get(s.client.Collection(collection).Doc(id))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return apperrors.NotFound(label, err)
		}
		return err
	}
	return doc.DataTo(out)
}

func (s *firestoreTxStore) GetComplaint(ctx context.Context, id string) (*entity.Complaint, error) {
	var complaint entity.Complaint
	if err := s.get("complaints", id, "Complaint", &complaint); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (s *firestoreTxStore) SetComplaint(ctx context.Context, complaint *entity.Complaint) error {
	return s.tx.Set(s.client.Collection("complaints").Doc(complaint.ID), complaint)
}

func (s *firestoreTxStore) GetInventoryItem(ctx context.Context, id string) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	if err := s.get("inventory_items", id, "Inventory item", &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *firestoreTxStore) SetInventoryItem(ctx context.Context, item *entity.InventoryItem) error {
	return s.tx.Set(s.client.Collection("inventory_items").Doc(item.ID), item)
}

func (s *firestoreTxStore) GetInventoryRequest(ctx context.Context, id string) (*entity.InventoryRequest, error) {
	var request entity.InventoryRequest
	if err := s.get("inventory_requests", id, "Inventory request", &request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *firestoreTxStore) SetInventoryRequest(ctx context.Context, request *entity.InventoryRequest) error {
	return s.tx.Set(s.client.Collection("inventory_requests").Doc(request.ID), request)
}

func (s *firestoreTxStore) GetAssignedWork(ctx context.Context, id string) (*entity.AssignedWork, error) {
	var work entity.AssignedWork
	if err := s.get("assigned_works", id, "Assigned work", &work); err != nil {
		return nil, err
	}
	return &work, nil
}

func (s *firestoreTxStore) SetAssignedWork(ctx context.Context, work *entity.AssignedWork) error {
	return s.tx.Set(s.client.Collection("assigned_works").Doc(work.ID), work)
}

func (s *firestoreTxStore) GetTransaction(ctx context.Context, id string) (*entity.Transaction, error) {
	var transaction entity.Transaction
	if err := s.get("transactions", id, "Transaction", &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (s *firestoreTxStore) SetTransaction(ctx context.Context, transaction *entity.Transaction) error {
	return s.tx.Set(s.client.Collection("transactions").Doc(transaction.ID), transaction)
}

func (s *firestoreTxStore) SetResolution(ctx context.Context, record *entity.ResolutionRecord) error {
	return s.tx.Set(s.client.Collection("resolutions").Doc(record.ID), record)
}
