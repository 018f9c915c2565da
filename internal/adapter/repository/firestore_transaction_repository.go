package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/repository"
	"jalsetu/pkg/logger"
)

type firestoreTransactionRepository struct {
	client *firestore.Client
}

func NewFirestoreTransactionRepository(client *firestore.Client) repository.TransactionRepository {
	return &firestoreTransactionRepository{
		client: client,
	}
}

func (r *firestoreTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	_, err := r.client.Collection("transactions").Doc(transaction.ID).Set(ctx, transaction)
	return err
}

func (r *firestoreTransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	doc, err := r.client.Collection("transactions").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var transaction entity.Transaction
	if err := doc.DataTo(&transaction); err != nil {
		return nil, err
	}

	return &transaction, nil
}

func (r *firestoreTransactionRepository) ListByCitizen(ctx context.Context, citizenID string, limit, offset int) ([]*entity.Transaction, error) {
	query := r.client.Collection("transactions").Where("citizenId", "==", citizenID)
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.collect(ctx, query)
}

func (r *firestoreTransactionRepository) ListByCouncil(ctx context.Context, councilID string) ([]*entity.Transaction, error) {
	query := r.client.Collection("transactions").Where("generatedBy.actorId", "==", councilID)
	transactions, err := r.collect(ctx, query)
	if err != nil {
		return nil, err
	}

	// Newest first, sorted in memory to avoid a composite index
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})
	return transactions, nil
}

func (r *firestoreTransactionRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Transaction, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	transactions := make([]*entity.Transaction, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var transaction entity.Transaction
		if err := doc.DataTo(&transaction); err != nil {
			logger.Warn("error converting transaction document: %v", err)
			continue
		}
		transactions = append(transactions, &transaction)
	}

	return transactions, nil
}
