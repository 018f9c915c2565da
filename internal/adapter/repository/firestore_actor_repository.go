package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/repository"
	"jalsetu/pkg/logger"
)

type firestoreActorRepository struct {
	client *firestore.Client
}

func NewFirestoreActorRepository(client *firestore.Client) repository.ActorRepository {
	return &firestoreActorRepository{
		client: client,
	}
}

func (r *firestoreActorRepository) Create(ctx context.Context, actor *entity.Actor) error {
	_, err := r.client.Collection("actors").Doc(actor.ID).Set(ctx, actor)
	return err
}

func (r *firestoreActorRepository) GetByID(ctx context.Context, id string) (*entity.Actor, error) {
	doc, err := r.client.Collection("actors").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var actor entity.Actor
	if err := doc.DataTo(&actor); err != nil {
		return nil, err
	}

	return &actor, nil
}

func (r *firestoreActorRepository) GetByUniqueID(ctx context.Context, uniqueID string) (*entity.Actor, error) {
	query := r.client.Collection("actors").Where("uniqueId", "==", uniqueID).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		return nil, err
	}

	var actor entity.Actor
	if err := doc.DataTo(&actor); err != nil {
		return nil, err
	}

	return &actor, nil
}

func (r *firestoreActorRepository) ListByParent(ctx context.Context, parentID string, tier entity.Tier) ([]*entity.Actor, error) {
	query := r.client.Collection("actors").Where("parentId", "==", parentID).Where("tier", "==", string(tier))
	return r.collect(ctx, query)
}

func (r *firestoreActorRepository) ListByTier(ctx context.Context, tier entity.Tier) ([]*entity.Actor, error) {
	query := r.client.Collection("actors").Where("tier", "==", string(tier))
	return r.collect(ctx, query)
}

func (r *firestoreActorRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Actor, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	actors := make([]*entity.Actor, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var actor entity.Actor
		if err := doc.DataTo(&actor); err != nil {
			logger.Warn("error converting actor document: %v", err)
			continue
		}
		actors = append(actors, &actor)
	}

	return actors, nil
}
