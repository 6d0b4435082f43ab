package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"carpets-api/internal/models"
)

const reviewCollection = "review"

type ReviewRepo struct {
	store *Store
}

func NewReviewRepo(s *Store) *ReviewRepo {
	return &ReviewRepo{store: s}
}

type reviewDoc struct {
	OID           primitive.ObjectID `bson:"_id,omitempty"`
	models.Review `bson:",inline"`
}

func (r *ReviewRepo) Create(ctx context.Context, rev models.Review) (string, error) {
	rev.ID = ""
	return r.store.insert(ctx, reviewCollection, reviewDoc{Review: rev})
}
