package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"carpets-api/internal/models"
)

const orderCollection = "order"

type OrderRepo struct {
	store *Store
}

func NewOrderRepo(s *Store) *OrderRepo {
	return &OrderRepo{store: s}
}

type orderDoc struct {
	OID          primitive.ObjectID `bson:"_id,omitempty"`
	models.Order `bson:",inline"`
}

func (r *OrderRepo) Create(ctx context.Context, o models.Order) (string, error) {
	o.ID = ""
	return r.store.insert(ctx, orderCollection, orderDoc{Order: o})
}
