package repository

import (
	"context"

	"carpets-api/internal/models"
	"carpets-api/internal/repository/mongo"
)

type CarpetStore interface {
	Create(ctx context.Context, c models.Carpet) (string, error)
	Query(ctx context.Context, q models.CatalogQuery, limit int64) ([]models.Carpet, error)
	GetByID(ctx context.Context, id string) (models.Carpet, error)
	Count(ctx context.Context) (int64, error)
}

type OrderStore interface {
	Create(ctx context.Context, o models.Order) (string, error)
}

type ReviewStore interface {
	Create(ctx context.Context, r models.Review) (string, error)
}

// StoreInfo backs the diagnostics endpoint only.
type StoreInfo interface {
	DatabaseName() string
	CollectionNames(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

type Repository struct {
	CarpetStore
	OrderStore
	ReviewStore
	StoreInfo
}

// NewRepository tolerates a nil store: the process must come up even when
// the database is unreachable, with every store-backed operation failing
// at call time instead.
func NewRepository(s *mongo.Store) *Repository {
	if s == nil {
		return &Repository{}
	}
	return &Repository{
		CarpetStore: mongo.NewCarpetRepo(s),
		OrderStore:  mongo.NewOrderRepo(s),
		ReviewStore: mongo.NewReviewRepo(s),
		StoreInfo:   s,
	}
}
