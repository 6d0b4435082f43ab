package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"carpets-api/internal/models"
)

const carpetCollection = "carpet"

type CarpetRepo struct {
	store *Store
}

func NewCarpetRepo(s *Store) *CarpetRepo {
	return &CarpetRepo{store: s}
}

// carpetDoc pairs the native _id with the entity fields. The ObjectID never
// leaves this package; callers only see the hex string on models.Carpet.
type carpetDoc struct {
	OID           primitive.ObjectID `bson:"_id,omitempty"`
	models.Carpet `bson:",inline"`
}

func (r *CarpetRepo) Create(ctx context.Context, c models.Carpet) (string, error) {
	c.ID = ""
	return r.store.insert(ctx, carpetCollection, carpetDoc{Carpet: c})
}

func (r *CarpetRepo) Query(ctx context.Context, q models.CatalogQuery, limit int64) ([]models.Carpet, error) {
	var docs []carpetDoc
	if err := r.store.find(ctx, carpetCollection, carpetFilter(q), limit, &docs); err != nil {
		return nil, err
	}
	out := make([]models.Carpet, 0, len(docs))
	for _, d := range docs {
		c := d.Carpet
		c.ID = d.OID.Hex()
		out = append(out, c)
	}
	return out, nil
}

func (r *CarpetRepo) GetByID(ctx context.Context, id string) (models.Carpet, error) {
	var doc carpetDoc
	if err := r.store.findOneByID(ctx, carpetCollection, id, &doc); err != nil {
		return models.Carpet{}, err
	}
	c := doc.Carpet
	c.ID = doc.OID.Hex()
	return c, nil
}

func (r *CarpetRepo) Count(ctx context.Context) (int64, error) {
	return r.store.count(ctx, carpetCollection, bson.M{})
}

// carpetFilter builds the conjunction of only the predicates the query
// provides. An empty query yields an empty filter.
func carpetFilter(q models.CatalogQuery) bson.M {
	filter := bson.M{}
	if q.Region != "" {
		filter["region"] = q.Region
	}
	if q.Style != "" {
		filter["style"] = q.Style
	}
	if q.MaxPrice != nil {
		filter["price_usd"] = bson.M{"$lte": *q.MaxPrice}
	}
	if q.FeaturedOnly {
		filter["is_featured"] = true
	}
	return filter
}
