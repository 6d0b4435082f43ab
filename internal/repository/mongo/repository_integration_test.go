package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"

	"carpets-api/internal/models"
	mongostore "carpets-api/internal/repository/mongo"
	"carpets-api/internal/service"
)

type mongoEnv struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	Store    *mongostore.Store
}

func upMongo(t *testing.T) *mongoEnv {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in -short mode")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.Run("mongo", "7", nil)
	require.NoError(t, err)

	env := &mongoEnv{pool: pool, resource: resource}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	require.NoError(t, pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		store, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      "mongodb://localhost:" + resource.GetPort("27017/tcp"),
			Database: "carpets_test",
		})
		if err != nil {
			return err
		}
		env.Store = store
		return nil
	}))

	t.Cleanup(func() { _ = env.Store.Close(context.Background()) })
	return env
}

func TestCarpetRepo_CreateGetRoundTrip(t *testing.T) {
	env := upMongo(t)
	repo := mongostore.NewCarpetRepo(env.Store)
	ctx := context.Background()

	in := service.SampleCarpets()[0]
	id, err := repo.Create(ctx, in)
	require.NoError(t, err)
	require.Len(t, id, 24)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, got.ID)

	in.ID = id
	require.Equal(t, in, got)
}

func TestCarpetRepo_GetByID_Errors(t *testing.T) {
	env := upMongo(t)
	repo := mongostore.NewCarpetRepo(env.Store)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "not-a-hex-id")
	require.ErrorIs(t, err, mongostore.ErrInvalidID)

	_, err = repo.GetByID(ctx, "64f0c2a1b3d4e5f6a7b8c9d0")
	require.ErrorIs(t, err, mongostore.ErrNotFound)
}

func TestCarpetRepo_QueryPredicates(t *testing.T) {
	env := upMongo(t)
	repo := mongostore.NewCarpetRepo(env.Store)
	ctx := context.Background()

	for _, c := range service.SampleCarpets() {
		_, err := repo.Create(ctx, c)
		require.NoError(t, err)
	}

	max := 30000.0
	got, err := repo.Query(ctx, models.CatalogQuery{MaxPrice: &max, FeaturedOnly: true}, 50)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Tabriz Garden of Paradise", got[0].Title)

	got, err = repo.Query(ctx, models.CatalogQuery{Region: "Kashan"}, 50)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Kashan Royal Court", got[0].Title)

	got, err = repo.Query(ctx, models.CatalogQuery{}, 50)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, c := range got {
		require.Len(t, c.ID, 24)
	}

	got, err = repo.Query(ctx, models.CatalogQuery{}, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)
}

func TestOrderAndReviewRepos_Create(t *testing.T) {
	env := upMongo(t)
	ctx := context.Background()

	carpets := mongostore.NewCarpetRepo(env.Store)
	carpetID, err := carpets.Create(ctx, service.SampleCarpets()[2])
	require.NoError(t, err)

	one := 1
	price := 36000.0
	orders := mongostore.NewOrderRepo(env.Store)
	orderID, err := orders.Create(ctx, models.Order{
		CustomerName:    "A",
		CustomerEmail:   "a@b.c",
		ShippingAddress: "street 1",
		Items: []models.OrderItem{
			{CarpetID: carpetID, Quantity: &one, PriceUSD: &price},
		},
		SubtotalUSD: &price,
		UpsellIDs:   []string{},
	})
	require.NoError(t, err)
	require.Len(t, orderID, 24)

	reviews := mongostore.NewReviewRepo(env.Store)
	reviewID, err := reviews.Create(ctx, models.Review{
		CarpetID: carpetID,
		Name:     "B",
		Rating:   5,
		Comment:  "worth it",
	})
	require.NoError(t, err)
	require.Len(t, reviewID, 24)

	names, err := env.Store.CollectionNames(ctx)
	require.NoError(t, err)
	require.Contains(t, names, "carpet")
	require.Contains(t, names, "order")
	require.Contains(t, names, "review")
}
