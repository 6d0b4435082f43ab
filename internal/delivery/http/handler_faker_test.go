package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	httpdelivery "carpets-api/internal/delivery/http"
	"carpets-api/internal/models"
)

func fakeCarpet(f *gofakeit.Faker) models.Carpet {
	knots := int(f.Number(100, 900))
	age := int(f.Number(0, 120))
	rarity := f.Float64Range(0, 1)
	price := f.Float64Range(500, 50000)
	inStock := f.Bool()

	return models.Carpet{
		ID:              fmt.Sprintf("%024x", f.Uint64()),
		Title:           f.ProductName(),
		Description:     f.Sentence(8),
		Region:          f.RandomString([]string{"Tabriz", "Kashan", "Isfahan", "Qom"}),
		Style:           f.RandomString([]string{"medallion", "garden", "pictorial"}),
		SizeCm:          "200 x 300",
		Materials:       []string{f.RandomString([]string{"wool", "silk", "cotton"})},
		KnotDensityKpsi: &knots,
		AgeYears:        &age,
		PriceUSD:        &price,
		Images:          []string{f.URL()},
		Colors:          []string{f.Color()},
		RarityScore:     &rarity,
		IsFeatured:      f.Bool(),
		InStock:         &inStock,
	}
}

func Test_QueryCarpets_Many(t *testing.T) {
	f := gofakeit.New(42)
	var carpets []models.Carpet
	for i := 0; i < 20; i++ {
		carpets = append(carpets, fakeCarpet(f))
	}

	s := &svcStub{
		queryCarpets: func(context.Context, models.CatalogQuery) ([]models.Carpet, error) {
			return carpets, nil
		},
	}
	h := httpdelivery.NewHandler(s)
	r := h.InitRoutes()

	w := doJSON(t, r, http.MethodPost, "/api/carpets/query", `{}`)
	require.Equal(t, http.StatusOK, w.Code)

	var out []models.Carpet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 20)

	for i, c := range out {
		require.Equal(t, carpets[i].Title, c.Title)
		require.Equal(t, carpets[i].Region, c.Region)
		require.Equal(t, carpets[i].PriceUSD, c.PriceUSD)
		require.NotNil(t, c.RarityScore)
		require.GreaterOrEqual(t, *c.RarityScore, 0.0)
		require.LessOrEqual(t, *c.RarityScore, 1.0)
	}
}
