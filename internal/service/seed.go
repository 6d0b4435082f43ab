package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"carpets-api/internal/models"
)

// Seed populates the catalog with the demo set when it is empty. The guard
// is coarse: any existing carpet means "already seeded" and nothing is
// written. Returns the number of carpets inserted.
func (s *Service) Seed(ctx context.Context) (int, error) {
	if s.CarpetStore == nil {
		return 0, ErrStoreUnavailable
	}
	n, err := s.CarpetStore.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	samples := SampleCarpets()
	for _, c := range samples {
		id, err := s.CreateCarpet(ctx, c)
		if err != nil {
			return 0, err
		}
		logrus.Printf("seeded carpet %s (%s)", id, c.Title)
	}
	return len(samples), nil
}

func SampleCarpets() []models.Carpet {
	intp := func(v int) *int { return &v }
	floatp := func(v float64) *float64 { return &v }
	truep := func() *bool { t := true; return &t }

	return []models.Carpet{
		{
			Title:           "Isfahan Silk Medallion",
			Description:     "Fine silk-on-silk with central medallion and arabesque borders.",
			Region:          "Isfahan",
			Style:           "medallion",
			SizeCm:          "200 x 300",
			Materials:       []string{"silk"},
			KnotDensityKpsi: intp(650),
			AgeYears:        intp(15),
			PriceUSD:        floatp(48000),
			Images: []string{
				"https://images.unsplash.com/photo-1545239351-1141bd82e8a6?q=80&w=1600&auto=format&fit=crop",
			},
			Colors:      []string{"crimson", "ivory", "navy"},
			RarityScore: floatp(0.92),
			IsFeatured:  true,
			InStock:     truep(),
		},
		{
			Title:           "Tabriz Garden of Paradise",
			Description:     "Wool and silk blend with garden panels and cypress trees.",
			Region:          "Tabriz",
			Style:           "garden",
			SizeCm:          "240 x 340",
			Materials:       []string{"wool", "silk"},
			KnotDensityKpsi: intp(400),
			AgeYears:        intp(25),
			PriceUSD:        floatp(28000),
			Images: []string{
				"https://images.unsplash.com/photo-1618220179428-22790b461013?q=80&w=1600&auto=format&fit=crop",
			},
			Colors:      []string{"emerald", "gold", "brick"},
			RarityScore: floatp(0.8),
			IsFeatured:  true,
			InStock:     truep(),
		},
		{
			Title:           "Kashan Royal Court",
			Description:     "Antique wool masterpiece with courtly motifs and deep palette.",
			Region:          "Kashan",
			Style:           "pictorial",
			SizeCm:          "180 x 270",
			Materials:       []string{"wool"},
			KnotDensityKpsi: intp(300),
			AgeYears:        intp(70),
			PriceUSD:        floatp(36000),
			Images: []string{
				"https://images.unsplash.com/photo-1545239350-48bf079fb38e?q=80&w=1600&auto=format&fit=crop",
			},
			Colors:      []string{"ruby", "indigo", "beige"},
			RarityScore: floatp(0.86),
			IsFeatured:  false,
			InStock:     truep(),
		},
	}
}
