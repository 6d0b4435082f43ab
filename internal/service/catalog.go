package service

import (
	"context"

	"github.com/pkg/errors"

	"carpets-api/internal/models"
	mongostore "carpets-api/internal/repository/mongo"
)

func (s *Service) CreateCarpet(ctx context.Context, c models.Carpet) (string, error) {
	if s.CarpetStore == nil {
		return "", ErrStoreUnavailable
	}
	normalizeCarpet(&c)
	if err := s.validate(c); err != nil {
		return "", err
	}
	return s.CarpetStore.Create(ctx, c)
}

func (s *Service) QueryCarpets(ctx context.Context, q models.CatalogQuery) ([]models.Carpet, error) {
	if s.CarpetStore == nil {
		return nil, ErrStoreUnavailable
	}
	return s.CarpetStore.Query(ctx, q, s.queryLimit)
}

func (s *Service) GetCarpet(ctx context.Context, id string) (models.Carpet, error) {
	if s.CarpetStore == nil {
		return models.Carpet{}, ErrStoreUnavailable
	}
	c, err := s.CarpetStore.GetByID(ctx, id)
	switch {
	case errors.Is(err, mongostore.ErrInvalidID):
		return models.Carpet{}, errors.Wrapf(ErrInvalidID, "%q", id)
	case errors.Is(err, mongostore.ErrNotFound):
		return models.Carpet{}, ErrNotFound
	case err != nil:
		return models.Carpet{}, err
	}
	return c, nil
}

// normalizeCarpet applies the schema defaults before validation runs:
// in_stock defaults to true and the list fields persist as empty arrays,
// not nulls.
func normalizeCarpet(c *models.Carpet) {
	if c.InStock == nil {
		t := true
		c.InStock = &t
	}
	if c.Materials == nil {
		c.Materials = []string{}
	}
	if c.Images == nil {
		c.Images = []string{}
	}
	if c.Colors == nil {
		c.Colors = []string{}
	}
}
