package service

import (
	"context"

	"carpets-api/internal/models"
)

func (s *Service) CreateOrder(ctx context.Context, o models.Order) (string, error) {
	if s.OrderStore == nil {
		return "", ErrStoreUnavailable
	}
	normalizeOrder(&o)
	if err := s.validate(o); err != nil {
		return "", err
	}
	return s.OrderStore.Create(ctx, o)
}

func (s *Service) CreateReview(ctx context.Context, r models.Review) (string, error) {
	if s.ReviewStore == nil {
		return "", ErrStoreUnavailable
	}
	if err := s.validate(r); err != nil {
		return "", err
	}
	return s.ReviewStore.Create(ctx, r)
}

// normalizeOrder leaves Items alone: an absent list must stay nil so the
// required check rejects it, while an explicit empty list passes.
func normalizeOrder(o *models.Order) {
	if o.UpsellIDs == nil {
		o.UpsellIDs = []string{}
	}
	for i := range o.Items {
		if o.Items[i].Quantity == nil {
			one := 1
			o.Items[i].Quantity = &one
		}
	}
}
