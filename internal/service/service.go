package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"carpets-api/internal/models"
	"carpets-api/internal/repository"
)

const defaultQueryLimit = 50

type Shop interface {
	CreateCarpet(ctx context.Context, c models.Carpet) (string, error)
	QueryCarpets(ctx context.Context, q models.CatalogQuery) ([]models.Carpet, error)
	GetCarpet(ctx context.Context, id string) (models.Carpet, error)
	CreateOrder(ctx context.Context, o models.Order) (string, error)
	CreateReview(ctx context.Context, r models.Review) (string, error)
	Seed(ctx context.Context) (int, error)
	Diagnostics(ctx context.Context) DiagReport
}

type Service struct {
	repository.CarpetStore
	repository.OrderStore
	repository.ReviewStore
	repository.StoreInfo

	v           *validator.Validate
	queryLimit  int64
	databaseURL string
}

type Option func(*Service)

func WithQueryLimit(n int64) Option {
	return func(s *Service) {
		if n > 0 {
			s.queryLimit = n
		}
	}
}

// WithDatabaseURL passes the configured connection string so diagnostics
// can report whether it was set without reading the environment itself.
func WithDatabaseURL(url string) Option {
	return func(s *Service) {
		s.databaseURL = url
	}
}

func NewService(repo *repository.Repository, opts ...Option) *Service {
	s := &Service{
		CarpetStore: repo.CarpetStore,
		OrderStore:  repo.OrderStore,
		ReviewStore: repo.ReviewStore,
		StoreInfo:   repo.StoreInfo,
		v:           validator.New(),
		queryLimit:  defaultQueryLimit,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) validate(entity any) error {
	err := s.v.Struct(entity)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		return fmt.Errorf("%w: %s", ErrValidation, humanizeValidationErrors(verrs))
	}
	return fmt.Errorf("%w: %s", ErrValidation, err)
}

func humanizeValidationErrors(errs validator.ValidationErrors) string {
	var b strings.Builder
	for _, fe := range errs {
		if fe.Param() != "" {
			fmt.Fprintf(&b, "%s: %s=%s; ", fe.Namespace(), fe.Tag(), fe.Param())
		} else {
			fmt.Fprintf(&b, "%s: %s; ", fe.Namespace(), fe.Tag())
		}
	}
	out := b.String()
	if len(out) > 2 {
		out = out[:len(out)-2]
	}
	return out
}
