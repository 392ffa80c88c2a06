package service

import (
	"context"
	"errors"
	"strings"

	"assurance/internal/quote/models"
	dErrors "assurance/pkg/domain-errors"
	"assurance/pkg/platform/sentinel"
)

type Store interface {
	FindByID(ctx context.Context, id string) (*models.Quote, error)
	List(ctx context.Context) ([]*models.Quote, error)
}

// Service answers quote lookups.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) FindByID(ctx context.Context, id string) (*models.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "quote id is required")
	}
	q, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "quote not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load quote")
	}
	return q, nil
}

func (s *Service) List(ctx context.Context) ([]*models.Quote, error) {
	quotes, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list quotes")
	}
	return quotes, nil
}
