package service

import (
	"context"
	"errors"
	"strings"

	"assurance/internal/user/models"
	dErrors "assurance/pkg/domain-errors"
	"assurance/pkg/platform/sentinel"
)

type Store interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// Service answers identity lookups for other services.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// FindByID returns the user or a not_found error.
func (s *Service) FindByID(ctx context.Context, id string) (*models.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "user id is required")
	}
	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "user not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}
	return u, nil
}
