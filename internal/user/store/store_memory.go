package store

import (
	"context"
	"fmt"
	"sync"

	"assurance/internal/user/models"
	"assurance/pkg/platform/sentinel"
)

// InMemoryStore keeps users in a map; it is seeded at startup.
type InMemoryStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{users: make(map[string]*models.User)}
}

// Seed inserts users, rejecting duplicate ids.
func (s *InMemoryStore) Seed(users []models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range users {
		u := users[i]
		if u.ID == "" {
			return fmt.Errorf("seed user %d: id is required", i)
		}
		if _, ok := s.users[u.ID]; ok {
			return fmt.Errorf("seed user %s: %w", u.ID, sentinel.ErrConflict)
		}
		s.users[u.ID] = &u
	}
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *u
	return &copied, nil
}
