package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"assurance/internal/quote/models"
	"assurance/pkg/platform/sentinel"
)

// InMemoryStore keeps quotes in a map; it is seeded at startup.
type InMemoryStore struct {
	mu     sync.RWMutex
	quotes map[string]*models.Quote
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{quotes: make(map[string]*models.Quote)}
}

// Seed inserts quotes, rejecting duplicate ids.
func (s *InMemoryStore) Seed(quotes []models.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range quotes {
		q := quotes[i]
		if q.ID == "" {
			return fmt.Errorf("seed quote %d: id is required", i)
		}
		if _, ok := s.quotes[q.ID]; ok {
			return fmt.Errorf("seed quote %s: %w", q.ID, sentinel.ErrConflict)
		}
		s.quotes[q.ID] = &q
	}
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id string) (*models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *q
	return &copied, nil
}

// List returns quotes ordered by quote number.
func (s *InMemoryStore) List(_ context.Context) ([]*models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Quote, 0, len(s.quotes))
	for _, q := range s.quotes {
		copied := *q
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuoteNumber < out[j].QuoteNumber })
	return out, nil
}
