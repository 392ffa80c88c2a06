package store

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"assurance/internal/insurance/models"
	"assurance/pkg/platform/sentinel"
)

// InMemoryStore keeps beneficiaries and insurances in maps. userID is unique
// across beneficiaries.
type InMemoryStore struct {
	mu sync.RWMutex

	beneficiaries map[string]*models.Beneficiary
	byUserID      map[string]string
	insurances    map[string]*models.Insurance
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		beneficiaries: make(map[string]*models.Beneficiary),
		byUserID:      make(map[string]string),
		insurances:    make(map[string]*models.Insurance),
	}
}

// -----------------------------------------------------------------------------
// Beneficiaries
// -----------------------------------------------------------------------------

func (s *InMemoryStore) CreateBeneficiary(_ context.Context, b *models.Beneficiary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byUserID[b.UserID]; ok {
		return fmt.Errorf("beneficiary for user %s: %w", b.UserID, sentinel.ErrConflict)
	}
	if _, ok := s.beneficiaries[b.ID]; ok {
		return fmt.Errorf("beneficiary %s: %w", b.ID, sentinel.ErrConflict)
	}
	s.beneficiaries[b.ID] = b.Clone()
	s.byUserID[b.UserID] = b.ID
	return nil
}

func (s *InMemoryStore) FindBeneficiaryByID(_ context.Context, id string) (*models.Beneficiary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.beneficiaries[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return b.Clone(), nil
}

func (s *InMemoryStore) FindBeneficiaryByUserID(_ context.Context, userID string) (*models.Beneficiary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byUserID[userID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return s.beneficiaries[id].Clone(), nil
}

func (s *InMemoryStore) ListBeneficiaries(_ context.Context) ([]*models.Beneficiary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Beneficiary, 0, len(s.beneficiaries))
	for _, b := range s.beneficiaries {
		out = append(out, b.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// UpdateBeneficiary replaces a beneficiary. The user id cannot change.
func (s *InMemoryStore) UpdateBeneficiary(_ context.Context, b *models.Beneficiary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.beneficiaries[b.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	updated := b.Clone()
	updated.UserID = existing.UserID
	updated.Insurances = existing.Insurances
	s.beneficiaries[b.ID] = updated
	return nil
}

func (s *InMemoryStore) DeleteBeneficiary(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.beneficiaries[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	delete(s.beneficiaries, id)
	delete(s.byUserID, b.UserID)
	return nil
}

// AttachInsurance appends insuranceID to the beneficiary's policy list.
func (s *InMemoryStore) AttachInsurance(_ context.Context, beneficiaryID, insuranceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.beneficiaries[beneficiaryID]
	if !ok {
		return sentinel.ErrNotFound
	}
	b.Insurances = append(b.Insurances, insuranceID)
	return nil
}

// DetachInsurance removes insuranceID from the beneficiary's policy list.
func (s *InMemoryStore) DetachInsurance(_ context.Context, beneficiaryID, insuranceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.beneficiaries[beneficiaryID]
	if !ok {
		return sentinel.ErrNotFound
	}
	b.Insurances = slices.DeleteFunc(b.Insurances, func(id string) bool { return id == insuranceID })
	return nil
}

// -----------------------------------------------------------------------------
// Insurances
// -----------------------------------------------------------------------------

func (s *InMemoryStore) CreateInsurance(_ context.Context, ins *models.Insurance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.insurances[ins.ID]; ok {
		return fmt.Errorf("insurance %s: %w", ins.ID, sentinel.ErrConflict)
	}
	copied := *ins
	s.insurances[ins.ID] = &copied
	return nil
}

func (s *InMemoryStore) FindInsuranceByID(_ context.Context, id string) (*models.Insurance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ins, ok := s.insurances[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *ins
	return &copied, nil
}

func (s *InMemoryStore) ListInsurances(_ context.Context) ([]*models.Insurance, error) {
	return s.listInsurances(func(*models.Insurance) bool { return true }), nil
}

func (s *InMemoryStore) ListInsurancesByBeneficiary(_ context.Context, beneficiaryID string) ([]*models.Insurance, error) {
	return s.listInsurances(func(ins *models.Insurance) bool { return ins.BeneficiaryID == beneficiaryID }), nil
}

func (s *InMemoryStore) listInsurances(keep func(*models.Insurance) bool) []*models.Insurance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Insurance, 0)
	for _, ins := range s.insurances {
		if keep(ins) {
			copied := *ins
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *InMemoryStore) UpdateInsurance(_ context.Context, ins *models.Insurance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.insurances[ins.ID]; !ok {
		return sentinel.ErrNotFound
	}
	copied := *ins
	s.insurances[ins.ID] = &copied
	return nil
}

func (s *InMemoryStore) DeleteInsurance(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.insurances[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.insurances, id)
	return nil
}
