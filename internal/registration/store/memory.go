package store

import (
	"context"
	"sort"
	"sync"

	"crewdock/internal/registration/models"
	id "crewdock/pkg/domain"
	"crewdock/pkg/platform/sentinel"
)

type pairKey struct {
	legID  id.LegID
	userID id.UserID
}

// MemoryRegistrationStore is an in-memory registration store for development
// and tests. It enforces the same single-active-registration invariant as
// the PostgreSQL store, under one mutex.
type MemoryRegistrationStore struct {
	mu            sync.RWMutex
	registrations map[id.RegistrationID]models.Registration
	active        map[pairKey]id.RegistrationID
}

// NewMemoryRegistrations creates an empty in-memory registration store.
func NewMemoryRegistrations() *MemoryRegistrationStore {
	return &MemoryRegistrationStore{
		registrations: make(map[id.RegistrationID]models.Registration),
		active:        make(map[pairKey]id.RegistrationID),
	}
}

func (s *MemoryRegistrationStore) Create(ctx context.Context, reg *models.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{reg.LegID, reg.UserID}
	if reg.Status.IsActive() {
		if _, taken := s.active[key]; taken {
			return sentinel.ErrConflict
		}
		s.active[key] = reg.ID
	}
	s.registrations[reg.ID] = *reg
	return nil
}

func (s *MemoryRegistrationStore) Get(ctx context.Context, regID id.RegistrationID) (*models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reg, ok := s.registrations[regID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := reg
	return &out, nil
}

func (s *MemoryRegistrationStore) GetByLegAndUser(ctx context.Context, legID id.LegID, userID id.UserID) (*models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := pairKey{legID, userID}
	if regID, ok := s.active[key]; ok {
		out := s.registrations[regID]
		return &out, nil
	}

	// No active registration; surface the most recently updated cancelled
	// one so callers can reactivate it.
	var newest *models.Registration
	for _, reg := range s.registrations {
		if reg.LegID != legID || reg.UserID != userID {
			continue
		}
		if newest == nil || reg.UpdatedAt.After(newest.UpdatedAt) {
			out := reg
			newest = &out
		}
	}
	if newest == nil {
		return nil, sentinel.ErrNotFound
	}
	return newest, nil
}

func (s *MemoryRegistrationStore) Update(ctx context.Context, reg *models.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.registrations[reg.ID]
	if !ok {
		return sentinel.ErrNotFound
	}

	key := pairKey{reg.LegID, reg.UserID}
	if reg.Status.IsActive() {
		if holder, taken := s.active[key]; taken && holder != reg.ID {
			return sentinel.ErrConflict
		}
		s.active[key] = reg.ID
	} else if old.Status.IsActive() && s.active[key] == reg.ID {
		delete(s.active, key)
	}

	s.registrations[reg.ID] = *reg
	return nil
}

func (s *MemoryRegistrationStore) ListByUser(ctx context.Context, userID id.UserID, filter ListFilter) ([]*models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Registration
	for _, reg := range s.registrations {
		if reg.UserID != userID {
			continue
		}
		if !filter.LegID.IsNil() && reg.LegID != filter.LegID {
			continue
		}
		if filter.Status != "" && reg.Status != filter.Status {
			continue
		}
		copied := reg
		out = append(out, &copied)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// MemoryAnswerStore is an in-memory answer store. Replacement swaps the full
// slice under the mutex, so concurrent replacements never interleave.
type MemoryAnswerStore struct {
	mu      sync.RWMutex
	answers map[id.RegistrationID][]models.Answer
}

// NewMemoryAnswers creates an empty in-memory answer store.
func NewMemoryAnswers() *MemoryAnswerStore {
	return &MemoryAnswerStore{answers: make(map[id.RegistrationID][]models.Answer)}
}

func (s *MemoryAnswerStore) ReplaceForRegistration(ctx context.Context, regID id.RegistrationID, answers []models.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	replacement := make([]models.Answer, len(answers))
	copy(replacement, answers)
	s.answers[regID] = replacement
	return nil
}

func (s *MemoryAnswerStore) ListByRegistration(ctx context.Context, regID id.RegistrationID) ([]models.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Answer, len(s.answers[regID]))
	copy(out, s.answers[regID])
	return out, nil
}
