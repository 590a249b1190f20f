package store

import (
	"context"
	"sync"

	"crewdock/internal/profile/models"
	id "crewdock/pkg/domain"
	"crewdock/pkg/platform/sentinel"
)

// MemoryStore is an in-memory profile source for development and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[id.UserID]models.CrewProfile
}

// NewMemory creates an empty in-memory profile store.
func NewMemory() *MemoryStore {
	return &MemoryStore{profiles: make(map[id.UserID]models.CrewProfile)}
}

func (s *MemoryStore) GetProfile(ctx context.Context, userID id.UserID) (*models.CrewProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := p
	return &out, nil
}

// PutProfile seeds a profile.
func (s *MemoryStore) PutProfile(p models.CrewProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.UserID] = p
}
