package store

import (
	"context"
	"sync"

	"crewdock/internal/journey/models"
	id "crewdock/pkg/domain"
	"crewdock/pkg/platform/sentinel"
)

// MemoryStore is an in-memory journey source for development and tests.
// Writes exist only to seed data; the registration core never mutates
// journeys.
type MemoryStore struct {
	mu           sync.RWMutex
	journeys     map[id.JourneyID]models.Journey
	legs         map[id.LegID]models.Leg
	requirements map[id.JourneyID][]models.Requirement
}

// NewMemory creates an empty in-memory journey store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		journeys:     make(map[id.JourneyID]models.Journey),
		legs:         make(map[id.LegID]models.Leg),
		requirements: make(map[id.JourneyID][]models.Requirement),
	}
}

func (s *MemoryStore) GetJourney(ctx context.Context, journeyID id.JourneyID) (*models.Journey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, ok := s.journeys[journeyID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := j
	return &out, nil
}

func (s *MemoryStore) GetLeg(ctx context.Context, legID id.LegID) (*models.Leg, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.legs[legID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := l
	return &out, nil
}

func (s *MemoryStore) ListRequirements(ctx context.Context, journeyID id.JourneyID) ([]models.Requirement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reqs := make([]models.Requirement, len(s.requirements[journeyID]))
	copy(reqs, s.requirements[journeyID])
	models.SortRequirements(reqs)
	return reqs, nil
}

// PutJourney seeds a journey.
func (s *MemoryStore) PutJourney(j models.Journey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.journeys[j.ID] = j
}

// PutLeg seeds a leg.
func (s *MemoryStore) PutLeg(l models.Leg) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.legs[l.ID] = l
}

// PutRequirement seeds a requirement.
func (s *MemoryStore) PutRequirement(r models.Requirement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requirements[r.JourneyID] = append(s.requirements[r.JourneyID], r)
}
