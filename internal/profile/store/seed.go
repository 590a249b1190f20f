package store

import (
	"github.com/google/uuid"

	"crewdock/internal/profile/models"
	id "crewdock/pkg/domain"
)

// Demo fixture IDs, stable across restarts.
var (
	DemoCrewID       = id.UserID(uuid.MustParse("6f9c2a51-0000-4000-8000-000000000002"))
	DemoNoviceCrewID = id.UserID(uuid.MustParse("6f9c2a51-0000-4000-8000-000000000003"))
)

// SeedDemo loads two development profiles: an experienced crew member who
// clears the demo journey's bar and a novice who does not.
func SeedDemo(s *MemoryStore) {
	experienced := 6
	novice := 1

	s.PutProfile(models.CrewProfile{
		UserID:      DemoCrewID,
		DisplayName: "Alex Mariner",
		Skills: []models.Skill{
			{Name: "navigation", Description: "celestial and electronic"},
			{Name: "watchkeeping"},
			{Name: "night sailing"},
		},
		RiskLevels:        []string{"coastal", "offshore"},
		SailingExperience: &experienced,
	})

	s.PutProfile(models.CrewProfile{
		UserID:      DemoNoviceCrewID,
		DisplayName: "Sam Deckhand",
		Skills: []models.Skill{
			{Name: "cooking"},
		},
		RiskLevels:        []string{"coastal"},
		SailingExperience: &novice,
	})
}
