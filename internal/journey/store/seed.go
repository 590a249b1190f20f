package store

import (
	"github.com/google/uuid"

	"crewdock/internal/journey/models"
	id "crewdock/pkg/domain"
)

// Demo fixture IDs, stable across restarts so tokens and curl scripts keep
// working in development.
var (
	DemoOwnerID   = id.UserID(uuid.MustParse("6f9c2a51-0000-4000-8000-000000000001"))
	DemoJourneyID = id.JourneyID(uuid.MustParse("6f9c2a51-0000-4000-8000-000000000010"))
	DemoLegID     = id.LegID(uuid.MustParse("6f9c2a51-0000-4000-8000-000000000011"))
	DemoManualLeg = id.LegID(uuid.MustParse("6f9c2a51-0000-4000-8000-000000000012"))

	DemoManualJourneyID = id.JourneyID(uuid.MustParse("6f9c2a51-0000-4000-8000-000000000020"))
)

// SeedDemo loads a small development dataset: one auto-approval journey with
// requirements and one manually reviewed journey without them.
func SeedDemo(s *MemoryStore) {
	highRisk := "offshore"
	minExp := 3

	s.PutJourney(models.Journey{
		ID:                  DemoJourneyID,
		OwnerID:             DemoOwnerID,
		Name:                "Azores Delivery",
		Published:           true,
		AutoApprovalEnabled: true,
		Skills:              []string{"navigation", "watchkeeping"},
		RiskLevel:           &highRisk,
		MinExperience:       &minExp,
	})
	s.PutLeg(models.Leg{
		ID:        DemoLegID,
		JourneyID: DemoJourneyID,
		Name:      "Horta to Lisbon",
		Skills:    []string{"night sailing"},
	})
	s.PutRequirement(models.Requirement{
		ID:           id.RequirementID(uuid.MustParse("6f9c2a51-0000-4000-8000-000000000031")),
		JourneyID:    DemoJourneyID,
		QuestionText: "Describe your offshore experience",
		QuestionType: id.QuestionTypeText,
		IsRequired:   true,
		Weight:       1,
		Order:        1,
	})
	s.PutRequirement(models.Requirement{
		ID:           id.RequirementID(uuid.MustParse("6f9c2a51-0000-4000-8000-000000000032")),
		JourneyID:    DemoJourneyID,
		QuestionText: "Do you hold a valid offshore medical certificate?",
		QuestionType: id.QuestionTypeYesNo,
		IsRequired:   true,
		Weight:       1,
		Order:        2,
	})

	s.PutJourney(models.Journey{
		ID:        DemoManualJourneyID,
		OwnerID:   DemoOwnerID,
		Name:      "Weekend Coastal Hop",
		Published: true,
	})
	s.PutLeg(models.Leg{
		ID:        DemoManualLeg,
		JourneyID: DemoManualJourneyID,
		Name:      "Marina Loop",
	})
}
