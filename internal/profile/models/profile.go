// Package models defines the crew profile as read by the registration
// pipeline. Profiles are owned by an external surface; this core only reads
// skills, accepted risk levels, and sailing experience for scoring.
package models

import (
	id "crewdock/pkg/domain"
)

// CrewProfile is the slice of a user's profile the matching engine consumes.
type CrewProfile struct {
	UserID      id.UserID
	DisplayName string

	// Skills are normalized skill names; each may carry a free-text
	// description which scoring ignores.
	Skills []Skill

	// RiskLevels are the risk categories the crew member accepts.
	RiskLevels []string

	// SailingExperience is the self-reported experience level; nil when the
	// profile has never set it.
	SailingExperience *int
}

// Skill is a named crew capability with an optional description.
type Skill struct {
	Name        string
	Description string
}

// SkillNames extracts the bare skill names for set operations.
func (p CrewProfile) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Name)
	}
	return names
}
