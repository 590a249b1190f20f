// Package models defines the journey side of the marketplace as read by the
// registration pipeline: journeys, their legs, and the requirement questions
// crew must answer. This core never mutates journeys; owners manage them
// through a surface outside this repository.
package models

import (
	"sort"

	id "crewdock/pkg/domain"
)

// Journey is a multi-leg trip posted by an owner.
type Journey struct {
	ID                  id.JourneyID
	OwnerID             id.UserID
	Name                string
	Published           bool
	AutoApprovalEnabled bool

	// Journey-level defaults; legs may override (see Leg).
	Skills        []string
	RiskLevel     *string
	MinExperience *int
}

// Leg is one segment of a journey that crew can register for independently.
// Pointer fields are overrides: nil means "inherit from the journey", and an
// explicitly set zero (e.g. MinExperience of 0) counts as an override.
type Leg struct {
	ID        id.LegID
	JourneyID id.JourneyID
	Name      string

	Skills        []string
	RiskLevel     *string
	MinExperience *int
}

// Requirement is a question attached to a journey. Weight is informational
// only; the scoring engine does not consume it. Order is a stable secondary
// sort key and need not be unique.
type Requirement struct {
	ID           id.RequirementID
	JourneyID    id.JourneyID
	QuestionText string
	QuestionType id.QuestionType
	Options      []string
	IsRequired   bool
	Weight       float64
	Order        int
}

// SortRequirements orders requirements by Order, then by ID for stability
// when Order values collide.
func SortRequirements(reqs []Requirement) {
	sort.Slice(reqs, func(i, j int) bool {
		if reqs[i].Order != reqs[j].Order {
			return reqs[i].Order < reqs[j].Order
		}
		return reqs[i].ID.String() < reqs[j].ID.String()
	})
}
