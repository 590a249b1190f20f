package models

import (
	pstrings "crewdock/pkg/platform/strings"
)

// EffectiveAttributes are the leg-level values the scoring engine and the
// details view consume, after applying leg overrides to journey defaults.
type EffectiveAttributes struct {
	Skills        []string
	RiskLevel     *string
	MinExperience *int
}

// ResolveEffective combines a journey's defaults with a leg's overrides.
// Skills are the union of both sets, normalized and deduplicated. Risk level
// and minimum experience take the leg's value when present (an explicit zero
// counts as present), else the journey's.
func ResolveEffective(j Journey, l Leg) EffectiveAttributes {
	eff := EffectiveAttributes{
		Skills:        NormalizeSkills(append(append([]string{}, j.Skills...), l.Skills...)),
		RiskLevel:     j.RiskLevel,
		MinExperience: j.MinExperience,
	}
	if l.RiskLevel != nil {
		eff.RiskLevel = l.RiskLevel
	}
	if l.MinExperience != nil {
		eff.MinExperience = l.MinExperience
	}
	return eff
}

// NormalizeSkills lowercases, trims, and deduplicates skill names so that
// "Navigation" and " navigation " count as one skill. Order of first
// occurrence is preserved.
func NormalizeSkills(skills []string) []string {
	return pstrings.DedupeAndTrimLower(skills)
}
