// Package matching computes the 0-100 match percentage between a crew
// member and a leg's effective requirements. This is pure domain logic - no
// I/O, no side effects, no clock. Identical inputs always produce identical
// output.
package matching

import (
	"math"

	journeymodels "crewdock/internal/journey/models"
)

// Component weights. The blend is an internal policy; the contractual
// properties are monotonicity in skill overlap, clamping to [0,100], and
// neutral contributions for absent inputs.
const (
	weightSkills     = 0.60
	weightRisk       = 0.25
	weightExperience = 0.15
)

// Input carries everything the engine needs, pre-resolved. Pointer fields
// distinguish "absent" from an explicit zero.
type Input struct {
	CrewSkills      []string
	EffectiveSkills []string

	CrewRiskLevels     []string
	EffectiveRiskLevel *string
	JourneyRiskLevels  []string

	CrewExperience         *int
	EffectiveMinExperience *int
}

// ComputeMatch blends skill overlap, risk compatibility, and experience
// adequacy into a single bounded percentage.
func ComputeMatch(in Input) int {
	score := weightSkills*skillFraction(in) +
		weightRisk*riskFraction(in) +
		weightExperience*experienceFraction(in)

	pct := int(math.Round(score * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// SkillMatchPercent is the standalone skill overlap as a 0-100 percentage,
// used in owner-facing detail views alongside the blended score.
func SkillMatchPercent(crewSkills, effectiveSkills []string) int {
	return int(math.Round(skillFraction(Input{
		CrewSkills:      crewSkills,
		EffectiveSkills: effectiveSkills,
	}) * 100))
}

// ExperienceMatches reports whether the crew member meets the effective
// minimum experience. Nil when either side is absent.
func ExperienceMatches(crewExperience, effectiveMinExperience *int) *bool {
	if crewExperience == nil || effectiveMinExperience == nil {
		return nil
	}
	matches := *crewExperience >= *effectiveMinExperience
	return &matches
}

// skillFraction is the share of effective skills the crew member has.
// An empty effective skill set is neutral: nothing was asked for, so nothing
// can be missing.
func skillFraction(in Input) float64 {
	effective := journeymodels.NormalizeSkills(in.EffectiveSkills)
	if len(effective) == 0 {
		return 1
	}

	crew := make(map[string]struct{}, len(in.CrewSkills))
	for _, s := range journeymodels.NormalizeSkills(in.CrewSkills) {
		crew[s] = struct{}{}
	}

	matched := 0
	for _, s := range effective {
		if _, ok := crew[s]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(effective))
}

// riskFraction measures whether the crew member accepts the leg's risk
// profile. When the leg has an effective risk level, it is all-or-nothing;
// when only journey-level risk categories exist, the fraction accepted is
// used. No declared risk anywhere is neutral.
func riskFraction(in Input) float64 {
	accepted := make(map[string]struct{}, len(in.CrewRiskLevels))
	for _, r := range journeymodels.NormalizeSkills(in.CrewRiskLevels) {
		accepted[r] = struct{}{}
	}

	if in.EffectiveRiskLevel != nil {
		normalized := journeymodels.NormalizeSkills([]string{*in.EffectiveRiskLevel})
		if len(normalized) == 0 {
			return 1
		}
		if _, ok := accepted[normalized[0]]; ok {
			return 1
		}
		return 0
	}

	journeyLevels := journeymodels.NormalizeSkills(in.JourneyRiskLevels)
	if len(journeyLevels) == 0 {
		return 1
	}
	matched := 0
	for _, r := range journeyLevels {
		if _, ok := accepted[r]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(journeyLevels))
}

// experienceFraction is full credit when the minimum is met (or when either
// side is absent), proportional credit below it.
func experienceFraction(in Input) float64 {
	if in.CrewExperience == nil || in.EffectiveMinExperience == nil {
		return 1
	}
	crew, min := *in.CrewExperience, *in.EffectiveMinExperience
	if min <= 0 || crew >= min {
		return 1
	}
	if crew <= 0 {
		return 0
	}
	return float64(crew) / float64(min)
}
