package autoapproval

import (
	"context"
	"fmt"

	"crewdock/internal/journey/cache"
	journeystore "crewdock/internal/journey/store"
	"crewdock/internal/matching"
	profilestore "crewdock/internal/profile/store"
	regstore "crewdock/internal/registration/store"
	id "crewdock/pkg/domain"
)

// LocalAssessor is the in-process AssessmentService: it scores the
// registration with the matching engine and approves above a threshold.
// Deployments with a remote assessment endpoint swap this out; the worker
// contract is identical either way.
type LocalAssessor struct {
	registrations regstore.RegistrationStore
	journeys      journeystore.Store
	profiles      profilestore.Store
	resolver      *cache.Resolver
	threshold     int
}

// NewLocalAssessor wires the stores the scorer reads from. threshold is the
// minimum match percentage for approval.
func NewLocalAssessor(
	registrations regstore.RegistrationStore,
	journeys journeystore.Store,
	profiles profilestore.Store,
	resolver *cache.Resolver,
	threshold int,
) *LocalAssessor {
	return &LocalAssessor{
		registrations: registrations,
		journeys:      journeys,
		profiles:      profiles,
		resolver:      resolver,
		threshold:     threshold,
	}
}

func (a *LocalAssessor) Assess(ctx context.Context, registrationID id.RegistrationID) (*Outcome, error) {
	reg, err := a.registrations.Get(ctx, registrationID)
	if err != nil {
		return nil, fmt.Errorf("assess: load registration: %w", err)
	}

	leg, err := a.journeys.GetLeg(ctx, reg.LegID)
	if err != nil {
		return nil, fmt.Errorf("assess: load leg: %w", err)
	}
	journey, err := a.journeys.GetJourney(ctx, leg.JourneyID)
	if err != nil {
		return nil, fmt.Errorf("assess: load journey: %w", err)
	}
	profile, err := a.profiles.GetProfile(ctx, reg.UserID)
	if err != nil {
		return nil, fmt.Errorf("assess: load profile: %w", err)
	}
	effective, err := a.resolver.EffectiveForLeg(ctx, reg.LegID)
	if err != nil {
		return nil, fmt.Errorf("assess: resolve effective attributes: %w", err)
	}

	var journeyRisk []string
	if journey.RiskLevel != nil {
		journeyRisk = []string{*journey.RiskLevel}
	}

	score := matching.ComputeMatch(matching.Input{
		CrewSkills:             profile.SkillNames(),
		EffectiveSkills:        effective.Skills,
		CrewRiskLevels:         profile.RiskLevels,
		EffectiveRiskLevel:     effective.RiskLevel,
		JourneyRiskLevels:      journeyRisk,
		CrewExperience:         profile.SailingExperience,
		EffectiveMinExperience: effective.MinExperience,
	})

	approve := score >= a.threshold
	reasoning := fmt.Sprintf("match score %d against threshold %d for leg %q", score, a.threshold, leg.Name)
	return &Outcome{Score: score, Reasoning: reasoning, Approve: approve}, nil
}
