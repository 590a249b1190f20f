package service

import (
	"context"
	"encoding/json"

	journeymodels "crewdock/internal/journey/models"
	"crewdock/internal/matching"
	profilemodels "crewdock/internal/profile/models"
	regmodels "crewdock/internal/registration/models"
	id "crewdock/pkg/domain"
	dErrors "crewdock/pkg/domain-errors"
)

// AnsweredRequirement pairs a requirement with the answer addressing it, so
// the owner reads answers in context. Unanswered requirements appear with
// Answered false so the full question set stays visible.
type AnsweredRequirement struct {
	RequirementID id.RequirementID
	QuestionText  string
	QuestionType  id.QuestionType
	IsRequired    bool
	Answered      bool
	AnswerText    *string
	AnswerJSON    json.RawMessage
}

// Details is the owner's review view of one registration: the registration
// itself, the crew member's profile summary, the answers in requirement
// order, and live-computed compatibility signals.
type Details struct {
	Registration *regmodels.Registration
	CrewProfile  *profilemodels.CrewProfile
	Answers      []AnsweredRequirement

	// Effective is the leg's resolved attribute set, after leg-level
	// overrides are applied on top of the journey defaults.
	Effective journeymodels.EffectiveAttributes

	// SkillMatchPercentage is the standalone skill overlap, computed fresh
	// from current profile and journey data rather than read from the
	// stored assessment.
	SkillMatchPercentage int

	// ExperienceLevelMatches is nil when either side declares no
	// experience data.
	ExperienceLevelMatches *bool
}

// DetailsForOwner assembles the review view. Owner-only: the crew member
// reads their own registration through Get and Answers instead.
func (s *Service) DetailsForOwner(ctx context.Context, regID id.RegistrationID, actorID id.UserID) (*Details, error) {
	reg, err := s.registrations.Get(ctx, regID)
	if err != nil {
		return nil, translateStoreErr(err, "registration not found")
	}
	if _, err := s.ownedJourney(ctx, reg, actorID); err != nil {
		return nil, err
	}

	leg, err := s.journeys.GetLeg(ctx, reg.LegID)
	if err != nil {
		return nil, translateStoreErr(err, "leg not found")
	}
	journey, err := s.journeys.GetJourney(ctx, leg.JourneyID)
	if err != nil {
		return nil, translateStoreErr(err, "journey not found")
	}
	requirements, err := s.journeys.ListRequirements(ctx, journey.ID)
	if err != nil {
		return nil, translateStoreErr(err, "journey not found")
	}
	answers, err := s.answers.ListByRegistration(ctx, regID)
	if err != nil {
		return nil, translateStoreErr(err, "answers not found")
	}

	if s.profiles == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "profile source not configured")
	}
	profile, err := s.profiles.GetProfile(ctx, reg.UserID)
	if err != nil {
		return nil, translateStoreErr(err, "crew profile not found")
	}

	effective := journeymodels.ResolveEffective(*journey, *leg)

	return &Details{
		Registration:           reg,
		CrewProfile:            profile,
		Answers:                joinAnswers(requirements, answers),
		Effective:              effective,
		SkillMatchPercentage:   matching.SkillMatchPercent(profile.SkillNames(), effective.Skills),
		ExperienceLevelMatches: matching.ExperienceMatches(profile.SailingExperience, effective.MinExperience),
	}, nil
}

// joinAnswers walks every requirement in display order and attaches the
// matching answer where one exists. Requirements without an answer are kept
// with Answered false.
func joinAnswers(requirements []journeymodels.Requirement, answers []regmodels.Answer) []AnsweredRequirement {
	byRequirement := make(map[id.RequirementID]regmodels.Answer, len(answers))
	for _, a := range answers {
		byRequirement[a.RequirementID] = a
	}

	journeymodels.SortRequirements(requirements)
	out := make([]AnsweredRequirement, 0, len(requirements))
	for _, req := range requirements {
		ar := AnsweredRequirement{
			RequirementID: req.ID,
			QuestionText:  req.QuestionText,
			QuestionType:  req.QuestionType,
			IsRequired:    req.IsRequired,
		}
		if a, ok := byRequirement[req.ID]; ok {
			ar.Answered = true
			ar.AnswerText = a.AnswerText
			ar.AnswerJSON = a.AnswerJSON
		}
		out = append(out, ar)
	}
	return out
}
