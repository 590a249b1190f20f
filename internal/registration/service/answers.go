package service

import (
	"context"

	"crewdock/internal/events"
	regmodels "crewdock/internal/registration/models"
	"crewdock/internal/registration/validator"
	id "crewdock/pkg/domain"
	dErrors "crewdock/pkg/domain-errors"
	"crewdock/pkg/requestcontext"
)

// Answers returns the registration's answer set. Visible to the registering
// crew member and the journey owner.
func (s *Service) Answers(ctx context.Context, regID id.RegistrationID, actorID id.UserID) ([]regmodels.Answer, error) {
	reg, err := s.registrations.Get(ctx, regID)
	if err != nil {
		return nil, translateStoreErr(err, "registration not found")
	}
	if reg.UserID != actorID {
		if _, err := s.ownedJourney(ctx, reg, actorID); err != nil {
			return nil, err
		}
	}
	answers, err := s.answers.ListByRegistration(ctx, regID)
	if err != nil {
		return nil, translateStoreErr(err, "answers not found")
	}
	return answers, nil
}

// ReplaceAnswers swaps the registration's full answer set. Only the crew
// member may do this, and only while the registration is still pending: a
// decided registration's answers are part of the decision record.
func (s *Service) ReplaceAnswers(ctx context.Context, regID id.RegistrationID, actorID id.UserID, subs []regmodels.Submission) ([]regmodels.Answer, error) {
	reg, err := s.registrations.Get(ctx, regID)
	if err != nil {
		return nil, translateStoreErr(err, "registration not found")
	}
	if reg.UserID != actorID {
		return nil, dErrors.New(dErrors.CodeForbidden, "only the registering crew member may change answers")
	}
	if reg.Status != id.StatusPendingApproval {
		return nil, dErrors.New(dErrors.CodeConflict, "answers can only be changed while the registration is pending")
	}

	leg, err := s.journeys.GetLeg(ctx, reg.LegID)
	if err != nil {
		return nil, translateStoreErr(err, "leg not found")
	}
	requirements, err := s.journeys.ListRequirements(ctx, leg.JourneyID)
	if err != nil {
		return nil, translateStoreErr(err, "journey not found")
	}

	subs = regmodels.CollapseSubmissions(subs)
	if violation := validator.Validate(requirements, subs); violation != nil {
		return nil, dErrors.Wrap(violation, dErrors.CodeInvalidInput, violation.Error())
	}

	answers := regmodels.BindSubmissions(regID, subs, requestcontext.Now(ctx))
	if err := s.answers.ReplaceForRegistration(ctx, regID, answers); err != nil {
		return nil, translateStoreErr(err, "registration not found")
	}

	s.metrics.IncrementAnswerReplacement()
	s.emit(ctx, events.Event{
		Action:         events.ActionAnswersReplaced,
		RegistrationID: regID,
		LegID:          reg.LegID,
		UserID:         reg.UserID,
		ActorID:        actorID,
	})
	return answers, nil
}
