package service

import (
	"context"
	"errors"
	"time"

	"crewdock/internal/autoapproval"
	"crewdock/internal/events"
	journeymodels "crewdock/internal/journey/models"
	"crewdock/internal/notification"
	regmodels "crewdock/internal/registration/models"
	"crewdock/internal/registration/validator"
	id "crewdock/pkg/domain"
	dErrors "crewdock/pkg/domain-errors"
	"crewdock/pkg/platform/sentinel"
	"crewdock/pkg/requestcontext"
)

// CreateInput is a crew member's registration attempt against one leg.
type CreateInput struct {
	LegID   id.LegID
	UserID  id.UserID
	Notes   string
	Answers []regmodels.Submission
}

// CreateResult reports what happened alongside the stored registration.
type CreateResult struct {
	Registration *regmodels.Registration

	// Reactivated is true when a cancelled registration was reused instead
	// of a new row being created.
	Reactivated bool

	// AssessmentScheduled is true when the auto-approval pipeline accepted
	// the registration for assessment.
	AssessmentScheduled bool
}

// Create registers a crew member on a leg. A cancelled registration for the
// same pair is reactivated in place; an active one is a conflict. When the
// journey has auto-approval enabled and at least one requirement, answers
// are mandatory and an assessment task is scheduled after commit.
func (s *Service) Create(ctx context.Context, in CreateInput) (*CreateResult, error) {
	leg, err := s.journeys.GetLeg(ctx, in.LegID)
	if err != nil {
		return nil, translateStoreErr(err, "leg not found")
	}
	journey, err := s.journeys.GetJourney(ctx, leg.JourneyID)
	if err != nil {
		return nil, translateStoreErr(err, "journey not found")
	}
	if !journey.Published {
		s.metrics.IncrementAttempt("rejected")
		return nil, dErrors.New(dErrors.CodeBadRequest, "journey is not open for registration")
	}

	requirements, err := s.journeys.ListRequirements(ctx, journey.ID)
	if err != nil {
		return nil, translateStoreErr(err, "journey not found")
	}

	autoApplies := autoapproval.Applies(*journey, len(requirements))
	if autoApplies && len(in.Answers) == 0 {
		s.metrics.IncrementAttempt("rejected")
		return nil, dErrors.New(dErrors.CodeBadRequest,
			"answers are required when the journey assesses registrations automatically")
	}

	subs := regmodels.CollapseSubmissions(in.Answers)
	if len(subs) > 0 {
		if violation := validator.Validate(requirements, subs); violation != nil {
			s.metrics.IncrementAttempt("rejected")
			return nil, dErrors.Wrap(violation, dErrors.CodeInvalidInput, violation.Error())
		}
	}

	now := requestcontext.Now(ctx)
	result, err := s.createOrReactivate(ctx, in, now)
	if err != nil {
		return nil, err
	}
	reg := result.Registration

	// A reactivated row reruns the pipeline from scratch, so the previous
	// activation's answers never survive: the stored set is replaced with
	// this attempt's, which may be empty.
	if len(subs) > 0 || result.Reactivated {
		answers := regmodels.BindSubmissions(reg.ID, subs, now)
		if err := s.answers.ReplaceForRegistration(ctx, reg.ID, answers); err != nil {
			// The registration row is committed; surface a distinct message
			// so the client knows to retry the answers, not the whole flow.
			s.logger.ErrorContext(ctx, "answers could not be stored after registration commit",
				"registration_id", reg.ID, "error", err)
			return nil, dErrors.Wrap(err, dErrors.CodeInternal,
				"registration was created but answers could not be stored; resubmit answers")
		}
		if len(subs) > 0 {
			s.emit(ctx, events.Event{
				Action:         events.ActionAnswersReplaced,
				RegistrationID: reg.ID,
				LegID:          reg.LegID,
				UserID:         reg.UserID,
				ActorID:        in.UserID,
			})
		}
	}

	if autoApplies {
		result.AssessmentScheduled = s.scheduleAssessment(ctx, reg)
	}

	s.notifyOwner(ctx, journey, reg, autoApplies && result.AssessmentScheduled)

	action := events.ActionRegistrationCreated
	outcome := "created"
	if result.Reactivated {
		action = events.ActionRegistrationReactivated
		outcome = "reactivated"
	}
	s.metrics.IncrementAttempt(outcome)
	s.emit(ctx, events.Event{
		Action:         action,
		RegistrationID: reg.ID,
		JourneyID:      journey.ID,
		LegID:          reg.LegID,
		UserID:         reg.UserID,
		ActorID:        in.UserID,
	})
	return result, nil
}

// createOrReactivate resolves the (leg, user) pair: reuse a cancelled row,
// conflict on an active one, insert otherwise. The storage layer backs the
// same invariant, so a concurrent duplicate still surfaces as a conflict.
func (s *Service) createOrReactivate(ctx context.Context, in CreateInput, now time.Time) (*CreateResult, error) {
	existing, err := s.registrations.GetByLegAndUser(ctx, in.LegID, in.UserID)
	switch {
	case err == nil && existing.Status.IsActive():
		s.metrics.IncrementAttempt("conflict")
		return nil, dErrors.New(dErrors.CodeConflict, "an active registration already exists for this leg")
	case err == nil:
		if err := existing.Reactivate(in.Notes, now); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeConflict, "registration cannot be reactivated")
		}
		if err := s.registrations.Update(ctx, existing); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				s.metrics.IncrementAttempt("conflict")
			}
			return nil, translateStoreErr(err, "registration not found")
		}
		return &CreateResult{Registration: existing, Reactivated: true}, nil
	case errors.Is(err, sentinel.ErrNotFound):
		reg := regmodels.NewRegistration(in.LegID, in.UserID, in.Notes, now)
		if err := s.registrations.Create(ctx, reg); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				s.metrics.IncrementAttempt("conflict")
			}
			return nil, translateStoreErr(err, "registration not found")
		}
		return &CreateResult{Registration: reg}, nil
	default:
		return nil, translateStoreErr(err, "registration not found")
	}
}

// scheduleAssessment marks the registration for assessment and enqueues the
// task. A full queue parks the registration for manual review instead of
// failing the request.
func (s *Service) scheduleAssessment(ctx context.Context, reg *regmodels.Registration) bool {
	reg.AssessmentState = regmodels.AssessmentScheduled
	if err := s.registrations.Update(ctx, reg); err != nil {
		s.logger.ErrorContext(ctx, "failed to mark registration for assessment",
			"registration_id", reg.ID, "error", err)
		return false
	}
	if s.scheduler == nil || !s.scheduler.Schedule(ctx, autoapproval.Task{RegistrationID: reg.ID}) {
		reg.AssessmentState = regmodels.AssessmentFailed
		if err := s.registrations.Update(ctx, reg); err != nil {
			s.logger.ErrorContext(ctx, "failed to park registration for manual review",
				"registration_id", reg.ID, "error", err)
		}
		s.emit(ctx, events.Event{
			Action:         events.ActionAssessmentFailed,
			RegistrationID: reg.ID,
			LegID:          reg.LegID,
			UserID:         reg.UserID,
			Reason:         "assessment queue unavailable",
		})
		return false
	}
	s.emit(ctx, events.Event{
		Action:         events.ActionAssessmentScheduled,
		RegistrationID: reg.ID,
		LegID:          reg.LegID,
		UserID:         reg.UserID,
	})
	return true
}

// notifyOwner applies the notification policy and delivers when it says to.
// Delivery failures are logged; they never fail the registration.
func (s *Service) notifyOwner(ctx context.Context, journey *journeymodels.Journey, reg *regmodels.Registration, assessmentPending bool) {
	payload := notification.Payload{
		OwnerID:        journey.OwnerID,
		RegistrationID: reg.ID,
		JourneyID:      journey.ID,
		JourneyName:    journey.Name,
		CrewName:       s.crewDisplayName(ctx, reg.UserID),
	}
	decision := notification.Decide(assessmentPending, payload)
	if !decision.Notify || s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyNewRegistration(ctx, decision.Payload, reg.UserID); err != nil {
		s.logger.WarnContext(ctx, "owner notification failed",
			"registration_id", reg.ID, "owner_id", journey.OwnerID, "error", err)
		return
	}
	s.emit(ctx, events.Event{
		Action:         events.ActionOwnerNotified,
		RegistrationID: reg.ID,
		JourneyID:      journey.ID,
		UserID:         reg.UserID,
	})
}

func (s *Service) crewDisplayName(ctx context.Context, userID id.UserID) string {
	if s.profiles == nil {
		return ""
	}
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return ""
	}
	return profile.DisplayName
}
