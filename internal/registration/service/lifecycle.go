package service

import (
	"context"
	"errors"

	"crewdock/internal/events"
	regmodels "crewdock/internal/registration/models"
	"crewdock/internal/registration/store"
	id "crewdock/pkg/domain"
	dErrors "crewdock/pkg/domain-errors"
	"crewdock/pkg/platform/sentinel"
	"crewdock/pkg/requestcontext"
)

// Cancel withdraws the actor's own registration. Allowed from any
// non-cancelled status; cancelling twice is a conflict.
func (s *Service) Cancel(ctx context.Context, regID id.RegistrationID, actorID id.UserID) (*regmodels.Registration, error) {
	reg, err := s.registrations.Get(ctx, regID)
	if err != nil {
		return nil, translateStoreErr(err, "registration not found")
	}
	if reg.UserID != actorID {
		return nil, dErrors.New(dErrors.CodeForbidden, "only the registering crew member may cancel")
	}

	if err := reg.Cancel(requestcontext.Now(ctx)); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeConflict, "registration is already cancelled")
	}
	if err := s.registrations.Update(ctx, reg); err != nil {
		return nil, translateStoreErr(err, "registration not found")
	}

	s.metrics.IncrementDecision("cancelled", "crew")
	s.emit(ctx, events.Event{
		Action:         events.ActionRegistrationCancelled,
		RegistrationID: reg.ID,
		LegID:          reg.LegID,
		UserID:         reg.UserID,
		ActorID:        actorID,
	})
	return reg, nil
}

// Approve is the journey owner's manual approval of a pending registration.
func (s *Service) Approve(ctx context.Context, regID id.RegistrationID, actorID id.UserID, notes string) (*regmodels.Registration, error) {
	reg, err := s.loadForOwner(ctx, regID, actorID)
	if err != nil {
		return nil, err
	}

	if err := reg.Approve(notes, nil, false, requestcontext.Now(ctx)); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeConflict, "registration is not awaiting a decision")
	}
	if err := s.registrations.Update(ctx, reg); err != nil {
		return nil, translateStoreErr(err, "registration not found")
	}

	s.metrics.IncrementDecision("approved", "owner")
	s.emit(ctx, events.Event{
		Action:         events.ActionRegistrationApproved,
		RegistrationID: reg.ID,
		LegID:          reg.LegID,
		UserID:         reg.UserID,
		ActorID:        actorID,
		Decision:       string(id.StatusApproved),
	})
	return reg, nil
}

// Decline is the journey owner's manual rejection, carrying a reason the
// crew member will see.
func (s *Service) Decline(ctx context.Context, regID id.RegistrationID, actorID id.UserID, reason string) (*regmodels.Registration, error) {
	reg, err := s.loadForOwner(ctx, regID, actorID)
	if err != nil {
		return nil, err
	}

	if err := reg.Decline(reason, false, requestcontext.Now(ctx)); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeConflict, "registration is not awaiting a decision")
	}
	if err := s.registrations.Update(ctx, reg); err != nil {
		return nil, translateStoreErr(err, "registration not found")
	}

	s.metrics.IncrementDecision("declined", "owner")
	s.emit(ctx, events.Event{
		Action:         events.ActionRegistrationDeclined,
		RegistrationID: reg.ID,
		LegID:          reg.LegID,
		UserID:         reg.UserID,
		ActorID:        actorID,
		Decision:       string(id.StatusNotApproved),
		Reason:         reason,
	})
	return reg, nil
}

// ListMine returns the actor's registrations newest-first, optionally
// filtered by leg or status.
func (s *Service) ListMine(ctx context.Context, actorID id.UserID, filter store.ListFilter) ([]*regmodels.Registration, error) {
	regs, err := s.registrations.ListByUser(ctx, actorID, filter)
	if err != nil {
		return nil, translateStoreErr(err, "registrations not found")
	}
	return regs, nil
}

// Get returns a single registration visible to the actor: the registering
// crew member or the journey owner.
func (s *Service) Get(ctx context.Context, regID id.RegistrationID, actorID id.UserID) (*regmodels.Registration, error) {
	reg, err := s.registrations.Get(ctx, regID)
	if err != nil {
		return nil, translateStoreErr(err, "registration not found")
	}
	if reg.UserID == actorID {
		return reg, nil
	}
	if _, err := s.ownedJourney(ctx, reg, actorID); err != nil {
		return nil, err
	}
	return reg, nil
}

// loadForOwner loads the registration and verifies the actor owns its
// journey.
func (s *Service) loadForOwner(ctx context.Context, regID id.RegistrationID, actorID id.UserID) (*regmodels.Registration, error) {
	reg, err := s.registrations.Get(ctx, regID)
	if err != nil {
		return nil, translateStoreErr(err, "registration not found")
	}
	if _, err := s.ownedJourney(ctx, reg, actorID); err != nil {
		return nil, err
	}
	return reg, nil
}

// ownedJourney resolves the registration's journey and checks ownership.
func (s *Service) ownedJourney(ctx context.Context, reg *regmodels.Registration, actorID id.UserID) (id.JourneyID, error) {
	leg, err := s.journeys.GetLeg(ctx, reg.LegID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return id.JourneyID{}, dErrors.Wrap(err, dErrors.CodeInternal, "registration references a missing leg")
		}
		return id.JourneyID{}, translateStoreErr(err, "leg not found")
	}
	journey, err := s.journeys.GetJourney(ctx, leg.JourneyID)
	if err != nil {
		return id.JourneyID{}, translateStoreErr(err, "journey not found")
	}
	if journey.OwnerID != actorID {
		return id.JourneyID{}, dErrors.New(dErrors.CodeForbidden, "only the journey owner may act on this registration")
	}
	return journey.ID, nil
}
