// Package models defines the registration aggregate: a crew member's
// application to one leg, its lifecycle state machine, and the answers
// attached to it.
package models

import (
	"time"

	id "crewdock/pkg/domain"
	"crewdock/pkg/platform/sentinel"
)

// AssessmentState tracks the async auto-approval assessment independently of
// the registration status. Status literals are a frozen contract, so the
// "assessment failed, escalate to manual review" outcome lives here: the
// registration stays "Pending approval" and AssessmentState moves to failed.
type AssessmentState string

const (
	AssessmentNone      AssessmentState = "none"
	AssessmentScheduled AssessmentState = "scheduled"
	AssessmentCompleted AssessmentState = "completed"
	AssessmentFailed    AssessmentState = "failed"
)

// Registration is one crew member's application to one leg.
//
// Invariant: at most one active (non-Cancelled) registration exists per
// (LegID, UserID) pair; stores enforce this. A cancelled registration is
// reactivated in place rather than duplicated.
type Registration struct {
	ID     id.RegistrationID
	LegID  id.LegID
	UserID id.UserID
	Status id.RegistrationStatus
	Notes  string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Assessment results; nil until an assessment completes.
	AIMatchScore     *int
	AIMatchReasoning *string
	AutoApproved     bool
	AssessmentState  AssessmentState
}

// NewRegistration creates a brand-new application in Pending approval.
func NewRegistration(legID id.LegID, userID id.UserID, notes string, now time.Time) *Registration {
	return &Registration{
		ID:              id.NewRegistrationID(),
		LegID:           legID,
		UserID:          userID,
		Status:          id.StatusPendingApproval,
		Notes:           notes,
		CreatedAt:       now,
		UpdatedAt:       now,
		AssessmentState: AssessmentNone,
	}
}

// transition moves the registration to next if the state machine allows it.
// Invalid transitions return sentinel.ErrInvalidState; services translate
// that into a conflict for the caller.
func (r *Registration) transition(next id.RegistrationStatus, now time.Time) error {
	if !r.Status.CanTransitionTo(next) {
		return sentinel.ErrInvalidState
	}
	r.Status = next
	r.UpdatedAt = now
	return nil
}

// Approve moves a pending registration to Approved. Owner decisions pass
// autoApproved=false; the assessment worker passes true with its score and
// reasoning.
func (r *Registration) Approve(notes string, reasoning *string, autoApproved bool, now time.Time) error {
	if err := r.transition(id.StatusApproved, now); err != nil {
		return err
	}
	if notes != "" {
		r.Notes = notes
	}
	r.AIMatchReasoning = reasoning
	r.AutoApproved = autoApproved
	return nil
}

// Decline moves a pending registration to Not approved, carrying a reason.
func (r *Registration) Decline(reason string, autoApproved bool, now time.Time) error {
	if err := r.transition(id.StatusNotApproved, now); err != nil {
		return err
	}
	r.Notes = reason
	r.AutoApproved = autoApproved
	return nil
}

// Cancel is the crew member's withdrawal, allowed from any non-cancelled
// state.
func (r *Registration) Cancel(now time.Time) error {
	return r.transition(id.StatusCancelled, now)
}

// Reactivate reuses a cancelled registration for a fresh application to the
// same leg: status returns to Pending approval, notes are overwritten, and
// prior assessment results are cleared so the pipeline reruns from scratch.
// CreatedAt is preserved; the row keeps its identity.
func (r *Registration) Reactivate(notes string, now time.Time) error {
	if err := r.transition(id.StatusPendingApproval, now); err != nil {
		return err
	}
	r.Notes = notes
	r.AIMatchScore = nil
	r.AIMatchReasoning = nil
	r.AutoApproved = false
	r.AssessmentState = AssessmentNone
	return nil
}
