// Package events captures the registration pipeline's lifecycle as
// structured, append-only events. Business logic emits events instead of ad
// hoc log lines, so tests assert on what happened and operators can fan the
// stream out to Kafka.
package events

import (
	"time"

	id "crewdock/pkg/domain"
)

// Action names a lifecycle event.
type Action string

const (
	ActionRegistrationCreated     Action = "registration_created"
	ActionRegistrationReactivated Action = "registration_reactivated"
	ActionRegistrationCancelled   Action = "registration_cancelled"
	ActionRegistrationApproved    Action = "registration_approved"
	ActionRegistrationDeclined    Action = "registration_declined"
	ActionAnswersReplaced         Action = "answers_replaced"
	ActionAssessmentScheduled     Action = "assessment_scheduled"
	ActionAssessmentCompleted     Action = "assessment_completed"
	ActionAssessmentFailed        Action = "assessment_failed"
	ActionOwnerNotified           Action = "owner_notified"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`

	RegistrationID id.RegistrationID `json:"registration_id"`
	JourneyID      id.JourneyID      `json:"journey_id,omitempty"`
	LegID          id.LegID          `json:"leg_id,omitempty"`
	UserID         id.UserID         `json:"user_id,omitempty"`

	// ActorID tracks who performed the action when different from the
	// registration's crew member (owner decisions, system actions).
	ActorID id.UserID `json:"actor_id,omitempty"`

	// RequestID correlates the event with the HTTP request that caused it;
	// empty for worker-originated events.
	RequestID string `json:"request_id,omitempty"`

	// Decision and Reason describe assessment and owner outcomes.
	Decision string `json:"decision,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Score    *int   `json:"score,omitempty"`
}
