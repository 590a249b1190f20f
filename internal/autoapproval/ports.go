// Package autoapproval orchestrates the asynchronous assessment of a
// registration: deciding whether auto-approval applies, queuing the
// assessment task, and applying its outcome without ever touching the
// already-returned creation response.
package autoapproval

import (
	"context"

	id "crewdock/pkg/domain"
)

//go:generate mockgen -source=ports.go -destination=mocks/autoapproval-mocks.go -package=mocks AssessmentService

// Outcome is the external assessment's verdict for one registration.
type Outcome struct {
	Score     int
	Reasoning string
	Approve   bool
}

// AssessmentService is the external scoring collaborator. Implementations
// are expected to be slow and occasionally unavailable; the worker wraps
// calls in a timeout and bounded retry.
type AssessmentService interface {
	Assess(ctx context.Context, registrationID id.RegistrationID) (*Outcome, error)
}

// Task identifies one queued assessment. The worker re-reads all state from
// stores; carrying only the ID guarantees read-your-writes on the committed
// row instead of trusting a snapshot taken before the write settled.
type Task struct {
	RegistrationID id.RegistrationID
}
