package domain

import dErrors "crewdock/pkg/domain-errors"

// RegistrationStatus is the lifecycle state of a crew registration.
// Invariant: the value must be one of the supported statuses.
//
// The string literals are a persistence and API contract shared with the UI
// layer; they must not change.
//
// Usage: construct via ParseRegistrationStatus at trust boundaries to enforce
// the allowlist; direct casting bypasses validation.
type RegistrationStatus string

// Supported registration statuses.
const (
	StatusPendingApproval RegistrationStatus = "Pending approval"
	StatusApproved        RegistrationStatus = "Approved"
	StatusNotApproved     RegistrationStatus = "Not approved"
	StatusCancelled       RegistrationStatus = "Cancelled"
)

// validRegistrationStatuses is the single source of truth for valid statuses.
var validRegistrationStatuses = map[RegistrationStatus]bool{
	StatusPendingApproval: true,
	StatusApproved:        true,
	StatusNotApproved:     true,
	StatusCancelled:       true,
}

// ParseRegistrationStatus constructs a RegistrationStatus from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseRegistrationStatus(s string) (RegistrationStatus, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "status cannot be empty")
	}
	st := RegistrationStatus(s)
	if !st.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid status")
	}
	return st, nil
}

// IsValid checks if the status is one of the supported enum values.
func (s RegistrationStatus) IsValid() bool {
	return validRegistrationStatuses[s]
}

// String returns the string representation of the status.
func (s RegistrationStatus) String() string {
	return string(s)
}

// IsActive reports whether a registration in this status counts against the
// one-active-registration-per-leg invariant. Only cancelled registrations
// are inactive.
func (s RegistrationStatus) IsActive() bool {
	return s != StatusCancelled
}

// CanTransitionTo reports whether the state machine permits moving from s to
// next. Pending approval is the only initial state; a cancelled registration
// may only be reactivated back to pending approval.
func (s RegistrationStatus) CanTransitionTo(next RegistrationStatus) bool {
	switch s {
	case StatusPendingApproval:
		return next == StatusApproved || next == StatusNotApproved || next == StatusCancelled
	case StatusApproved, StatusNotApproved:
		return next == StatusCancelled
	case StatusCancelled:
		return next == StatusPendingApproval
	default:
		return false
	}
}
