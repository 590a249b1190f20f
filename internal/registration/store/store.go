// Package store persists registrations and their answers. The active-
// registration uniqueness invariant is enforced here, at the storage layer:
// both implementations reject a second active registration for the same
// (leg, user) pair with sentinel.ErrConflict rather than relying on a
// check-then-act pre-read.
package store

import (
	"context"

	"crewdock/internal/registration/models"
	id "crewdock/pkg/domain"
)

// ListFilter narrows ListByUser results. Zero values mean "no filter".
type ListFilter struct {
	LegID  id.LegID
	Status id.RegistrationStatus
}

// RegistrationStore persists registration rows.
type RegistrationStore interface {
	// Create inserts a new registration. Returns sentinel.ErrConflict when
	// an active registration already exists for the same (leg, user) pair.
	Create(ctx context.Context, reg *models.Registration) error

	// Get retrieves a registration by ID.
	Get(ctx context.Context, regID id.RegistrationID) (*models.Registration, error)

	// GetByLegAndUser retrieves the registration for a (leg, user) pair in
	// any status, preferring an active one. Used for conflict reporting and
	// the reactivation path.
	GetByLegAndUser(ctx context.Context, legID id.LegID, userID id.UserID) (*models.Registration, error)

	// Update persists changes to an existing registration. Returns
	// sentinel.ErrConflict when the update would create a second active
	// registration for the pair.
	Update(ctx context.Context, reg *models.Registration) error

	// ListByUser returns the user's registrations newest-first, optionally
	// filtered.
	ListByUser(ctx context.Context, userID id.UserID, filter ListFilter) ([]*models.Registration, error)
}

// AnswerStore persists registration answers.
type AnswerStore interface {
	// ReplaceForRegistration atomically replaces the registration's full
	// answer set. Concurrent replacements never interleave into a partial
	// set.
	ReplaceForRegistration(ctx context.Context, regID id.RegistrationID, answers []models.Answer) error

	// ListByRegistration returns the registration's answers.
	ListByRegistration(ctx context.Context, regID id.RegistrationID) ([]models.Answer, error)
}
