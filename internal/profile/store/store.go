// Package store defines read access to crew profiles.
package store

import (
	"context"

	"crewdock/internal/profile/models"
	id "crewdock/pkg/domain"
)

// Store is the read-only crew profile source.
type Store interface {
	// GetProfile retrieves a crew member's profile by user ID.
	GetProfile(ctx context.Context, userID id.UserID) (*models.CrewProfile, error)
}
