// Package store defines read access to journeys, legs, and requirements.
// The registration core treats journey data as an external, read-only source;
// both implementations satisfy the same interface so services and tests can
// swap them freely.
package store

import (
	"context"

	"crewdock/internal/journey/models"
	id "crewdock/pkg/domain"
)

// Store is the read-only journey data source.
type Store interface {
	// GetJourney retrieves a journey by ID.
	GetJourney(ctx context.Context, journeyID id.JourneyID) (*models.Journey, error)

	// GetLeg retrieves a leg by ID.
	GetLeg(ctx context.Context, legID id.LegID) (*models.Leg, error)

	// ListRequirements returns a journey's requirements sorted by display order.
	ListRequirements(ctx context.Context, journeyID id.JourneyID) ([]models.Requirement, error)
}
