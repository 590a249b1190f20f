// Package domain holds shared value types used across contexts: typed IDs
// and closed enums. Construct values via the Parse helpers at trust
// boundaries; direct casting bypasses validation.
package domain

import (
	"github.com/google/uuid"

	dErrors "crewdock/pkg/domain-errors"
)

// Typed IDs prevent cross-entity assignment at compile time. All IDs are
// UUIDs; the zero value is the nil UUID and is never a valid identifier.
type (
	UserID         uuid.UUID
	JourneyID      uuid.UUID
	LegID          uuid.UUID
	RegistrationID uuid.UUID
	RequirementID  uuid.UUID
	AnswerID       uuid.UUID
)

func parseUUID(raw, label string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be empty", label)
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "invalid %s", label)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be nil", label)
	}
	return u, nil
}

// ParseUserID constructs a UserID from external input.
func ParseUserID(raw string) (UserID, error) {
	u, err := parseUUID(raw, "user id")
	return UserID(u), err
}

// ParseJourneyID constructs a JourneyID from external input.
func ParseJourneyID(raw string) (JourneyID, error) {
	u, err := parseUUID(raw, "journey id")
	return JourneyID(u), err
}

// ParseLegID constructs a LegID from external input.
func ParseLegID(raw string) (LegID, error) {
	u, err := parseUUID(raw, "leg id")
	return LegID(u), err
}

// ParseRegistrationID constructs a RegistrationID from external input.
func ParseRegistrationID(raw string) (RegistrationID, error) {
	u, err := parseUUID(raw, "registration id")
	return RegistrationID(u), err
}

// ParseRequirementID constructs a RequirementID from external input.
func ParseRequirementID(raw string) (RequirementID, error) {
	u, err := parseUUID(raw, "requirement id")
	return RequirementID(u), err
}

// NewRegistrationID mints a fresh registration identifier.
func NewRegistrationID() RegistrationID { return RegistrationID(uuid.New()) }

// NewAnswerID mints a fresh answer identifier.
func NewAnswerID() AnswerID { return AnswerID(uuid.New()) }

func (id UserID) String() string         { return uuid.UUID(id).String() }
func (id JourneyID) String() string      { return uuid.UUID(id).String() }
func (id LegID) String() string          { return uuid.UUID(id).String() }
func (id RegistrationID) String() string { return uuid.UUID(id).String() }
func (id RequirementID) String() string  { return uuid.UUID(id).String() }
func (id AnswerID) String() string       { return uuid.UUID(id).String() }

func (id UserID) IsNil() bool         { return uuid.UUID(id) == uuid.Nil }
func (id JourneyID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id LegID) IsNil() bool          { return uuid.UUID(id) == uuid.Nil }
func (id RegistrationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id RequirementID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }
func (id AnswerID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
