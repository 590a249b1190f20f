package domain

import (
	"github.com/google/uuid"
)

// Text marshaling for typed IDs so they render as canonical uuid strings in
// JSON bodies and log attributes instead of raw byte arrays.

func unmarshalUUID(dst *uuid.UUID, text []byte) error {
	u, err := uuid.ParseBytes(text)
	if err != nil {
		return err
	}
	*dst = u
	return nil
}

func (id UserID) MarshalText() ([]byte, error)  { return []byte(uuid.UUID(id).String()), nil }
func (id *UserID) UnmarshalText(text []byte) error { return unmarshalUUID((*uuid.UUID)(id), text) }

func (id JourneyID) MarshalText() ([]byte, error) { return []byte(uuid.UUID(id).String()), nil }
func (id *JourneyID) UnmarshalText(text []byte) error {
	return unmarshalUUID((*uuid.UUID)(id), text)
}

func (id LegID) MarshalText() ([]byte, error)  { return []byte(uuid.UUID(id).String()), nil }
func (id *LegID) UnmarshalText(text []byte) error { return unmarshalUUID((*uuid.UUID)(id), text) }

func (id RegistrationID) MarshalText() ([]byte, error) { return []byte(uuid.UUID(id).String()), nil }
func (id *RegistrationID) UnmarshalText(text []byte) error {
	return unmarshalUUID((*uuid.UUID)(id), text)
}

func (id RequirementID) MarshalText() ([]byte, error) { return []byte(uuid.UUID(id).String()), nil }
func (id *RequirementID) UnmarshalText(text []byte) error {
	return unmarshalUUID((*uuid.UUID)(id), text)
}

func (id AnswerID) MarshalText() ([]byte, error) { return []byte(uuid.UUID(id).String()), nil }
func (id *AnswerID) UnmarshalText(text []byte) error {
	return unmarshalUUID((*uuid.UUID)(id), text)
}
