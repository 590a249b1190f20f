package domain

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
)

// database/sql integration for typed IDs. Values are stored as uuid columns;
// Scan accepts whatever the driver hands back for a uuid (string or bytes).

func scanUUID(dst *uuid.UUID, src any, label string) error {
	var u uuid.UUID
	if err := u.Scan(src); err != nil {
		return fmt.Errorf("scan %s: %w", label, err)
	}
	*dst = u
	return nil
}

func (id *UserID) Scan(src any) error  { return scanUUID((*uuid.UUID)(id), src, "user id") }
func (id UserID) Value() (driver.Value, error) { return uuid.UUID(id).String(), nil }

func (id *JourneyID) Scan(src any) error { return scanUUID((*uuid.UUID)(id), src, "journey id") }
func (id JourneyID) Value() (driver.Value, error) { return uuid.UUID(id).String(), nil }

func (id *LegID) Scan(src any) error { return scanUUID((*uuid.UUID)(id), src, "leg id") }
func (id LegID) Value() (driver.Value, error) { return uuid.UUID(id).String(), nil }

func (id *RegistrationID) Scan(src any) error {
	return scanUUID((*uuid.UUID)(id), src, "registration id")
}
func (id RegistrationID) Value() (driver.Value, error) { return uuid.UUID(id).String(), nil }

func (id *RequirementID) Scan(src any) error {
	return scanUUID((*uuid.UUID)(id), src, "requirement id")
}
func (id RequirementID) Value() (driver.Value, error) { return uuid.UUID(id).String(), nil }

func (id *AnswerID) Scan(src any) error { return scanUUID((*uuid.UUID)(id), src, "answer id") }
func (id AnswerID) Value() (driver.Value, error) { return uuid.UUID(id).String(), nil }
