package handler

import (
	"strings"

	regmodels "crewdock/internal/registration/models"
	id "crewdock/pkg/domain"
	dErrors "crewdock/pkg/domain-errors"
)

const maxNotesLength = 2000

// CreateRegistrationRequest is the body for POST /registrations.
type CreateRegistrationRequest struct {
	LegID   string                `json:"legId"`
	Notes   string                `json:"notes"`
	Answers []regmodels.Submission `json:"answers"`

	parsedLegID id.LegID
}

// Validate parses and normalizes the request.
func (r *CreateRegistrationRequest) Validate() error {
	r.LegID = strings.TrimSpace(r.LegID)
	if r.LegID == "" {
		return dErrors.New(dErrors.CodeBadRequest, "legId is required")
	}
	legID, err := id.ParseLegID(r.LegID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid legId")
	}
	r.parsedLegID = legID

	if len(r.Notes) > maxNotesLength {
		return dErrors.New(dErrors.CodeBadRequest, "notes exceed maximum length")
	}
	for _, sub := range r.Answers {
		if sub.RequirementID.IsNil() {
			return dErrors.New(dErrors.CodeBadRequest, "every answer needs a requirementId")
		}
	}
	return nil
}

// ParsedLegID returns the validated leg ID.
func (r *CreateRegistrationRequest) ParsedLegID() id.LegID {
	return r.parsedLegID
}

// DecisionRequest is the body for approve and decline. Notes carry the
// owner's approval notes or decline reason.
type DecisionRequest struct {
	Notes string `json:"notes"`
}

func (r *DecisionRequest) Validate() error {
	if len(r.Notes) > maxNotesLength {
		return dErrors.New(dErrors.CodeBadRequest, "notes exceed maximum length")
	}
	return nil
}

// ReplaceAnswersRequest is the body for PUT /registrations/{id}/answers.
type ReplaceAnswersRequest struct {
	Answers []regmodels.Submission `json:"answers"`
}

func (r *ReplaceAnswersRequest) Validate() error {
	if len(r.Answers) == 0 {
		return dErrors.New(dErrors.CodeBadRequest, "answers must not be empty")
	}
	for _, sub := range r.Answers {
		if sub.RequirementID.IsNil() {
			return dErrors.New(dErrors.CodeBadRequest, "every answer needs a requirementId")
		}
	}
	return nil
}
