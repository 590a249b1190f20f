package models

import (
	"encoding/json"
	"time"

	id "crewdock/pkg/domain"
)

// Answer is one crew member's answer to one requirement, scoped to one
// registration. Exactly one answer exists per (RegistrationID,
// RequirementID); resubmission replaces the full set atomically.
type Answer struct {
	ID             id.AnswerID
	RegistrationID id.RegistrationID
	RequirementID  id.RequirementID

	// AnswerText carries text and yes_no answers; AnswerJSON carries
	// multiple_choice and rating answers. Which one is set follows the
	// requirement's question type.
	AnswerText *string
	AnswerJSON json.RawMessage

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Submission is an answer as received from the client, before it is bound to
// a stored registration.
type Submission struct {
	RequirementID id.RequirementID `json:"requirementId"`
	AnswerText    *string          `json:"answerText,omitempty"`
	AnswerJSON    json.RawMessage  `json:"answerJson,omitempty"`
}

// CollapseSubmissions keeps the last submission per requirement, preserving
// the order of first occurrence. Clients that send duplicates get
// upsert-by-key semantics instead of an arbitrary winner.
func CollapseSubmissions(subs []Submission) []Submission {
	if len(subs) < 2 {
		return subs
	}
	index := make(map[id.RequirementID]int, len(subs))
	out := make([]Submission, 0, len(subs))
	for _, sub := range subs {
		if i, ok := index[sub.RequirementID]; ok {
			out[i] = sub
			continue
		}
		index[sub.RequirementID] = len(out)
		out = append(out, sub)
	}
	return out
}

// BindSubmissions materializes submissions into stored answers for a
// registration.
func BindSubmissions(registrationID id.RegistrationID, subs []Submission, now time.Time) []Answer {
	answers := make([]Answer, 0, len(subs))
	for _, sub := range subs {
		answers = append(answers, Answer{
			ID:             id.NewAnswerID(),
			RegistrationID: registrationID,
			RequirementID:  sub.RequirementID,
			AnswerText:     sub.AnswerText,
			AnswerJSON:     sub.AnswerJSON,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	return answers
}
