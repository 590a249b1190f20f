// Package validator checks submitted answers against a journey's declared
// requirements. Validation is pure: no I/O, no side effects, and a stable
// rule order so clients always see the most actionable violation first.
package validator

import (
	"fmt"
	"sort"
	"strings"

	journeymodels "crewdock/internal/journey/models"
	regmodels "crewdock/internal/registration/models"
	id "crewdock/pkg/domain"
)

// ViolationKind discriminates validation failures.
type ViolationKind string

const (
	// KindMissingRequired: one or more required requirements have no answer.
	KindMissingRequired ViolationKind = "missing_required_answers"
	// KindUnknownRequirement: an answer references a requirement that does
	// not belong to this journey.
	KindUnknownRequirement ViolationKind = "unknown_requirement"
	// KindInvalidFormat: an answer's payload does not match its
	// requirement's question type.
	KindInvalidFormat ViolationKind = "invalid_answer_format"
)

// Violation is a specific validation failure. It implements error; the
// message is machine-parseable (kind plus the offending ids).
type Violation struct {
	Kind ViolationKind

	// MissingRequirementIDs is set for KindMissingRequired.
	MissingRequirementIDs []id.RequirementID

	// RequirementID is set for KindUnknownRequirement and KindInvalidFormat.
	RequirementID id.RequirementID

	// QuestionType is set for KindInvalidFormat.
	QuestionType id.QuestionType
}

func (v *Violation) Error() string {
	switch v.Kind {
	case KindMissingRequired:
		ids := make([]string, 0, len(v.MissingRequirementIDs))
		for _, rid := range v.MissingRequirementIDs {
			ids = append(ids, rid.String())
		}
		return fmt.Sprintf("%s: %s", v.Kind, strings.Join(ids, ","))
	case KindUnknownRequirement:
		return fmt.Sprintf("%s: %s", v.Kind, v.RequirementID)
	case KindInvalidFormat:
		return fmt.Sprintf("%s: %s (%s)", v.Kind, v.RequirementID, v.QuestionType)
	}
	return string(v.Kind)
}

// Validate checks answers against requirements. Returns nil when valid, or
// the first violation per the rule order: missing required answers, then
// unknown requirement references, then per-answer format rules.
func Validate(requirements []journeymodels.Requirement, answers []regmodels.Submission) *Violation {
	byID := make(map[id.RequirementID]journeymodels.Requirement, len(requirements))
	for _, req := range requirements {
		byID[req.ID] = req
	}

	answered := make(map[id.RequirementID]bool, len(answers))
	for _, ans := range answers {
		answered[ans.RequirementID] = true
	}

	// Rule 1: every required requirement must be answered. A request with
	// both a missing required answer and a format problem reports the
	// missing-required failure.
	var missing []id.RequirementID
	for _, req := range requirements {
		if req.IsRequired && !answered[req.ID] {
			missing = append(missing, req.ID)
		}
	}
	if len(missing) > 0 {
		sort.Slice(missing, func(i, j int) bool { return missing[i].String() < missing[j].String() })
		return &Violation{Kind: KindMissingRequired, MissingRequirementIDs: missing}
	}

	// Rule 2: every answer must reference a requirement of this journey.
	for _, ans := range answers {
		if _, ok := byID[ans.RequirementID]; !ok {
			return &Violation{Kind: KindUnknownRequirement, RequirementID: ans.RequirementID}
		}
	}

	// Rule 3: answer payload must match the requirement's question type.
	for _, ans := range answers {
		req := byID[ans.RequirementID]
		if !formatValid(req.QuestionType, ans) {
			return &Violation{
				Kind:          KindInvalidFormat,
				RequirementID: ans.RequirementID,
				QuestionType:  req.QuestionType,
			}
		}
	}

	return nil
}

func formatValid(qt id.QuestionType, ans regmodels.Submission) bool {
	switch qt {
	case id.QuestionTypeText:
		return ans.AnswerText != nil && strings.TrimSpace(*ans.AnswerText) != ""
	case id.QuestionTypeYesNo:
		return ans.AnswerText != nil && (*ans.AnswerText == "Yes" || *ans.AnswerText == "No")
	case id.QuestionTypeMultipleChoice, id.QuestionTypeRating:
		return len(ans.AnswerJSON) > 0 && string(ans.AnswerJSON) != "null"
	}
	return false
}
