package handler

import (
	"encoding/json"
	"time"

	regmodels "crewdock/internal/registration/models"
	"crewdock/internal/registration/service"
	id "crewdock/pkg/domain"
)

// RegistrationResponse is the wire shape of a registration.
type RegistrationResponse struct {
	ID               id.RegistrationID `json:"id"`
	LegID            id.LegID          `json:"legId"`
	UserID           id.UserID         `json:"userId"`
	Status           string            `json:"status"`
	Notes            string            `json:"notes,omitempty"`
	AIMatchScore     *int              `json:"aiMatchScore,omitempty"`
	AIMatchReasoning *string           `json:"aiMatchReasoning,omitempty"`
	AutoApproved     bool              `json:"autoApproved"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// FromRegistration converts a domain registration to its wire shape.
func FromRegistration(reg *regmodels.Registration) *RegistrationResponse {
	return &RegistrationResponse{
		ID:               reg.ID,
		LegID:            reg.LegID,
		UserID:           reg.UserID,
		Status:           string(reg.Status),
		Notes:            reg.Notes,
		AIMatchScore:     reg.AIMatchScore,
		AIMatchReasoning: reg.AIMatchReasoning,
		AutoApproved:     reg.AutoApproved,
		CreatedAt:        reg.CreatedAt,
		UpdatedAt:        reg.UpdatedAt,
	}
}

// FromRegistrations converts a list newest-first.
func FromRegistrations(regs []*regmodels.Registration) []*RegistrationResponse {
	out := make([]*RegistrationResponse, 0, len(regs))
	for _, reg := range regs {
		out = append(out, FromRegistration(reg))
	}
	return out
}

// CreateRegistrationResponse reports the stored registration plus what the
// pipeline did with it.
type CreateRegistrationResponse struct {
	Registration        *RegistrationResponse `json:"registration"`
	Reactivated         bool                  `json:"reactivated"`
	AssessmentScheduled bool                  `json:"assessmentScheduled"`
}

// FromCreateResult converts a service create result to its wire shape.
func FromCreateResult(result *service.CreateResult) *CreateRegistrationResponse {
	return &CreateRegistrationResponse{
		Registration:        FromRegistration(result.Registration),
		Reactivated:         result.Reactivated,
		AssessmentScheduled: result.AssessmentScheduled,
	}
}

// AnswerResponse is the wire shape of a stored answer.
type AnswerResponse struct {
	ID            id.AnswerID      `json:"id"`
	RequirementID id.RequirementID `json:"requirementId"`
	AnswerText    *string          `json:"answerText,omitempty"`
	AnswerJSON    json.RawMessage  `json:"answerJson,omitempty"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// FromAnswers converts stored answers to their wire shape.
func FromAnswers(answers []regmodels.Answer) []AnswerResponse {
	out := make([]AnswerResponse, 0, len(answers))
	for _, a := range answers {
		out = append(out, AnswerResponse{
			ID:            a.ID,
			RequirementID: a.RequirementID,
			AnswerText:    a.AnswerText,
			AnswerJSON:    a.AnswerJSON,
			UpdatedAt:     a.UpdatedAt,
		})
	}
	return out
}

// DetailsResponse is the owner's review view of a registration.
type DetailsResponse struct {
	Registration           *RegistrationResponse      `json:"registration"`
	CrewProfile            CrewProfileResponse        `json:"crewProfile"`
	Answers                []AnsweredRequirementResponse `json:"answers"`
	Effective              EffectiveResponse          `json:"effective"`
	SkillMatchPercentage   int                        `json:"skillMatchPercentage"`
	ExperienceLevelMatches *bool                      `json:"experienceLevelMatches"`
}

// EffectiveResponse carries the leg's resolved attributes, after leg
// overrides are applied on top of the journey defaults.
type EffectiveResponse struct {
	Skills        []string `json:"skills"`
	RiskLevel     *string  `json:"riskLevel,omitempty"`
	MinExperience *int     `json:"minExperience,omitempty"`
}

// CrewProfileResponse is the profile summary shown to the owner.
type CrewProfileResponse struct {
	UserID            id.UserID `json:"userId"`
	DisplayName       string    `json:"displayName"`
	Skills            []string  `json:"skills"`
	RiskLevels        []string  `json:"riskLevels"`
	SailingExperience *int      `json:"sailingExperience,omitempty"`
}

// AnsweredRequirementResponse pairs an answer with its question.
type AnsweredRequirementResponse struct {
	RequirementID id.RequirementID `json:"requirementId"`
	QuestionText  string           `json:"questionText"`
	QuestionType  string           `json:"questionType"`
	IsRequired    bool             `json:"isRequired"`
	Answered      bool             `json:"answered"`
	AnswerText    *string          `json:"answerText,omitempty"`
	AnswerJSON    json.RawMessage  `json:"answerJson,omitempty"`
}

// FromDetails converts the service details aggregate to its wire shape.
func FromDetails(d *service.Details) *DetailsResponse {
	answers := make([]AnsweredRequirementResponse, 0, len(d.Answers))
	for _, a := range d.Answers {
		answers = append(answers, AnsweredRequirementResponse{
			RequirementID: a.RequirementID,
			QuestionText:  a.QuestionText,
			QuestionType:  string(a.QuestionType),
			IsRequired:    a.IsRequired,
			Answered:      a.Answered,
			AnswerText:    a.AnswerText,
			AnswerJSON:    a.AnswerJSON,
		})
	}
	return &DetailsResponse{
		Registration: FromRegistration(d.Registration),
		CrewProfile: CrewProfileResponse{
			UserID:            d.CrewProfile.UserID,
			DisplayName:       d.CrewProfile.DisplayName,
			Skills:            d.CrewProfile.SkillNames(),
			RiskLevels:        d.CrewProfile.RiskLevels,
			SailingExperience: d.CrewProfile.SailingExperience,
		},
		Answers: answers,
		Effective: EffectiveResponse{
			Skills:        d.Effective.Skills,
			RiskLevel:     d.Effective.RiskLevel,
			MinExperience: d.Effective.MinExperience,
		},
		SkillMatchPercentage:   d.SkillMatchPercentage,
		ExperienceLevelMatches: d.ExperienceLevelMatches,
	}
}
