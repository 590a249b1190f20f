package validator

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	journeymodels "crewdock/internal/journey/models"
	regmodels "crewdock/internal/registration/models"
	id "crewdock/pkg/domain"
)

type ValidatorSuite struct {
	suite.Suite

	textReq   journeymodels.Requirement
	yesNoReq  journeymodels.Requirement
	choiceReq journeymodels.Requirement
	ratingReq journeymodels.Requirement
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}

func (s *ValidatorSuite) SetupTest() {
	journeyID := id.JourneyID(uuid.New())
	s.textReq = journeymodels.Requirement{
		ID:           id.RequirementID(uuid.New()),
		JourneyID:    journeyID,
		QuestionText: "Describe your experience",
		QuestionType: id.QuestionTypeText,
		IsRequired:   true,
		Order:        1,
	}
	s.yesNoReq = journeymodels.Requirement{
		ID:           id.RequirementID(uuid.New()),
		JourneyID:    journeyID,
		QuestionText: "Medical certificate?",
		QuestionType: id.QuestionTypeYesNo,
		IsRequired:   true,
		Order:        2,
	}
	s.choiceReq = journeymodels.Requirement{
		ID:           id.RequirementID(uuid.New()),
		JourneyID:    journeyID,
		QuestionText: "Preferred watch",
		QuestionType: id.QuestionTypeMultipleChoice,
		Options:      []string{"day", "night"},
		Order:        3,
	}
	s.ratingReq = journeymodels.Requirement{
		ID:           id.RequirementID(uuid.New()),
		JourneyID:    journeyID,
		QuestionText: "Rate your confidence",
		QuestionType: id.QuestionTypeRating,
		Order:        4,
	}
}

func text(s string) *string { return &s }

func (s *ValidatorSuite) answerAll() []regmodels.Submission {
	return []regmodels.Submission{
		{RequirementID: s.textReq.ID, AnswerText: text("ten years offshore")},
		{RequirementID: s.yesNoReq.ID, AnswerText: text("Yes")},
	}
}

func (s *ValidatorSuite) TestRequiredAnswers() {
	reqs := []journeymodels.Requirement{s.textReq, s.yesNoReq, s.choiceReq}

	s.Run("all required answered passes", func() {
		s.Nil(Validate(reqs, s.answerAll()))
	})

	s.Run("optional requirement may stay unanswered", func() {
		v := Validate(reqs, s.answerAll())
		s.Nil(v)
	})

	s.Run("missing one required answer reports it", func() {
		v := Validate(reqs, []regmodels.Submission{
			{RequirementID: s.textReq.ID, AnswerText: text("ten years offshore")},
		})
		s.Require().NotNil(v)
		s.Equal(KindMissingRequired, v.Kind)
		s.Equal([]id.RequirementID{s.yesNoReq.ID}, v.MissingRequirementIDs)
	})

	s.Run("missing several required answers reports all of them", func() {
		v := Validate(reqs, nil)
		s.Require().NotNil(v)
		s.Equal(KindMissingRequired, v.Kind)
		s.Len(v.MissingRequirementIDs, 2)
		s.Contains(v.MissingRequirementIDs, s.textReq.ID)
		s.Contains(v.MissingRequirementIDs, s.yesNoReq.ID)
	})

	s.Run("missing required wins over format problems", func() {
		v := Validate(reqs, []regmodels.Submission{
			{RequirementID: s.textReq.ID, AnswerText: text("   ")},
		})
		s.Require().NotNil(v)
		s.Equal(KindMissingRequired, v.Kind)
	})
}

func (s *ValidatorSuite) TestUnknownRequirement() {
	reqs := []journeymodels.Requirement{s.textReq, s.yesNoReq}
	stranger := id.RequirementID(uuid.New())

	v := Validate(reqs, append(s.answerAll(),
		regmodels.Submission{RequirementID: stranger, AnswerText: text("hello")},
	))
	s.Require().NotNil(v)
	s.Equal(KindUnknownRequirement, v.Kind)
	s.Equal(stranger, v.RequirementID)
}

func (s *ValidatorSuite) TestAnswerFormats() {
	s.Run("text answer must be non-blank", func() {
		reqs := []journeymodels.Requirement{s.textReq}
		v := Validate(reqs, []regmodels.Submission{
			{RequirementID: s.textReq.ID, AnswerText: text("  \t ")},
		})
		s.Require().NotNil(v)
		s.Equal(KindInvalidFormat, v.Kind)
		s.Equal(s.textReq.ID, v.RequirementID)
		s.Equal(id.QuestionTypeText, v.QuestionType)
	})

	s.Run("text answer missing entirely is a format violation", func() {
		reqs := []journeymodels.Requirement{s.textReq}
		v := Validate(reqs, []regmodels.Submission{
			{RequirementID: s.textReq.ID},
		})
		s.Require().NotNil(v)
		s.Equal(KindInvalidFormat, v.Kind)
	})

	s.Run("yes_no accepts exactly Yes and No", func() {
		reqs := []journeymodels.Requirement{s.yesNoReq}
		for _, ok := range []string{"Yes", "No"} {
			s.Nil(Validate(reqs, []regmodels.Submission{
				{RequirementID: s.yesNoReq.ID, AnswerText: text(ok)},
			}))
		}
		for _, bad := range []string{"yes", "NO", "maybe", ""} {
			v := Validate(reqs, []regmodels.Submission{
				{RequirementID: s.yesNoReq.ID, AnswerText: text(bad)},
			})
			s.Require().NotNil(v, "value %q should be rejected", bad)
			s.Equal(KindInvalidFormat, v.Kind)
		}
	})

	s.Run("multiple_choice requires a json payload", func() {
		reqs := []journeymodels.Requirement{s.choiceReq}
		s.Nil(Validate(reqs, []regmodels.Submission{
			{RequirementID: s.choiceReq.ID, AnswerJSON: json.RawMessage(`["day"]`)},
		}))

		v := Validate(reqs, []regmodels.Submission{
			{RequirementID: s.choiceReq.ID, AnswerText: text("day")},
		})
		s.Require().NotNil(v)
		s.Equal(KindInvalidFormat, v.Kind)

		v = Validate(reqs, []regmodels.Submission{
			{RequirementID: s.choiceReq.ID, AnswerJSON: json.RawMessage(`null`)},
		})
		s.Require().NotNil(v)
		s.Equal(KindInvalidFormat, v.Kind)
	})

	s.Run("rating requires a json payload", func() {
		reqs := []journeymodels.Requirement{s.ratingReq}
		s.Nil(Validate(reqs, []regmodels.Submission{
			{RequirementID: s.ratingReq.ID, AnswerJSON: json.RawMessage(`4`)},
		}))

		v := Validate(reqs, []regmodels.Submission{
			{RequirementID: s.ratingReq.ID},
		})
		s.Require().NotNil(v)
		s.Equal(KindInvalidFormat, v.Kind)
	})
}

func (s *ValidatorSuite) TestViolationMessages() {
	s.Run("missing required lists ids", func() {
		v := &Violation{Kind: KindMissingRequired, MissingRequirementIDs: []id.RequirementID{s.textReq.ID}}
		s.Contains(v.Error(), string(KindMissingRequired))
		s.Contains(v.Error(), s.textReq.ID.String())
	})

	s.Run("invalid format names the question type", func() {
		v := &Violation{Kind: KindInvalidFormat, RequirementID: s.ratingReq.ID, QuestionType: id.QuestionTypeRating}
		s.Contains(v.Error(), "rating")
	})
}
