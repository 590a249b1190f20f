package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "crewdock/pkg/domain"
)

func TestCollapseSubmissions(t *testing.T) {
	reqA := id.RequirementID(uuid.New())
	reqB := id.RequirementID(uuid.New())
	first := "first"
	second := "second"
	other := "other"

	t.Run("keeps last submission per requirement", func(t *testing.T) {
		out := CollapseSubmissions([]Submission{
			{RequirementID: reqA, AnswerText: &first},
			{RequirementID: reqB, AnswerText: &other},
			{RequirementID: reqA, AnswerText: &second},
		})
		require.Len(t, out, 2)
		assert.Equal(t, reqA, out[0].RequirementID)
		assert.Equal(t, &second, out[0].AnswerText)
		assert.Equal(t, reqB, out[1].RequirementID)
	})

	t.Run("no duplicates passes through", func(t *testing.T) {
		in := []Submission{
			{RequirementID: reqA, AnswerText: &first},
			{RequirementID: reqB, AnswerText: &other},
		}
		assert.Equal(t, in, CollapseSubmissions(in))
	})

	t.Run("empty and single inputs are returned as-is", func(t *testing.T) {
		assert.Empty(t, CollapseSubmissions(nil))
		single := []Submission{{RequirementID: reqA}}
		assert.Equal(t, single, CollapseSubmissions(single))
	})
}

func TestBindSubmissions(t *testing.T) {
	regID := id.RegistrationID(uuid.New())
	reqID := id.RequirementID(uuid.New())
	now := time.Now()
	answerText := "Yes"

	answers := BindSubmissions(regID, []Submission{
		{RequirementID: reqID, AnswerText: &answerText},
	}, now)

	require.Len(t, answers, 1)
	assert.False(t, answers[0].ID.IsNil())
	assert.Equal(t, regID, answers[0].RegistrationID)
	assert.Equal(t, reqID, answers[0].RequirementID)
	assert.Equal(t, &answerText, answers[0].AnswerText)
	assert.Equal(t, now, answers[0].CreatedAt)
}
