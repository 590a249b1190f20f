package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	id "crewdock/pkg/domain"
	"crewdock/pkg/platform/sentinel"
)

type RegistrationSuite struct {
	suite.Suite
	now time.Time
}

func TestRegistrationSuite(t *testing.T) {
	suite.Run(t, new(RegistrationSuite))
}

func (s *RegistrationSuite) SetupTest() {
	s.now = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
}

func (s *RegistrationSuite) newPending() *Registration {
	return NewRegistration(id.LegID(uuid.New()), id.UserID(uuid.New()), "keen to join", s.now)
}

func (s *RegistrationSuite) TestNewRegistration() {
	reg := s.newPending()
	s.Equal(id.StatusPendingApproval, reg.Status)
	s.Equal(AssessmentNone, reg.AssessmentState)
	s.False(reg.AutoApproved)
	s.Nil(reg.AIMatchScore)
	s.False(reg.ID.IsNil())
	s.Equal(s.now, reg.CreatedAt)
}

func (s *RegistrationSuite) TestApprove() {
	s.Run("owner approval from pending", func() {
		reg := s.newPending()
		later := s.now.Add(time.Hour)

		s.Require().NoError(reg.Approve("welcome aboard", nil, false, later))
		s.Equal(id.StatusApproved, reg.Status)
		s.Equal("welcome aboard", reg.Notes)
		s.False(reg.AutoApproved)
		s.Equal(later, reg.UpdatedAt)
	})

	s.Run("auto approval carries reasoning", func() {
		reg := s.newPending()
		reasoning := "match score 85 against threshold 70"

		s.Require().NoError(reg.Approve("", &reasoning, true, s.now))
		s.True(reg.AutoApproved)
		s.Require().NotNil(reg.AIMatchReasoning)
		s.Equal(reasoning, *reg.AIMatchReasoning)
		s.Equal("keen to join", reg.Notes, "empty approval notes keep the original notes")
	})

	s.Run("approving twice is invalid", func() {
		reg := s.newPending()
		s.Require().NoError(reg.Approve("", nil, false, s.now))
		s.ErrorIs(reg.Approve("", nil, false, s.now), sentinel.ErrInvalidState)
	})

	s.Run("approving a cancelled registration is invalid", func() {
		reg := s.newPending()
		s.Require().NoError(reg.Cancel(s.now))
		s.ErrorIs(reg.Approve("", nil, false, s.now), sentinel.ErrInvalidState)
	})
}

func (s *RegistrationSuite) TestDecline() {
	reg := s.newPending()
	s.Require().NoError(reg.Decline("not enough offshore miles", false, s.now))
	s.Equal(id.StatusNotApproved, reg.Status)
	s.Equal("not enough offshore miles", reg.Notes)

	s.ErrorIs(reg.Decline("again", false, s.now), sentinel.ErrInvalidState)
}

func (s *RegistrationSuite) TestCancel() {
	s.Run("pending can be cancelled", func() {
		reg := s.newPending()
		s.Require().NoError(reg.Cancel(s.now))
		s.Equal(id.StatusCancelled, reg.Status)
	})

	s.Run("approved can be cancelled", func() {
		reg := s.newPending()
		s.Require().NoError(reg.Approve("", nil, false, s.now))
		s.NoError(reg.Cancel(s.now))
	})

	s.Run("declined can be cancelled", func() {
		reg := s.newPending()
		s.Require().NoError(reg.Decline("no", false, s.now))
		s.NoError(reg.Cancel(s.now))
	})

	s.Run("cancelling twice is invalid", func() {
		reg := s.newPending()
		s.Require().NoError(reg.Cancel(s.now))
		s.ErrorIs(reg.Cancel(s.now), sentinel.ErrInvalidState)
	})
}

func (s *RegistrationSuite) TestReactivate() {
	s.Run("cancelled registration restarts the lifecycle in place", func() {
		reg := s.newPending()
		score := 42
		reasoning := "old run"
		reg.AIMatchScore = &score
		reg.AIMatchReasoning = &reasoning
		reg.AutoApproved = true
		reg.AssessmentState = AssessmentCompleted
		s.Require().NoError(reg.Cancel(s.now))

		originalID := reg.ID
		later := s.now.Add(48 * time.Hour)
		s.Require().NoError(reg.Reactivate("second attempt", later))

		s.Equal(originalID, reg.ID, "reactivation reuses the row identity")
		s.Equal(id.StatusPendingApproval, reg.Status)
		s.Equal("second attempt", reg.Notes)
		s.Equal(s.now, reg.CreatedAt, "creation time is preserved")
		s.Equal(later, reg.UpdatedAt)
		s.Nil(reg.AIMatchScore)
		s.Nil(reg.AIMatchReasoning)
		s.False(reg.AutoApproved)
		s.Equal(AssessmentNone, reg.AssessmentState)
	})

	s.Run("only cancelled registrations reactivate", func() {
		reg := s.newPending()
		s.ErrorIs(reg.Reactivate("nope", s.now), sentinel.ErrInvalidState)

		s.Require().NoError(reg.Approve("", nil, false, s.now))
		s.ErrorIs(reg.Reactivate("nope", s.now), sentinel.ErrInvalidState)
	})
}
