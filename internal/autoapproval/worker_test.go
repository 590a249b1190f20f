package autoapproval_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"crewdock/internal/autoapproval"
	"crewdock/internal/autoapproval/mocks"
	"crewdock/internal/events"
	regmodels "crewdock/internal/registration/models"
	regstore "crewdock/internal/registration/store"
	id "crewdock/pkg/domain"
	"crewdock/pkg/testutil"
)

const eventuallyTick = 5 * time.Millisecond

type WorkerSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	cancel context.CancelFunc

	assessor      *mocks.MockAssessmentService
	registrations *regstore.MemoryRegistrationStore
	eventStore    *events.MemoryStore
	orchestrator  *autoapproval.Orchestrator
}

func TestWorkerSuite(t *testing.T) {
	suite.Run(t, new(WorkerSuite))
}

func (s *WorkerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.assessor = mocks.NewMockAssessmentService(s.ctrl)
	s.registrations = regstore.NewMemoryRegistrations()
	s.eventStore = events.NewMemoryStore()
	logger := testutil.DiscardLogger()

	inbox := make(chan events.Event, 64)
	publisher := events.NewPublisher(inbox, logger)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	eventsWorker := events.NewWorker(s.eventStore, nil, inbox, logger)
	go func() { _ = eventsWorker.Run(ctx) }()

	// MaxConcurrent 1 makes task completion order match queue order, which
	// the stale-task test relies on.
	s.orchestrator = autoapproval.NewOrchestrator(8, logger)
	worker := autoapproval.NewWorker(autoapproval.Config{
		MaxConcurrent: 1,
		MaxAttempts:   3,
		BaseBackoff:   time.Millisecond,
		CallTimeout:   250 * time.Millisecond,
	}, s.orchestrator.Queue(), s.assessor, s.registrations, publisher, nil, logger)
	go func() { _ = worker.Run(ctx) }()
}

func (s *WorkerSuite) TearDownTest() {
	s.cancel()
}

// seedScheduled stores a pending registration whose assessment has been
// scheduled, the state a queued task expects to find.
func (s *WorkerSuite) seedScheduled() *regmodels.Registration {
	reg := regmodels.NewRegistration(id.LegID(uuid.New()), id.UserID(uuid.New()), "", time.Now().UTC())
	reg.AssessmentState = regmodels.AssessmentScheduled
	s.Require().NoError(s.registrations.Create(context.Background(), reg))
	return reg
}

func (s *WorkerSuite) schedule(reg *regmodels.Registration) {
	s.Require().True(s.orchestrator.Schedule(context.Background(), autoapproval.Task{RegistrationID: reg.ID}))
}

func (s *WorkerSuite) waitForStatus(regID id.RegistrationID, want id.RegistrationStatus) *regmodels.Registration {
	var reg *regmodels.Registration
	s.Require().Eventually(func() bool {
		var err error
		reg, err = s.registrations.Get(context.Background(), regID)
		return err == nil && reg.Status == want
	}, 2*time.Second, eventuallyTick)
	return reg
}

func (s *WorkerSuite) waitForEvent(regID id.RegistrationID, action events.Action) events.Event {
	var found events.Event
	s.Require().Eventually(func() bool {
		stored, err := s.eventStore.ListByRegistration(context.Background(), regID)
		if err != nil {
			return false
		}
		for _, e := range stored {
			if e.Action == action {
				found = e
				return true
			}
		}
		return false
	}, 2*time.Second, eventuallyTick)
	return found
}

func (s *WorkerSuite) TestApproveOutcomeApplied() {
	reg := s.seedScheduled()
	s.assessor.EXPECT().
		Assess(gomock.Any(), reg.ID).
		Return(&autoapproval.Outcome{Score: 92, Reasoning: "strong skill overlap", Approve: true}, nil)

	s.schedule(reg)

	updated := s.waitForStatus(reg.ID, id.StatusApproved)
	s.True(updated.AutoApproved)
	s.Equal(regmodels.AssessmentCompleted, updated.AssessmentState)
	s.Require().NotNil(updated.AIMatchScore)
	s.Equal(92, *updated.AIMatchScore)
	s.Require().NotNil(updated.AIMatchReasoning)
	s.Equal("strong skill overlap", *updated.AIMatchReasoning)

	decided := s.waitForEvent(reg.ID, events.ActionRegistrationApproved)
	s.Equal("approved", decided.Decision)
	completed := s.waitForEvent(reg.ID, events.ActionAssessmentCompleted)
	s.Require().NotNil(completed.Score)
	s.Equal(92, *completed.Score)
}

func (s *WorkerSuite) TestDeclineOutcomeApplied() {
	reg := s.seedScheduled()
	s.assessor.EXPECT().
		Assess(gomock.Any(), reg.ID).
		Return(&autoapproval.Outcome{Score: 31, Reasoning: "missing required skills", Approve: false}, nil)

	s.schedule(reg)

	updated := s.waitForStatus(reg.ID, id.StatusNotApproved)
	s.True(updated.AutoApproved)
	s.Equal("missing required skills", updated.Notes)
	s.Require().NotNil(updated.AIMatchScore)
	s.Equal(31, *updated.AIMatchScore)

	declined := s.waitForEvent(reg.ID, events.ActionRegistrationDeclined)
	s.Equal("declined", declined.Decision)
	s.Equal("missing required skills", declined.Reason)
}

func (s *WorkerSuite) TestRetryRecoversFromTransientFailure() {
	reg := s.seedScheduled()
	gomock.InOrder(
		s.assessor.EXPECT().
			Assess(gomock.Any(), reg.ID).
			Return(nil, errors.New("scoring backend unreachable")),
		s.assessor.EXPECT().
			Assess(gomock.Any(), reg.ID).
			Return(&autoapproval.Outcome{Score: 80, Reasoning: "recovered", Approve: true}, nil),
	)

	s.schedule(reg)

	updated := s.waitForStatus(reg.ID, id.StatusApproved)
	s.Equal(regmodels.AssessmentCompleted, updated.AssessmentState)
}

func (s *WorkerSuite) TestExhaustedRetriesParkForManualReview() {
	reg := s.seedScheduled()
	s.assessor.EXPECT().
		Assess(gomock.Any(), reg.ID).
		Return(nil, errors.New("scoring backend unreachable")).
		Times(3)

	s.schedule(reg)

	failed := s.waitForEvent(reg.ID, events.ActionAssessmentFailed)
	s.Equal("scoring backend unreachable", failed.Reason)

	updated, err := s.registrations.Get(context.Background(), reg.ID)
	s.Require().NoError(err)
	s.Equal(id.StatusPendingApproval, updated.Status)
	s.Equal(regmodels.AssessmentFailed, updated.AssessmentState)
	s.Nil(updated.AIMatchScore)
}

func (s *WorkerSuite) TestStaleTaskSkipped() {
	stale := s.seedScheduled()
	s.Require().NoError(stale.Cancel(time.Now().UTC()))
	s.Require().NoError(s.registrations.Update(context.Background(), stale))

	// Only the live task may reach the assessment service; the controller
	// fails the test if the stale one does.
	live := s.seedScheduled()
	s.assessor.EXPECT().
		Assess(gomock.Any(), live.ID).
		Return(&autoapproval.Outcome{Score: 75, Reasoning: "ok", Approve: true}, nil)

	s.schedule(stale)
	s.schedule(live)

	s.waitForStatus(live.ID, id.StatusApproved)

	unchanged, err := s.registrations.Get(context.Background(), stale.ID)
	s.Require().NoError(err)
	s.Equal(id.StatusCancelled, unchanged.Status)
	s.Nil(unchanged.AIMatchScore)
}

func (s *WorkerSuite) TestMissingRegistrationSkipped() {
	live := s.seedScheduled()
	s.assessor.EXPECT().
		Assess(gomock.Any(), live.ID).
		Return(&autoapproval.Outcome{Score: 75, Reasoning: "ok", Approve: true}, nil)

	s.schedule(&regmodels.Registration{ID: id.NewRegistrationID()})
	s.schedule(live)

	s.waitForStatus(live.ID, id.StatusApproved)
}
