package autoapproval_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdock/internal/autoapproval"
	journeymodels "crewdock/internal/journey/models"
	id "crewdock/pkg/domain"
	"crewdock/pkg/testutil"
)

func TestApplies(t *testing.T) {
	tests := []struct {
		name         string
		enabled      bool
		requirements int
		want         bool
	}{
		{name: "enabled with requirements", enabled: true, requirements: 2, want: true},
		{name: "enabled without requirements", enabled: true, requirements: 0, want: false},
		{name: "disabled with requirements", enabled: false, requirements: 2, want: false},
		{name: "disabled without requirements", enabled: false, requirements: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journey := journeymodels.Journey{AutoApprovalEnabled: tt.enabled}
			assert.Equal(t, tt.want, autoapproval.Applies(journey, tt.requirements))
		})
	}
}

func TestScheduleReportsQueueFull(t *testing.T) {
	orchestrator := autoapproval.NewOrchestrator(1, testutil.DiscardLogger())
	ctx := context.Background()

	task := autoapproval.Task{RegistrationID: id.RegistrationID(uuid.New())}
	require.True(t, orchestrator.Schedule(ctx, task))

	// Nothing drains the queue, so the second task must be refused rather
	// than block the caller.
	assert.False(t, orchestrator.Schedule(ctx, task))
}
