package autoapproval

import (
	"context"
	"log/slog"

	journeymodels "crewdock/internal/journey/models"
)

// Orchestrator decides whether auto-approval applies to a registration
// attempt and hands accepted work to the queue the worker drains.
type Orchestrator struct {
	queue  chan Task
	logger *slog.Logger
}

// NewOrchestrator sizes the task queue. The queue bounds in-flight work;
// see Worker for the concurrency bound on execution.
func NewOrchestrator(queueSize int, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		queue:  make(chan Task, queueSize),
		logger: logger,
	}
}

// Queue exposes the task channel for the worker.
func (o *Orchestrator) Queue() <-chan Task {
	return o.queue
}

// Applies reports whether the journey's auto-approval feature governs this
// registration: the flag must be on and the journey must have at least one
// requirement. When it applies, submitted answers are mandatory at creation
// time.
func Applies(journey journeymodels.Journey, requirementCount int) bool {
	return journey.AutoApprovalEnabled && requirementCount > 0
}

// Schedule enqueues an assessment task. Never blocks the caller: a full
// queue is reported so the registration can be parked for manual review
// instead of stalling the creation response.
func (o *Orchestrator) Schedule(ctx context.Context, task Task) bool {
	select {
	case o.queue <- task:
		return true
	default:
		o.logger.WarnContext(ctx, "assessment queue full, task dropped",
			"registration_id", task.RegistrationID,
		)
		return false
	}
}
