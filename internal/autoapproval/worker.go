package autoapproval

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"

	"crewdock/internal/autoapproval/metrics"
	"crewdock/internal/events"
	regmodels "crewdock/internal/registration/models"
	regstore "crewdock/internal/registration/store"
	id "crewdock/pkg/domain"
)

// Config bounds the worker's retry and concurrency behavior.
type Config struct {
	MaxConcurrent int64
	MaxAttempts   int
	BaseBackoff   time.Duration
	CallTimeout   time.Duration
}

// Worker drains the assessment queue. Each task re-reads the committed
// registration, calls the external assessment with bounded retry, and
// applies the verdict through the state machine. A task that exhausts its
// retries parks the registration for manual review; it never propagates
// failure back to the creation response.
type Worker struct {
	cfg           Config
	queue         <-chan Task
	assessor      AssessmentService
	registrations regstore.RegistrationStore
	publisher     *events.Publisher
	metrics       *metrics.Metrics
	logger        *slog.Logger
	sem           *semaphore.Weighted
}

// NewWorker constructs a worker for the orchestrator's queue.
func NewWorker(
	cfg Config,
	queue <-chan Task,
	assessor AssessmentService,
	registrations regstore.RegistrationStore,
	publisher *events.Publisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Worker {
	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Worker{
		cfg:           cfg,
		queue:         queue,
		assessor:      assessor,
		registrations: registrations,
		publisher:     publisher,
		metrics:       m,
		logger:        logger,
		sem:           semaphore.NewWeighted(cfg.MaxConcurrent),
	}
}

// Run processes tasks until ctx is cancelled. Total concurrent assessments
// are bounded by the semaphore; the queue provides backpressure beyond that.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case task := <-w.queue:
			if err := w.sem.Acquire(ctx, 1); err != nil {
				return err
			}
			go func(task Task) {
				defer w.sem.Release(1)
				w.process(ctx, task)
			}(task)
		}
	}
}

func (w *Worker) process(ctx context.Context, task Task) {
	tracer := otel.Tracer("crewdock/autoapproval")
	ctx, span := tracer.Start(ctx, "assessment.process",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("registration_id", task.RegistrationID.String())),
	)
	defer span.End()

	start := time.Now()
	defer func() { w.metrics.ObserveLatency(time.Since(start)) }()

	// Re-read the committed row: the task carries only an ID, so whatever
	// state we see here is at least as fresh as the write that queued it.
	reg, err := w.registrations.Get(ctx, task.RegistrationID)
	if err != nil {
		w.logger.ErrorContext(ctx, "assessment task could not load registration",
			"registration_id", task.RegistrationID,
			"error", err,
		)
		w.metrics.IncrementOutcome("skipped")
		return
	}

	// The crew member may have cancelled, or an owner may have decided,
	// between scheduling and execution. Stale tasks are dropped.
	if reg.Status != id.StatusPendingApproval || reg.AssessmentState != regmodels.AssessmentScheduled {
		w.logger.InfoContext(ctx, "assessment task stale, skipping",
			"registration_id", task.RegistrationID,
			"status", reg.Status.String(),
			"assessment_state", string(reg.AssessmentState),
		)
		w.metrics.IncrementOutcome("skipped")
		return
	}

	outcome, attempts, err := w.assessWithRetry(ctx, task.RegistrationID)
	w.metrics.ObserveAttempts(attempts)
	if err != nil {
		w.markFailed(ctx, reg, err)
		return
	}

	w.applyOutcome(ctx, reg, outcome)
}

// assessWithRetry calls the assessment service up to MaxAttempts times with
// exponential backoff, each call capped by CallTimeout.
func (w *Worker) assessWithRetry(ctx context.Context, regID id.RegistrationID) (*Outcome, int, error) {
	var lastErr error
	backoff := w.cfg.BaseBackoff

	for attempt := 1; attempt <= w.cfg.MaxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, w.cfg.CallTimeout)
		outcome, err := w.assessor.Assess(callCtx, regID)
		cancel()

		if err == nil {
			return outcome, attempt, nil
		}
		lastErr = err

		w.logger.WarnContext(ctx, "assessment call failed",
			"registration_id", regID,
			"attempt", attempt,
			"error", err,
		)

		if attempt == w.cfg.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, attempt, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return nil, w.cfg.MaxAttempts, lastErr
}

// markFailed parks the registration for manual review: status stays Pending
// approval, only the assessment state records the failure.
func (w *Worker) markFailed(ctx context.Context, reg *regmodels.Registration, cause error) {
	reg.AssessmentState = regmodels.AssessmentFailed
	reg.UpdatedAt = time.Now()
	if err := w.registrations.Update(ctx, reg); err != nil {
		w.logger.ErrorContext(ctx, "could not record failed assessment",
			"registration_id", reg.ID,
			"error", err,
		)
	}

	w.logger.ErrorContext(ctx, "assessment exhausted retries, escalating to manual review",
		"registration_id", reg.ID,
		"error", cause,
	)
	w.metrics.IncrementOutcome("failed")
	w.publisher.Emit(ctx, events.Event{
		Action:         events.ActionAssessmentFailed,
		RegistrationID: reg.ID,
		LegID:          reg.LegID,
		UserID:         reg.UserID,
		Reason:         cause.Error(),
	})
}

func (w *Worker) applyOutcome(ctx context.Context, reg *regmodels.Registration, outcome *Outcome) {
	now := time.Now()
	score := outcome.Score
	reasoning := outcome.Reasoning
	reg.AIMatchScore = &score
	reg.AssessmentState = regmodels.AssessmentCompleted

	var transitionErr error
	var action events.Action
	var result string
	if outcome.Approve {
		transitionErr = reg.Approve("", &reasoning, true, now)
		action = events.ActionRegistrationApproved
		result = "approved"
	} else {
		transitionErr = reg.Decline(reasoning, true, now)
		action = events.ActionRegistrationDeclined
		result = "declined"
	}
	if transitionErr != nil {
		// Lost a race with a concurrent owner decision or cancellation;
		// the assessment result is discarded.
		w.logger.InfoContext(ctx, "assessment outcome discarded after state change",
			"registration_id", reg.ID,
			"error", transitionErr,
		)
		w.metrics.IncrementOutcome("skipped")
		return
	}

	if err := w.registrations.Update(ctx, reg); err != nil {
		w.logger.ErrorContext(ctx, "could not persist assessment outcome",
			"registration_id", reg.ID,
			"error", err,
		)
		w.metrics.IncrementOutcome("failed")
		return
	}

	w.metrics.IncrementOutcome(result)
	w.publisher.Emit(ctx, events.Event{
		Action:         action,
		RegistrationID: reg.ID,
		LegID:          reg.LegID,
		UserID:         reg.UserID,
		Decision:       result,
		Reason:         outcome.Reasoning,
		Score:          &score,
	})
	w.publisher.Emit(ctx, events.Event{
		Action:         events.ActionAssessmentCompleted,
		RegistrationID: reg.ID,
		LegID:          reg.LegID,
		UserID:         reg.UserID,
		Decision:       result,
		Score:          &score,
	})
}
