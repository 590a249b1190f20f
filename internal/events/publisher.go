package events

import (
	"context"
	"log/slog"
	"time"
)

// Publisher hands events to the worker without blocking the emitting
// request. A full inbox drops the event with a warning; lifecycle events are
// observability, never a correctness dependency.
type Publisher struct {
	inbox  chan<- Event
	logger *slog.Logger
}

// NewPublisher wraps the worker's inbox channel.
func NewPublisher(inbox chan<- Event, logger *slog.Logger) *Publisher {
	return &Publisher{inbox: inbox, logger: logger}
}

// Emit enqueues an event, stamping the time if unset.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case p.inbox <- event:
	default:
		p.logger.WarnContext(ctx, "event inbox full, dropping event",
			"action", event.Action,
			"registration_id", event.RegistrationID,
		)
	}
}
