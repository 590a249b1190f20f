package events

import (
	"context"
	"log/slog"
)

// Sink receives events after they are persisted; used for the Kafka fanout.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// Worker consumes events from a channel, persists them, and fans out to an
// optional sink. It keeps background processing off the request path.
type Worker struct {
	store  Store
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

// NewWorker constructs a worker. sink may be nil.
func NewWorker(store Store, sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, sink: sink, inbox: inbox, logger: logger}
}

// Run processes events until ctx is cancelled. Persistence and sink errors
// are logged and skipped; one bad event must not stall the stream.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "event append failed",
					"action", event.Action,
					"registration_id", event.RegistrationID,
					"error", err,
				)
				continue
			}
			if w.sink != nil {
				if err := w.sink.Publish(ctx, event); err != nil {
					w.logger.WarnContext(ctx, "event sink publish failed",
						"action", event.Action,
						"registration_id", event.RegistrationID,
						"error", err,
					)
				}
			}
		}
	}
}
