package notification

import (
	"context"
	"log/slog"

	id "crewdock/pkg/domain"
)

// LogNotifier is the default Service implementation: it records the
// notification in the structured log. Real delivery channels (email, push)
// are operated outside this service and subscribe to the same decision.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyNewRegistration(ctx context.Context, payload Payload, actorID id.UserID) error {
	n.logger.InfoContext(ctx, "owner notified of new registration",
		"owner_id", payload.OwnerID,
		"registration_id", payload.RegistrationID,
		"journey_id", payload.JourneyID,
		"journey_name", payload.JourneyName,
		"crew_name", payload.CrewName,
		"actor_id", actorID,
	)
	return nil
}
