// Package service orchestrates the registration lifecycle: creation with
// answer validation, reactivation of cancelled registrations, owner
// decisions, crew cancellation, and the hand-off to the async assessment
// pipeline. Handlers stay thin; all business rules live here or below.
package service

import (
	"context"
	"errors"
	"log/slog"

	"crewdock/internal/autoapproval"
	"crewdock/internal/events"
	journeystore "crewdock/internal/journey/store"
	"crewdock/internal/notification"
	profilestore "crewdock/internal/profile/store"
	"crewdock/internal/registration/metrics"
	"crewdock/internal/registration/store"
	dErrors "crewdock/pkg/domain-errors"
	"crewdock/pkg/platform/sentinel"
	"crewdock/pkg/requestcontext"
)

// Scheduler is the assessment pipeline entry point.
type Scheduler interface {
	Schedule(ctx context.Context, task autoapproval.Task) bool
}

// Service implements the registration operations.
type Service struct {
	registrations store.RegistrationStore
	answers       store.AnswerStore
	journeys      journeystore.Store
	profiles      profilestore.Store

	scheduler Scheduler
	notifier  notification.Service
	publisher *events.Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

type Option func(*Service)

func WithScheduler(scheduler Scheduler) Option {
	return func(s *Service) {
		s.scheduler = scheduler
	}
}

func WithNotifier(notifier notification.Service) Option {
	return func(s *Service) {
		s.notifier = notifier
	}
}

func WithPublisher(publisher *events.Publisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(
	registrations store.RegistrationStore,
	answers store.AnswerStore,
	journeys journeystore.Store,
	profiles profilestore.Store,
	opts ...Option,
) (*Service, error) {
	if registrations == nil || answers == nil {
		return nil, errors.New("registration and answer stores are required")
	}
	if journeys == nil {
		return nil, errors.New("journey store is required")
	}

	svc := &Service{
		registrations: registrations,
		answers:       answers,
		journeys:      journeys,
		profiles:      profiles,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// translateStoreErr maps storage sentinels onto the client-facing error
// taxonomy. Anything unrecognized is internal.
func translateStoreErr(err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, notFoundMsg)
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, "registration already exists for this leg")
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.Wrap(err, dErrors.CodeInternal, "storage unavailable")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "storage failure")
	}
}

func (s *Service) emit(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	event.RequestID = requestcontext.RequestID(ctx)
	s.publisher.Emit(ctx, event)
}
