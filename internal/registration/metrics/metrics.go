package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the registration lifecycle.
type Metrics struct {
	// Registrations by outcome: created, reactivated, conflict, rejected.
	RegistrationAttempts *prometheus.CounterVec

	// Decisions by verdict (approved, declined, cancelled) and origin
	// (owner, auto, crew).
	Decisions *prometheus.CounterVec

	// Answer set replacements after creation.
	AnswerReplacements prometheus.Counter
}

// New creates a Metrics instance with all registration metrics registered.
func New() *Metrics {
	return &Metrics{
		RegistrationAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crewdock_registration_attempts_total",
			Help: "Total registration creation attempts by outcome",
		}, []string{"outcome"}),

		Decisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crewdock_registration_decisions_total",
			Help: "Total registration decisions by verdict and origin",
		}, []string{"verdict", "origin"}),

		AnswerReplacements: promauto.NewCounter(prometheus.CounterOpts{
			Name: "crewdock_answer_replacements_total",
			Help: "Total answer set replacements on pending registrations",
		}),
	}
}

// IncrementAttempt records a registration creation attempt outcome.
func (m *Metrics) IncrementAttempt(outcome string) {
	if m != nil {
		m.RegistrationAttempts.WithLabelValues(outcome).Inc()
	}
}

// IncrementDecision records a lifecycle decision.
func (m *Metrics) IncrementDecision(verdict, origin string) {
	if m != nil {
		m.Decisions.WithLabelValues(verdict, origin).Inc()
	}
}

// IncrementAnswerReplacement records a post-creation answer replacement.
func (m *Metrics) IncrementAnswerReplacement() {
	if m != nil {
		m.AnswerReplacements.Inc()
	}
}
