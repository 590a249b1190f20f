package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the auto-approval pipeline.
type Metrics struct {
	// Assessment outcomes by result: approved, declined, failed, skipped.
	AssessmentOutcome *prometheus.CounterVec

	// End-to-end task latency including retries.
	AssessmentLatency prometheus.Histogram

	// Attempts per assessment call, to watch retry pressure.
	AssessmentAttempts prometheus.Histogram
}

// New creates a Metrics instance with all auto-approval metrics registered.
func New() *Metrics {
	return &Metrics{
		AssessmentOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crewdock_assessment_outcomes_total",
			Help: "Total assessment task outcomes by result",
		}, []string{"result"}),

		AssessmentLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "crewdock_assessment_duration_seconds",
			Help:    "Duration of assessment tasks including retries",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),

		AssessmentAttempts: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "crewdock_assessment_attempts",
			Help:    "Number of attempts per assessment task",
			Buckets: []float64{1, 2, 3, 4, 5},
		}),
	}
}

// IncrementOutcome records an assessment task outcome.
func (m *Metrics) IncrementOutcome(result string) {
	if m != nil {
		m.AssessmentOutcome.WithLabelValues(result).Inc()
	}
}

// ObserveLatency records the total task duration.
func (m *Metrics) ObserveLatency(d time.Duration) {
	if m != nil {
		m.AssessmentLatency.Observe(d.Seconds())
	}
}

// ObserveAttempts records how many calls a task needed.
func (m *Metrics) ObserveAttempts(n int) {
	if m != nil {
		m.AssessmentAttempts.Observe(float64(n))
	}
}
