package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for case-creation orchestration.
type Metrics struct {
	CasesCreated    *prometheus.CounterVec
	DuplicatesFound prometheus.Counter
	CasesLinked     prometheus.Counter
	CreateLatency   prometheus.Histogram
}

// New registers all case-creation metrics.
func New() *Metrics {
	return &Metrics{
		CasesCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sscs_cases_created_total",
			Help: "Total cases created in the store by lifecycle event",
		}, []string{"event"}),

		DuplicatesFound: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sscs_duplicate_cases_total",
			Help: "Exception records matched to an already-existing case",
		}),

		CasesLinked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sscs_linked_cases_total",
			Help: "Associated case links added during creation",
		}),

		CreateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "sscs_case_create_duration_seconds",
			Help:    "Duration of the create call against the case store",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// IncrementCreated records a created case.
func (m *Metrics) IncrementCreated(event string) {
	if m != nil {
		m.CasesCreated.WithLabelValues(event).Inc()
	}
}

// IncrementDuplicate records a dedup hit.
func (m *Metrics) IncrementDuplicate() {
	if m != nil {
		m.DuplicatesFound.Inc()
	}
}

// AddLinked records links added to a case.
func (m *Metrics) AddLinked(n int) {
	if m != nil && n > 0 {
		m.CasesLinked.Add(float64(n))
	}
}

// ObserveCreateLatency records the duration of a create call.
func (m *Metrics) ObserveCreateLatency(d time.Duration) {
	if m != nil {
		m.CreateLatency.Observe(d.Seconds())
	}
}
