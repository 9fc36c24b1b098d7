package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the callback endpoints.
type Metrics struct {
	CallbackOutcome *prometheus.CounterVec
	CallbackLatency *prometheus.HistogramVec
}

// New registers all callback metrics.
func New() *Metrics {
	return &Metrics{
		CallbackOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sscs_callbacks_total",
			Help: "Callback requests by operation and outcome",
		}, []string{"operation", "outcome"}),

		CallbackLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sscs_callback_duration_seconds",
			Help:    "Duration of callback handling by operation",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
	}
}

// IncrementOutcome records one handled callback.
func (m *Metrics) IncrementOutcome(operation, outcome string) {
	if m != nil {
		m.CallbackOutcome.WithLabelValues(operation, outcome).Inc()
	}
}

// ObserveLatency records how long a callback took.
func (m *Metrics) ObserveLatency(operation string, d time.Duration) {
	if m != nil {
		m.CallbackLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}
