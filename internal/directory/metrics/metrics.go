package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the directory module. Tracks
// registration outcomes and the registration critical path duration.
type Metrics struct {
	UsersRegistered       prometheus.Counter
	RegistrationsRejected *prometheus.CounterVec
	UsersRemoved          prometheus.Counter
	RegisterDuration      prometheus.Histogram
}

// New creates a Metrics instance with all directory metrics registered on the
// default prometheus registerer.
func New() *Metrics {
	return &Metrics{
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roster_users_registered_total",
			Help: "Total number of users registered",
		}),
		RegistrationsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_registrations_rejected_total",
			Help: "Total number of rejected registrations by reason",
		}, []string{"reason"}),
		UsersRemoved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roster_users_removed_total",
			Help: "Total number of users removed",
		}),
		RegisterDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "roster_register_duration_seconds",
			Help:    "Duration of Register operations",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}

// IncrementRegistered records a successful registration.
func (m *Metrics) IncrementRegistered() {
	m.UsersRegistered.Inc()
}

// IncrementRejected records a rejected registration with its reason label
// ("invalid" or "duplicate").
func (m *Metrics) IncrementRejected(reason string) {
	m.RegistrationsRejected.WithLabelValues(reason).Inc()
}

// IncrementRemoved records a successful removal.
func (m *Metrics) IncrementRemoved() {
	m.UsersRemoved.Inc()
}

// ObserveRegister records the duration of a Register operation. Call with
// time.Now() at the start of the operation.
func (m *Metrics) ObserveRegister(start time.Time) {
	m.RegisterDuration.Observe(time.Since(start).Seconds())
}
