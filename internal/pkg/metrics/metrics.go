package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes counters/histograms for the booking and contact flows.
// All methods are nil-safe so tests can pass a nil *Metrics.
type Metrics struct {
	submissions       *prometheus.CounterVec
	wizardTransitions *prometheus.CounterVec
	submitLatency     *prometheus.HistogramVec
	activeSessions    prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zenora",
			Subsystem: "intake",
			Name:      "submissions_total",
			Help:      "Total booking and contact submissions by outcome",
		}, []string{"kind", "outcome"}),
		wizardTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zenora",
			Subsystem: "wizard",
			Name:      "transitions_total",
			Help:      "Booking wizard step transitions",
		}, []string{"from", "to"}),
		submitLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "zenora",
			Subsystem: "wizard",
			Name:      "submit_latency_seconds",
			Help:      "Latency of the outbound booking submission",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "zenora",
			Subsystem: "wizard",
			Name:      "active_sessions",
			Help:      "Wizard sessions currently held in memory",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissions, m.wizardTransitions, m.submitLatency, m.activeSessions)
	return m
}

// ObserveSubmission counts an intake submission; kind is booking|contact
func (m *Metrics) ObserveSubmission(kind, outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) ObserveTransition(from, to string) {
	if m == nil {
		return
	}
	m.wizardTransitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) ObserveSubmitLatency(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.submitLatency.WithLabelValues(outcome).Observe(seconds)
}

func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}
