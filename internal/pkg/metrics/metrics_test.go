package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveSubmission("booking", "created")
	m.ObserveSubmission("booking", "created")
	m.ObserveTransition("date", "time")
	m.ObserveSubmitLatency("success", 0.2)
	m.SetActiveSessions(3)

	if got := testutil.ToFloat64(m.submissions.WithLabelValues("booking", "created")); got != 2 {
		t.Fatalf("expected 2 submissions, got %v", got)
	}
	if got := testutil.ToFloat64(m.activeSessions); got != 3 {
		t.Fatalf("expected 3 active sessions, got %v", got)
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveSubmission("contact", "created")
	m.ObserveTransition("date", "time")
	m.ObserveSubmitLatency("failure", 0.1)
	m.SetActiveSessions(1)
}
