// Package metrics holds the Prometheus collectors of the score service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kleurenwiezen"

// Metrics owns a dedicated registry so tests can create as many as they like.
// A nil *Metrics records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	roundsScored    *prometheus.CounterVec
	scoringFailures *prometheus.CounterVec
	rpcDuration     *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		roundsScored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_scored_total",
			Help:      "Rounds scored and persisted, by bid kind.",
		}, []string{"bid"}),
		scoringFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scoring_failures_total",
			Help:      "Rounds rejected by the scoring engine, by error kind.",
		}, []string{"kind"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "Duration of RPC calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
	}

	m.registry.MustRegister(
		m.roundsScored,
		m.scoringFailures,
		m.rpcDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the registry for tests and additional collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) RoundScored(bid string) {
	if m == nil {
		return
	}
	m.roundsScored.WithLabelValues(bid).Inc()
}

func (m *Metrics) ScoringFailed(kind string) {
	if m == nil {
		return
	}
	m.scoringFailures.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcDuration.WithLabelValues(procedure, code).Observe(d.Seconds())
}
