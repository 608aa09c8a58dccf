// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics groups every collector the service exposes.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec   // requests by method, route, status
	HTTPRequestDuration *prometheus.HistogramVec // latency by method and route

	PipelineMutations *prometheus.CounterVec // company mutations by operation; sweep_overdue counts flagged rows

	RealtimeClients   prometheus.Gauge       // connected SSE clients
	RealtimeDropped   prometheus.Counter     // events dropped for slow clients
	RealtimePublished *prometheus.CounterVec // change events published by table

	registry *prometheus.Registry
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() (*Metrics, error) {
	reg := prometheus.NewRegistry()
	m := newUnregistered()
	m.registry = reg

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.PipelineMutations,
		m.RealtimeClients,
		m.RealtimeDropped,
		m.RealtimePublished,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return m, nil
}

// NewNop returns collectors that are not registered anywhere. Useful in tests
// and in one-shot commands.
func NewNop() *Metrics {
	return newUnregistered()
}

// Registry returns the registry to serve, or nil for NewNop metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func newUnregistered() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dealflow_http_requests_total",
				Help: "Total HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dealflow_http_request_duration_seconds",
				Help:    "HTTP request latency by method and route",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "route"},
		),
		PipelineMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dealflow_pipeline_mutations_total",
				Help: "Committed company mutations by operation",
			},
			[]string{"op"},
		),
		RealtimeClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dealflow_realtime_clients",
			Help: "Currently connected change-feed clients",
		}),
		RealtimeDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dealflow_realtime_dropped_total",
			Help: "Change events dropped because a client was too slow",
		}),
		RealtimePublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dealflow_realtime_published_total",
				Help: "Change events published by table",
			},
			[]string{"table"},
		),
	}
}
