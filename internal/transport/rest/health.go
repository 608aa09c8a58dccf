package rest

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"
)

const probeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// Check is a named dependency probed by /ready and /health. An Optional
// check that fails degrades the report without failing readiness: the board
// keeps working on one instance when the cross-instance relay is gone.
type Check struct {
	Name     string
	Ping     func(ctx context.Context) error
	Optional bool
}

// ReadyCheck turns a readiness flag, such as the board projector's initial
// load, into a Check.
func ReadyCheck(name string, ready func() bool) Check {
	return Check{Name: name, Ping: func(context.Context) error {
		if !ready() {
			return errors.New("not ready")
		}
		return nil
	}}
}

// Component states reported by /health.
const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

// HealthResponse is the body of every probe endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthHandler serves /live, /ready and /health.
type HealthHandler struct {
	checks  []Check
	version string
}

// NewHealthHandler always probes the database first, as "database".
func NewHealthHandler(db dbPinger, version string, extra ...Check) *HealthHandler {
	checks := make([]Check, 0, len(extra)+1)
	checks = append(checks, Check{Name: "database", Ping: db.Ping})
	checks = append(checks, extra...)
	return &HealthHandler{checks: checks, version: version}
}

// Live answers as long as the process can serve HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready returns 503 while any required component is down. Only failing
// components are listed so load balancer logs stay short.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	overall, comps := h.probe(r.Context())

	failing := make(map[string]CompStatus)
	for name, c := range comps {
		if c.Status != statusOK {
			failing[name] = CompStatus{Status: c.Status}
		}
	}
	if len(failing) == 0 {
		failing = nil
	}

	writeJSON(w, httpStatus(overall), HealthResponse{
		Status:     overall,
		Components: failing,
		Timestamp:  time.Now(),
	})
}

// Health reports every component with its latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	overall, comps := h.probe(r.Context())
	writeJSON(w, httpStatus(overall), HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: comps,
		Timestamp:  time.Now(),
	})
}

// probe pings all components concurrently under one deadline.
func (h *HealthHandler) probe(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	results := make([]CompStatus, len(h.checks))
	var wg sync.WaitGroup
	for i, c := range h.checks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			if err := c.Ping(ctx); err != nil {
				st := statusDown
				if c.Optional {
					st = statusDegraded
				}
				results[i] = CompStatus{Status: st, Error: err.Error()}
				return
			}
			results[i] = CompStatus{Status: statusOK, Latency: time.Since(start).String()}
		}()
	}
	wg.Wait()

	overall := statusOK
	comps := make(map[string]CompStatus, len(h.checks))
	for i, c := range h.checks {
		comps[c.Name] = results[i]
		switch results[i].Status {
		case statusDown:
			overall = statusDown
		case statusDegraded:
			if overall == statusOK {
				overall = statusDegraded
			}
		}
	}
	return overall, comps
}

func httpStatus(overall string) int {
	if overall == statusDown {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
