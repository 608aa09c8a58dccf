package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/dealflow-backend/internal/metrics"
)

type routeKey struct{}

// routeLabel is filled in by the router once a pattern matched. Requests
// that never reach a route are labelled "unmatched".
type routeLabel struct {
	pattern string
}

// SetRoute records the matched route pattern for Metrics. Handlers
// registered through the router call it; it is a no-op outside Metrics.
func SetRoute(ctx context.Context, pattern string) {
	if l, ok := ctx.Value(routeKey{}).(*routeLabel); ok {
		l.pattern = pattern
	}
}

// Metrics counts requests and observes their latency by route pattern, so
// path parameters do not explode label cardinality.
func Metrics(m *metrics.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			label := &routeLabel{pattern: "unmatched"}
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), routeKey{}, label)))

			m.HTTPRequestsTotal.WithLabelValues(r.Method, label.pattern, strconv.Itoa(sw.status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(r.Method, label.pattern).Observe(time.Since(start).Seconds())
		})
	}
}
