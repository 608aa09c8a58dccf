package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/dealflow-backend/pkg/ctxutil"
)

// probePaths are polled by the orchestrator every few seconds. Successful
// probes are logged at debug so they do not drown the request log.
var probePaths = map[string]bool{"/live": true, "/ready": true, "/metrics": true}

// Logger emits one "http.request" record per request: method, path, status,
// duration, response size, request id and, once Auth ran, the user id.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.Int("bytes", sw.bytes),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			// Auth runs inside Logger, so the identity is read back from the
			// writer rather than the request context.
			if sw.userID != "" {
				attrs = append(attrs, slog.String("user_id", sw.userID))
			}

			logger.LogAttrs(r.Context(), requestLevel(r.URL.Path, sw.status), "http.request", attrs...)
		})
	}
}

func requestLevel(path string, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	case probePaths[path]:
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
// It passes Flush through so event streams keep working behind it.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
	userID      string
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// annotateUser records the caller on every statusWriter in the chain.
func annotateUser(w http.ResponseWriter, userID string) {
	for w != nil {
		if sw, ok := w.(*statusWriter); ok {
			sw.userID = userID
			w = sw.ResponseWriter
			continue
		}
		u, ok := w.(interface{ Unwrap() http.ResponseWriter })
		if !ok {
			return
		}
		w = u.Unwrap()
	}
}
