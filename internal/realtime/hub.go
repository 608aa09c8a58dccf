package realtime

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/internal/metrics"
	"github.com/heartmarshall/dealflow-backend/pkg/ctxutil"
)

// HeartbeatInterval is how often an idle stream gets a comment line.
const HeartbeatInterval = 15 * time.Second

type snapshotSource interface {
	Snapshot() Snapshot
}

// Hub serves the change feed as server-sent events. Each client first gets
// a "snapshot" event, then one "change" event per bus event. A client that
// falls behind loses events rather than stalling the bus.
type Hub struct {
	bus       *LocalBus
	snapshots snapshotSource
	heartbeat time.Duration
	metrics   *metrics.Metrics
	log       *slog.Logger
}

// NewHub creates an SSE hub.
func NewHub(log *slog.Logger, bus *LocalBus, snapshots snapshotSource, m *metrics.Metrics) *Hub {
	if m == nil {
		m = metrics.NewNop()
	}
	return &Hub{
		bus:       bus,
		snapshots: snapshots,
		heartbeat: HeartbeatInterval,
		metrics:   m,
		log:       log.With("component", "sse_hub"),
	}
}

// ServeHTTP streams until the client goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	userID, _ := ctxutil.UserIDFromCtx(ctx)

	events, cancel := h.bus.Subscribe()
	defer cancel()

	h.metrics.RealtimeClients.Inc()
	defer h.metrics.RealtimeClients.Dec()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, "snapshot", h.snapshots.Snapshot()); err != nil {
		h.log.WarnContext(ctx, "write snapshot", slog.String("error", err.Error()))
		return
	}
	flusher.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !visibleTo(ev, userID) {
				continue
			}
			if err := writeEvent(w, "change", ev); err != nil {
				h.log.DebugContext(ctx, "write change", slog.String("error", err.Error()))
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, name string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", name, err)
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, raw)
	return err
}

// visibleTo hides other users' notifications. Everything else is shared by
// the whole team.
func visibleTo(ev domain.ChangeEvent, userID uuid.UUID) bool {
	if ev.Table != domain.TableNotifications {
		return true
	}
	if userID == uuid.Nil {
		return false
	}
	var row struct {
		UserID uuid.UUID `json:"userId"`
	}
	if len(ev.Row) > 0 && json.Unmarshal(ev.Row, &row) == nil && row.UserID != uuid.Nil {
		return row.UserID == userID
	}
	return ev.ID == userID
}
