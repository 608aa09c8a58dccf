// Package realtime carries row-change events from the services that commit
// them to every connected client. A Bus fans events out; the Projector keeps
// an in-memory Board current from them; the Hub streams them over SSE.
package realtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/internal/metrics"
)

// DefaultBuffer is the per-subscriber queue length.
const DefaultBuffer = 64

// Bus publishes change events and hands them to subscribers.
type Bus interface {
	Publish(ctx context.Context, ev domain.ChangeEvent) error
	Subscribe() (<-chan domain.ChangeEvent, func())
}

// LocalBus is an in-process fan-out. Sends never block: an event that does
// not fit a subscriber's queue is dropped for that subscriber only.
type LocalBus struct {
	mu     sync.RWMutex
	subs   map[uint64]chan domain.ChangeEvent
	nextID uint64
	buffer int

	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewLocalBus creates a bus whose subscribers queue up to buffer events.
func NewLocalBus(log *slog.Logger, m *metrics.Metrics, buffer int) *LocalBus {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	if m == nil {
		m = metrics.NewNop()
	}
	return &LocalBus{
		subs:    make(map[uint64]chan domain.ChangeEvent),
		buffer:  buffer,
		metrics: m,
		log:     log.With("component", "local_bus"),
	}
}

// Publish delivers ev to every current subscriber.
func (b *LocalBus) Publish(_ context.Context, ev domain.ChangeEvent) error {
	if !ev.Op.IsValid() {
		return fmt.Errorf("publish %s: invalid op %q", ev.Table, ev.Op)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	b.metrics.RealtimePublished.WithLabelValues(ev.Table).Inc()
	for id, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			b.metrics.RealtimeDropped.Inc()
			b.log.Warn("dropping change event; subscriber queue full",
				slog.Uint64("subscriber", id),
				slog.String("table", ev.Table),
			)
		}
	}
	return nil
}

// Subscribe registers a new subscriber. The returned cancel func removes it
// and closes the channel; calling it more than once is safe.
func (b *LocalBus) Subscribe() (<-chan domain.ChangeEvent, func()) {
	return b.subscribe(b.buffer)
}

// SubscribeBuffered is Subscribe with an explicit queue length, for
// consumers such as the projector that must not lose events to bursts.
func (b *LocalBus) SubscribeBuffered(buffer int) (<-chan domain.ChangeEvent, func()) {
	if buffer <= 0 {
		buffer = b.buffer
	}
	return b.subscribe(buffer)
}

func (b *LocalBus) subscribe(buffer int) (<-chan domain.ChangeEvent, func()) {
	ch := make(chan domain.ChangeEvent, buffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Subscribers returns the current subscriber count.
func (b *LocalBus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
