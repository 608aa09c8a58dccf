package realtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

type companyLister interface {
	List(ctx context.Context, f domain.CompanyFilter) ([]domain.Company, error)
}

type stageLister interface {
	List(ctx context.Context) ([]domain.PipelineStage, error)
}

// projectorBuffer is large enough to absorb a sweep over the whole pipeline.
const projectorBuffer = 4096

// Projector loads the Board from the store and keeps it current from the
// bus.
type Projector struct {
	bus       *LocalBus
	companies companyLister
	stages    stageLister
	board     *Board
	ready     atomic.Bool
	log       *slog.Logger
}

// NewProjector creates a projector with an empty board.
func NewProjector(log *slog.Logger, bus *LocalBus, companies companyLister, stages stageLister) *Projector {
	return &Projector{
		bus:       bus,
		companies: companies,
		stages:    stages,
		board:     NewBoard(nil, nil),
		log:       log.With("component", "projector"),
	}
}

// Run subscribes, loads the initial board and applies events until ctx is
// canceled. Subscribing before loading means no event committed during the
// load is missed; replaying one the load already saw is harmless.
func (p *Projector) Run(ctx context.Context) error {
	events, cancel := p.bus.SubscribeBuffered(projectorBuffer)
	defer cancel()

	if err := p.Load(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := p.board.Apply(ev); err != nil {
				p.log.WarnContext(ctx, "apply change event",
					slog.String("table", ev.Table),
					slog.String("id", ev.ID.String()),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

// Load replaces the board with the store's current state.
func (p *Projector) Load(ctx context.Context) error {
	companies, err := p.companies.List(ctx, domain.CompanyFilter{View: domain.ViewActive})
	if err != nil {
		return fmt.Errorf("load companies: %w", err)
	}
	stages, err := p.stages.List(ctx)
	if err != nil {
		return fmt.Errorf("load stages: %w", err)
	}

	p.board.Reset(companies, stages)
	p.ready.Store(true)
	p.log.InfoContext(ctx, "board loaded",
		slog.Int("companies", len(companies)),
		slog.Int("stages", len(stages)),
	)
	return nil
}

// Ready reports whether the initial load has completed.
func (p *Projector) Ready() bool {
	return p.ready.Load()
}

// Snapshot returns the current board.
func (p *Projector) Snapshot() Snapshot {
	return p.board.Snapshot()
}
