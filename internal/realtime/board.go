package realtime

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

// Board is the in-memory view of active companies and stages kept current
// by change events. Local mutations and events relayed from other instances
// take the same path through Apply; the last event received wins. A company
// that turns terminal leaves the board.
type Board struct {
	mu        sync.RWMutex
	companies map[uuid.UUID]domain.Company
	stages    map[uuid.UUID]domain.PipelineStage
}

// NewBoard creates a board seeded with the given rows.
func NewBoard(companies []domain.Company, stages []domain.PipelineStage) *Board {
	b := &Board{
		companies: make(map[uuid.UUID]domain.Company, len(companies)),
		stages:    make(map[uuid.UUID]domain.PipelineStage, len(stages)),
	}
	b.Reset(companies, stages)
	return b
}

// Reset replaces the board contents.
func (b *Board) Reset(companies []domain.Company, stages []domain.PipelineStage) {
	b.mu.Lock()
	defer b.mu.Unlock()

	clear(b.companies)
	clear(b.stages)
	for _, c := range companies {
		if c.IsActive() {
			b.companies[c.ID] = c
		}
	}
	for _, s := range stages {
		b.stages[s.ID] = s
	}
}

// Apply folds one event into the board. Events for other tables are
// ignored. Deleting a stage clears it from companies, the way the foreign
// key does.
func (b *Board) Apply(ev domain.ChangeEvent) error {
	switch ev.Table {
	case domain.TableCompanies:
		return b.applyCompany(ev)
	case domain.TablePipelineStages:
		return b.applyStage(ev)
	default:
		return nil
	}
}

func (b *Board) applyCompany(ev domain.ChangeEvent) error {
	if ev.Op == domain.OpDelete {
		b.mu.Lock()
		delete(b.companies, ev.ID)
		b.mu.Unlock()
		return nil
	}

	var c domain.Company
	if err := ev.Decode(&c); err != nil {
		return fmt.Errorf("apply company event: %w", err)
	}
	if c.ID == uuid.Nil {
		c.ID = ev.ID
	}

	b.mu.Lock()
	if c.IsActive() {
		b.companies[c.ID] = c
	} else {
		delete(b.companies, c.ID)
	}
	b.mu.Unlock()
	return nil
}

func (b *Board) applyStage(ev domain.ChangeEvent) error {
	if ev.Op == domain.OpDelete {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.stages, ev.ID)
		for id, c := range b.companies {
			if c.PipelineStageID != nil && *c.PipelineStageID == ev.ID {
				c.PipelineStageID = nil
				b.companies[id] = c
			}
		}
		return nil
	}

	var s domain.PipelineStage
	if err := ev.Decode(&s); err != nil {
		return fmt.Errorf("apply stage event: %w", err)
	}
	if s.ID == uuid.Nil {
		s.ID = ev.ID
	}

	b.mu.Lock()
	b.stages[s.ID] = s
	b.mu.Unlock()
	return nil
}

// Snapshot is a point-in-time copy of the board.
type Snapshot struct {
	Stages    []domain.PipelineStage `json:"stages"`
	Companies []domain.Company       `json:"companies"`
}

// Snapshot copies the board. Stages come in stage order, companies newest
// first.
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	snap := Snapshot{
		Stages:    make([]domain.PipelineStage, 0, len(b.stages)),
		Companies: make([]domain.Company, 0, len(b.companies)),
	}
	for _, s := range b.stages {
		snap.Stages = append(snap.Stages, s)
	}
	for _, c := range b.companies {
		snap.Companies = append(snap.Companies, c)
	}
	b.mu.RUnlock()

	sort.Slice(snap.Stages, func(i, j int) bool { return snap.Stages[i].Order < snap.Stages[j].Order })
	sort.Slice(snap.Companies, func(i, j int) bool {
		a, c := snap.Companies[i], snap.Companies[j]
		if !a.CreatedAt.Equal(c.CreatedAt) {
			return a.CreatedAt.After(c.CreatedAt)
		}
		return a.ID.String() < c.ID.String()
	})
	return snap
}

// Company returns one company from the board.
func (b *Board) Company(id uuid.UUID) (domain.Company, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	c, ok := b.companies[id]
	return c, ok
}
