package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/service/refdata"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"stages", "industries", "deal_sources", "rejection_taxonomy"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline writes a Catalog into the store. Rows are matched by name,
// ignoring case, so running it again only adds what is missing.
type Pipeline struct {
	log     *slog.Logger
	store   Store
	catalog *Catalog
	cfg     Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, store Store, catalog *Catalog, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log.With("component", "seeder"),
		store:   store,
		catalog: catalog,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run. A failing phase is recorded and the next one still runs.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		for _, ph := range phases {
			if !slices.Contains(allPhases, ph) {
				return fmt.Errorf("unknown phase %q", ph)
			}
		}
		toRun = slices.DeleteFunc(slices.Clone(allPhases), func(ph string) bool {
			return !slices.Contains(phases, ph)
		})
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		var result PhaseResult
		switch phase {
		case "stages":
			result = p.runStages(ctx)
		case "industries":
			result = p.runIndustries(ctx)
		case "deal_sources":
			result = p.runDealSources(ctx)
		case "rejection_taxonomy":
			result = p.runTaxonomy(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
			)
			continue
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Bool("dry_run", p.cfg.DryRun),
			slog.Duration("duration", result.Duration),
		)
	}

	return nil
}

func (p *Pipeline) runStages(ctx context.Context) PhaseResult {
	var res PhaseResult

	existing, err := p.store.ListStages(ctx)
	if err != nil {
		res.Err = fmt.Errorf("list stages: %w", err)
		return res
	}
	have := make(map[string]bool, len(existing))
	for _, s := range existing {
		have[key(s.Name)] = true
	}

	for _, seed := range p.catalog.Stages {
		if have[key(seed.Name)] {
			res.Skipped++
			continue
		}
		have[key(seed.Name)] = true
		if p.cfg.DryRun {
			res.Inserted++
			continue
		}
		in := refdata.AddStageInput{Name: seed.Name, Color: seed.Color}
		if seed.Description != "" {
			in.Description = &seed.Description
		}
		if _, err := p.store.AddStage(ctx, in); err != nil {
			res.Err = fmt.Errorf("add stage %q: %w", seed.Name, err)
			return res
		}
		res.Inserted++
	}
	return res
}

func (p *Pipeline) runIndustries(ctx context.Context) PhaseResult {
	var res PhaseResult

	existing, err := p.store.ListIndustries(ctx)
	if err != nil {
		res.Err = fmt.Errorf("list industries: %w", err)
		return res
	}
	groups := make(map[string]*group, len(existing))
	for _, ind := range existing {
		g := &group{id: ind.ID, children: make(map[string]bool)}
		for _, sub := range ind.SubIndustries {
			g.children[key(sub.Name)] = true
		}
		groups[key(ind.Name)] = g
	}

	res.Err = p.seedGroups(ctx, p.catalog.Industries, groups, &res, groupWriter{
		kind: "industry",
		addParent: func(ctx context.Context, name string) (uuid.UUID, error) {
			ind, err := p.store.AddIndustry(ctx, name)
			if err != nil {
				return uuid.Nil, err
			}
			return ind.ID, nil
		},
		addChild: func(ctx context.Context, parent uuid.UUID, name string) error {
			_, err := p.store.AddSubIndustry(ctx, parent, name)
			return err
		},
	})
	return res
}

func (p *Pipeline) runDealSources(ctx context.Context) PhaseResult {
	var res PhaseResult

	existing, err := p.store.ListDealSources(ctx)
	if err != nil {
		res.Err = fmt.Errorf("list deal sources: %w", err)
		return res
	}
	have := make(map[string]bool, len(existing))
	for _, s := range existing {
		have[key(s.Name)] = true
	}

	for _, name := range p.catalog.DealSources {
		if have[key(name)] {
			res.Skipped++
			continue
		}
		have[key(name)] = true
		if !p.cfg.DryRun {
			if _, err := p.store.AddDealSource(ctx, name); err != nil {
				res.Err = fmt.Errorf("add deal source %q: %w", name, err)
				return res
			}
		}
		res.Inserted++
	}
	return res
}

func (p *Pipeline) runTaxonomy(ctx context.Context) PhaseResult {
	var res PhaseResult

	existing, err := p.store.ListRejectionCategories(ctx)
	if err != nil {
		res.Err = fmt.Errorf("list rejection categories: %w", err)
		return res
	}
	groups := make(map[string]*group, len(existing))
	for _, cat := range existing {
		g := &group{id: cat.ID, children: make(map[string]bool)}
		for _, sub := range cat.SubReasons {
			g.children[key(sub.Name)] = true
		}
		groups[key(cat.Name)] = g
	}

	res.Err = p.seedGroups(ctx, p.catalog.RejectionCategories, groups, &res, groupWriter{
		kind: "rejection category",
		addParent: func(ctx context.Context, name string) (uuid.UUID, error) {
			cat, err := p.store.AddRejectionCategory(ctx, name)
			if err != nil {
				return uuid.Nil, err
			}
			return cat.ID, nil
		},
		addChild: func(ctx context.Context, parent uuid.UUID, name string) error {
			_, err := p.store.AddSubReason(ctx, parent, name)
			return err
		},
	})
	return res
}

// group is an existing parent row and the keys of its children.
type group struct {
	id       uuid.UUID
	children map[string]bool
}

type groupWriter struct {
	kind      string
	addParent func(ctx context.Context, name string) (uuid.UUID, error)
	addChild  func(ctx context.Context, parent uuid.UUID, name string) error
}

// seedGroups adds missing parents and missing children of every parent.
// Parents and children both count towards res.
func (p *Pipeline) seedGroups(ctx context.Context, seeds []GroupSeed, groups map[string]*group, res *PhaseResult, w groupWriter) error {
	for _, seed := range seeds {
		g, ok := groups[key(seed.Name)]
		if ok {
			res.Skipped++
		} else {
			g = &group{children: make(map[string]bool)}
			if !p.cfg.DryRun {
				id, err := w.addParent(ctx, seed.Name)
				if err != nil {
					return fmt.Errorf("add %s %q: %w", w.kind, seed.Name, err)
				}
				g.id = id
			}
			groups[key(seed.Name)] = g
			res.Inserted++
		}

		for _, child := range seed.Children {
			if g.children[key(child)] {
				res.Skipped++
				continue
			}
			g.children[key(child)] = true
			if !p.cfg.DryRun {
				if err := w.addChild(ctx, g.id, child); err != nil {
					return fmt.Errorf("add %q under %s %q: %w", child, w.kind, seed.Name, err)
				}
			}
			res.Inserted++
		}
	}
	return nil
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
