// Package refdata manages the lookup lists the pipeline is configured with:
// stages, industries, deal-source names and the rejection taxonomy.
package refdata

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

type stageRepo interface {
	List(ctx context.Context) ([]domain.PipelineStage, error)
	Create(ctx context.Context, name, color string, description *string, order int) (*domain.PipelineStage, error)
	Update(ctx context.Context, id uuid.UUID, p domain.StageUpdateParams) (*domain.PipelineStage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type industryRepo interface {
	List(ctx context.Context) ([]domain.Industry, error)
	Create(ctx context.Context, name string) (*domain.Industry, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddSub(ctx context.Context, industryID uuid.UUID, name string) (*domain.SubIndustry, error)
	DeleteSub(ctx context.Context, id uuid.UUID) error
}

type dealSourceRepo interface {
	List(ctx context.Context) ([]domain.DealSourceName, error)
	Create(ctx context.Context, name string) (*domain.DealSourceName, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*domain.DealSourceName, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type taxonomyRepo interface {
	ListCategories(ctx context.Context) ([]domain.RejectionCategory, error)
	CreateCategory(ctx context.Context, name string) (*domain.RejectionCategory, error)
	RenameCategory(ctx context.Context, id uuid.UUID, name string) error
	DeleteSubReasonsByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	AddSubReason(ctx context.Context, categoryID uuid.UUID, name string) (*domain.RejectionSubReason, error)
	RenameSubReason(ctx context.Context, id uuid.UUID, name string) error
	DeleteSubReason(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type publisher interface {
	Publish(ctx context.Context, ev domain.ChangeEvent) error
}

// Cache keys, one per list.
const (
	keyStages      = "stages"
	keyIndustries  = "industries"
	keyDealSources = "deal_sources"
	keyTaxonomy    = "rejection_taxonomy"
)

const defaultStageColor = "#6366f1"

// Service provides reference-data management. Lists are served from an
// in-memory cache that every mutation of the same list invalidates.
type Service struct {
	stages      stageRepo
	industries  industryRepo
	dealSources dealSourceRepo
	taxonomy    taxonomyRepo
	tx          txManager
	bus         publisher
	cache       *cache.Cache
	log         *slog.Logger
}

// NewService creates a new refdata service. ttl bounds how stale a list can
// be when another instance changed it.
func NewService(
	log *slog.Logger,
	stages stageRepo,
	industries industryRepo,
	dealSources dealSourceRepo,
	taxonomy taxonomyRepo,
	tx txManager,
	bus publisher,
	ttl time.Duration,
) *Service {
	return &Service{
		stages:      stages,
		industries:  industries,
		dealSources: dealSources,
		taxonomy:    taxonomy,
		tx:          tx,
		bus:         bus,
		cache:       cache.New(ttl, 2*ttl),
		log:         log.With("service", "refdata"),
	}
}

// Invalidate drops cached lists for a change-event table. It lets remote
// changes seen on the bus refresh this instance's cache.
func (s *Service) Invalidate(table string) {
	switch table {
	case domain.TablePipelineStages:
		s.cache.Delete(keyStages)
	case domain.TableIndustries:
		s.cache.Delete(keyIndustries)
	case domain.TableDealSourceNames:
		s.cache.Delete(keyDealSources)
	case domain.TableRejectionTaxonomy:
		s.cache.Delete(keyTaxonomy)
	}
}

// cached returns the value under key, loading and storing it on a miss.
func cached[T any](ctx context.Context, c *cache.Cache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	if v, found := c.Get(key); found {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	v, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.Set(key, v, cache.DefaultExpiration)
	return v, nil
}

// changed invalidates the list of table and publishes the change.
func (s *Service) changed(ctx context.Context, table string, op domain.ChangeOp, id uuid.UUID, row any) {
	s.Invalidate(table)

	ev, err := domain.NewChangeEvent(table, op, id, row)
	if err == nil {
		err = s.bus.Publish(ctx, ev)
	}
	if err != nil {
		s.log.WarnContext(ctx, "publish change event failed",
			slog.String("table", table),
			slog.String("id", id.String()),
			slog.String("error", err.Error()),
		)
	}
}

// namedRow is the change-event payload for rows that only carry a name.
type namedRow struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
