// Package dataloader provides per-request loaders that batch the profile
// and stage lookups made while rendering activity logs, comments and
// company lists into single SQL calls.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type profileRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Profile, error)
}

type stageRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.PipelineStage, error)
}

// Repos holds the repositories the loaders read from.
type Repos struct {
	Profile profileRepo
	Stage   stageRepo
}

// Loaders is the per-request loader set. Missing rows load as nil.
type Loaders struct {
	ProfileByID *dataloader.Loader[uuid.UUID, *domain.Profile]
	StageByID   *dataloader.Loader[uuid.UUID, *domain.PipelineStage]
}

// NewLoaders creates a new set of loaders backed by repos.
// Must be called per request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		ProfileByID: newLoader(byIDBatchFn(repos.Profile.GetByIDs, func(p domain.Profile) uuid.UUID { return p.ID })),
		StageByID:   newLoader(byIDBatchFn(repos.Stage.GetByIDs, func(s domain.PipelineStage) uuid.UUID { return s.ID })),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
