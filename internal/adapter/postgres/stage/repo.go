// Package stage implements the pipeline stage repository using PostgreSQL.
package stage

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

const table = "pipeline_stages"

var columns = []string{"id", "name", `stage_order AS "order"`, "color", "description", "created_at"}

// Repo provides stage persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new stage repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns all stages ordered by their pipeline order.
func (r *Repo) List(ctx context.Context) ([]domain.PipelineStage, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("stage_order")

	stages := []domain.PipelineStage{}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &stages, q); err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	return stages, nil
}

// GetByID returns a stage by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PipelineStage, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	var s domain.PipelineStage
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, q); err != nil {
		return nil, postgres.MapError(err, "stage", id)
	}
	return &s, nil
}

// GetByIDs returns the stages with the given ids in no particular order.
// Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.PipelineStage, error) {
	if len(ids) == 0 {
		return []domain.PipelineStage{}, nil
	}
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": ids})

	stages := []domain.PipelineStage{}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &stages, q); err != nil {
		return nil, fmt.Errorf("get stages by ids: %w", err)
	}
	return stages, nil
}

// Create inserts a stage at the given order.
func (r *Repo) Create(ctx context.Context, name, color string, description *string, order int) (*domain.PipelineStage, error) {
	q := postgres.Builder().Insert(table).
		Columns("name", "color", "description", "stage_order").
		Values(name, color, description, order).
		Suffix(`RETURNING id, name, stage_order AS "order", color, description, created_at`)

	var s domain.PipelineStage
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, q); err != nil {
		return nil, postgres.MapError(err, "stage", uuid.Nil)
	}
	return &s, nil
}

// Update changes name, color and description. Order is immutable.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.StageUpdateParams) (*domain.PipelineStage, error) {
	set := map[string]any{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Color != nil {
		set["color"] = *p.Color
	}
	if p.Description != nil {
		if *p.Description == "" {
			set["description"] = nil
		} else {
			set["description"] = *p.Description
		}
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	q := postgres.Builder().Update(table).SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix(`RETURNING id, name, stage_order AS "order", color, description, created_at`)

	var s domain.PipelineStage
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, q); err != nil {
		return nil, postgres.MapError(err, "stage", id)
	}
	return &s, nil
}

// Delete removes a stage. Companies in it keep a null stage.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "stage", id)
	}
	if n == 0 {
		return fmt.Errorf("stage %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
