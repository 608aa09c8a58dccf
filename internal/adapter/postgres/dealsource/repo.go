// Package dealsource implements the deal-source name repository.
package dealsource

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

const table = "deal_source_names"

// Repo provides deal-source persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new deal-source repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns all deal-source names ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.DealSourceName, error) {
	q := postgres.Builder().Select("id", "name", "created_at").From(table).OrderBy("name")

	sources := []domain.DealSourceName{}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &sources, q); err != nil {
		return nil, fmt.Errorf("list deal sources: %w", err)
	}
	return sources, nil
}

// Create inserts a deal-source name.
func (r *Repo) Create(ctx context.Context, name string) (*domain.DealSourceName, error) {
	q := postgres.Builder().Insert(table).
		Columns("name").Values(name).
		Suffix("RETURNING id, name, created_at")

	var s domain.DealSourceName
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, q); err != nil {
		return nil, postgres.MapError(err, "deal source", uuid.Nil)
	}
	return &s, nil
}

// Rename changes a deal-source name.
func (r *Repo) Rename(ctx context.Context, id uuid.UUID, name string) (*domain.DealSourceName, error) {
	q := postgres.Builder().Update(table).Set("name", name).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, created_at")

	var s domain.DealSourceName
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, q); err != nil {
		return nil, postgres.MapError(err, "deal source", id)
	}
	return &s, nil
}

// Delete removes a deal-source name. Companies referencing it keep a null source.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "deal source", id)
	}
	if n == 0 {
		return fmt.Errorf("deal source %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
