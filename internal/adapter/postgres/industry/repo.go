// Package industry implements the industry and sub-industry repository.
package industry

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

const (
	industriesTable = "industries"
	subTable        = "sub_industries"
)

// Repo provides industry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new industry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns all industries ordered by name, each with its sub-industries
// ordered by name. SubIndustries is never nil.
func (r *Repo) List(ctx context.Context) ([]domain.Industry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	industries := []domain.Industry{}
	if err := postgres.Select(ctx, q, &industries,
		postgres.Builder().Select("id", "name", "created_at").From(industriesTable).OrderBy("name"),
	); err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}

	subs := []domain.SubIndustry{}
	if err := postgres.Select(ctx, q, &subs,
		postgres.Builder().Select("id", "industry_id", "name").From(subTable).OrderBy("name"),
	); err != nil {
		return nil, fmt.Errorf("list sub-industries: %w", err)
	}

	byIndustry := make(map[uuid.UUID][]domain.SubIndustry, len(industries))
	for _, s := range subs {
		byIndustry[s.IndustryID] = append(byIndustry[s.IndustryID], s)
	}
	for i := range industries {
		industries[i].SubIndustries = byIndustry[industries[i].ID]
		if industries[i].SubIndustries == nil {
			industries[i].SubIndustries = []domain.SubIndustry{}
		}
	}
	return industries, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an industry.
func (r *Repo) Create(ctx context.Context, name string) (*domain.Industry, error) {
	q := postgres.Builder().Insert(industriesTable).
		Columns("name").Values(name).
		Suffix("RETURNING id, name, created_at")

	var ind domain.Industry
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &ind, q); err != nil {
		return nil, postgres.MapError(err, "industry", uuid.Nil)
	}
	ind.SubIndustries = []domain.SubIndustry{}
	return &ind, nil
}

// Rename changes an industry name.
func (r *Repo) Rename(ctx context.Context, id uuid.UUID, name string) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Update(industriesTable).Set("name", name).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "industry", id)
	}
	if n == 0 {
		return fmt.Errorf("industry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes an industry; its sub-industries cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete(industriesTable).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "industry", id)
	}
	if n == 0 {
		return fmt.Errorf("industry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AddSub inserts a sub-industry under an industry.
func (r *Repo) AddSub(ctx context.Context, industryID uuid.UUID, name string) (*domain.SubIndustry, error) {
	q := postgres.Builder().Insert(subTable).
		Columns("industry_id", "name").Values(industryID, name).
		Suffix("RETURNING id, industry_id, name")

	var s domain.SubIndustry
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, q); err != nil {
		return nil, postgres.MapError(err, "industry", industryID)
	}
	return &s, nil
}

// DeleteSub removes a sub-industry.
func (r *Repo) DeleteSub(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete(subTable).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "sub-industry", id)
	}
	if n == 0 {
		return fmt.Errorf("sub-industry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
