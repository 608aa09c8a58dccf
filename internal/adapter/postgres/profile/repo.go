// Package profile implements the team member profile repository.
package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

const table = "profiles"

var columns = []string{"id", "email", "full_name", "role", "avatar_url", "created_at"}

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a profile by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByEmail returns a profile by case-insensitive email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return r.getOne(ctx, squirrel.Expr("lower(email) = ?", strings.ToLower(email)), uuid.Nil)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, id uuid.UUID) (*domain.Profile, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(where)

	var p domain.Profile
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &p, q); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}
	return &p, nil
}

// GetByIDs returns the profiles with the given ids. Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Profile, error) {
	if len(ids) == 0 {
		return []domain.Profile{}, nil
	}
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": ids})

	profiles := []domain.Profile{}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &profiles, q); err != nil {
		return nil, fmt.Errorf("get profiles by ids: %w", err)
	}
	return profiles, nil
}

// List returns every profile ordered by name, then email.
func (r *Repo) List(ctx context.Context) ([]domain.Profile, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("full_name", "email")

	profiles := []domain.Profile{}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &profiles, q); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a profile with a caller-chosen id (the identity provider subject).
func (r *Repo) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	q := postgres.Builder().Insert(table).
		Columns("id", "email", "full_name", "role", "avatar_url").
		Values(p.ID, p.Email, p.FullName, string(p.Role), p.AvatarURL).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out domain.Profile
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "profile", p.ID)
	}
	return &out, nil
}

// UpdateRole changes a profile's role.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.Profile, error) {
	q := postgres.Builder().Update(table).
		Set("role", string(role)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out domain.Profile
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}
	return &out, nil
}
