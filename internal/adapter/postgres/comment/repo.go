// Package comment implements the append-only comment repository.
package comment

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

const table = "comments"

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends a comment.
func (r *Repo) Create(ctx context.Context, companyID, authorID uuid.UUID, text string) (*domain.Comment, error) {
	q := postgres.Builder().Insert(table).
		Columns("company_id", "author_id", "text").
		Values(companyID, authorID, text).
		Suffix("RETURNING id, company_id, author_id, text, created_at")

	var c domain.Comment
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &c, q); err != nil {
		return nil, postgres.MapError(err, "company", companyID)
	}
	return &c, nil
}

// ListByCompany returns a company's comments in creation order.
func (r *Repo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Comment, error) {
	q := postgres.Builder().Select("id", "company_id", "author_id", "text", "created_at").
		From(table).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("created_at", "id")

	comments := []domain.Comment{}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &comments, q); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
