// Package activity implements the append-only activity log repository.
package activity

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

const table = "activity_logs"

var columns = []string{"id", "company_id", "user_id", "action", "details", "from_stage_id", "to_stage_id", "created_at"}

// Repo provides activity log persistence backed by PostgreSQL.
// There is no update or delete path.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends one entry and returns it with id and timestamp.
func (r *Repo) Create(ctx context.Context, e *domain.ActivityLog) (*domain.ActivityLog, error) {
	q := postgres.Builder().Insert(table).
		Columns("company_id", "user_id", "action", "details", "from_stage_id", "to_stage_id").
		Values(e.CompanyID, e.UserID, string(e.Action), e.Details, e.FromStageID, e.ToStageID).
		Suffix("RETURNING id, company_id, user_id, action, details, from_stage_id, to_stage_id, created_at")

	var out domain.ActivityLog
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "company", e.CompanyID)
	}
	return &out, nil
}

// ListByCompany returns a company's activity, newest first.
func (r *Repo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.ActivityLog, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("created_at DESC", "id")

	logs := []domain.ActivityLog{}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &logs, q); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return logs, nil
}
