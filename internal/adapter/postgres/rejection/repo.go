// Package rejection implements the rejection taxonomy and rejection record
// repository using PostgreSQL.
package rejection

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

const (
	categoriesTable = "rejection_reason_categories"
	subReasonsTable = "rejection_sub_reasons"
	recordsTable    = "rejection_records"
)

var recordColumns = []string{
	"id", "company_id", "reasons", "rejection_stage_id", "communication_method",
	"email_recipient", "email_draft", "email_sent", "created_at",
}

// Repo provides rejection persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new rejection repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Taxonomy
// ---------------------------------------------------------------------------

// ListCategories returns all categories ordered by name with their
// sub-reasons ordered by name.
func (r *Repo) ListCategories(ctx context.Context) ([]domain.RejectionCategory, error) {
	return r.listCategories(ctx, nil)
}

// GetCategoriesByIDs returns the categories with the given ids ordered by name.
// Unknown ids are skipped.
func (r *Repo) GetCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.RejectionCategory, error) {
	if len(ids) == 0 {
		return []domain.RejectionCategory{}, nil
	}
	return r.listCategories(ctx, ids)
}

func (r *Repo) listCategories(ctx context.Context, ids []uuid.UUID) ([]domain.RejectionCategory, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	catQ := postgres.Builder().Select("id", "name", "created_at").From(categoriesTable).OrderBy("name")
	subQ := postgres.Builder().Select("id", "category_id", "name").From(subReasonsTable).OrderBy("name")
	if ids != nil {
		catQ = catQ.Where(squirrel.Eq{"id": ids})
		subQ = subQ.Where(squirrel.Eq{"category_id": ids})
	}

	categories := []domain.RejectionCategory{}
	if err := postgres.Select(ctx, q, &categories, catQ); err != nil {
		return nil, fmt.Errorf("list rejection categories: %w", err)
	}
	subs := []domain.RejectionSubReason{}
	if err := postgres.Select(ctx, q, &subs, subQ); err != nil {
		return nil, fmt.Errorf("list rejection sub-reasons: %w", err)
	}

	byCategory := make(map[uuid.UUID][]domain.RejectionSubReason, len(categories))
	for _, s := range subs {
		byCategory[s.CategoryID] = append(byCategory[s.CategoryID], s)
	}
	for i := range categories {
		categories[i].SubReasons = byCategory[categories[i].ID]
		if categories[i].SubReasons == nil {
			categories[i].SubReasons = []domain.RejectionSubReason{}
		}
	}
	return categories, nil
}

// CreateCategory inserts a category.
func (r *Repo) CreateCategory(ctx context.Context, name string) (*domain.RejectionCategory, error) {
	q := postgres.Builder().Insert(categoriesTable).
		Columns("name").Values(name).
		Suffix("RETURNING id, name, created_at")

	var c domain.RejectionCategory
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &c, q); err != nil {
		return nil, postgres.MapError(err, "rejection category", uuid.Nil)
	}
	c.SubReasons = []domain.RejectionSubReason{}
	return &c, nil
}

// RenameCategory changes a category name.
func (r *Repo) RenameCategory(ctx context.Context, id uuid.UUID, name string) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Update(categoriesTable).Set("name", name).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "rejection category", id)
	}
	if n == 0 {
		return fmt.Errorf("rejection category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteSubReasonsByCategory removes every sub-reason of a category and
// returns how many were deleted.
func (r *Repo) DeleteSubReasonsByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete(subReasonsTable).Where(squirrel.Eq{"category_id": categoryID}))
	if err != nil {
		return 0, postgres.MapError(err, "rejection category", categoryID)
	}
	return n, nil
}

// DeleteCategory removes a category. Its sub-reasons must be gone already.
func (r *Repo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete(categoriesTable).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "rejection category", id)
	}
	if n == 0 {
		return fmt.Errorf("rejection category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AddSubReason inserts a sub-reason under a category.
func (r *Repo) AddSubReason(ctx context.Context, categoryID uuid.UUID, name string) (*domain.RejectionSubReason, error) {
	q := postgres.Builder().Insert(subReasonsTable).
		Columns("category_id", "name").Values(categoryID, name).
		Suffix("RETURNING id, category_id, name")

	var s domain.RejectionSubReason
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, q); err != nil {
		return nil, postgres.MapError(err, "rejection category", categoryID)
	}
	return &s, nil
}

// RenameSubReason changes a sub-reason name.
func (r *Repo) RenameSubReason(ctx context.Context, id uuid.UUID, name string) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Update(subReasonsTable).Set("name", name).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "rejection sub-reason", id)
	}
	if n == 0 {
		return fmt.Errorf("rejection sub-reason %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteSubReason removes a single sub-reason.
func (r *Repo) DeleteSubReason(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete(subReasonsTable).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "rejection sub-reason", id)
	}
	if n == 0 {
		return fmt.Errorf("rejection sub-reason %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Records
// ---------------------------------------------------------------------------

// CreateRecord stores an immutable rejection record.
func (r *Repo) CreateRecord(ctx context.Context, rec *domain.RejectionRecord) (*domain.RejectionRecord, error) {
	reasons := rec.Reasons
	if reasons == nil {
		reasons = []domain.RejectionReason{}
	}
	raw, err := json.Marshal(reasons)
	if err != nil {
		return nil, fmt.Errorf("marshal rejection reasons: %w", err)
	}

	q := postgres.Builder().Insert(recordsTable).
		Columns("company_id", "reasons", "rejection_stage_id", "communication_method",
			"email_recipient", "email_draft", "email_sent").
		Values(rec.CompanyID, raw, rec.RejectionStageID, string(rec.CommunicationMethod),
			rec.EmailRecipient, rec.EmailDraft, rec.EmailSent).
		Suffix("RETURNING " + strings.Join(recordColumns, ", "))

	var out domain.RejectionRecord
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "company", rec.CompanyID)
	}
	return &out, nil
}

// GetLatestByCompany returns the most recent rejection record of a company.
func (r *Repo) GetLatestByCompany(ctx context.Context, companyID uuid.UUID) (*domain.RejectionRecord, error) {
	q := postgres.Builder().Select(recordColumns...).From(recordsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("created_at DESC").
		Limit(1)

	var out domain.RejectionRecord
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "rejection record for company", companyID)
	}
	return &out, nil
}
