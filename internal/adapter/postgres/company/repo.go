// Package company implements the Company repository using PostgreSQL.
// Rows are scanned with pgxscan; statements are built with squirrel.
package company

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

const table = "companies"

var columns = []string{
	"id", "company_name", "founder_name", "founder_email", "analyst_id",
	"company_round", "pipeline_stage_id", "priority_level", "deal_source_type",
	"deal_source_name_id", "industry_id", "sub_industry", "share_type",
	"total_fund_raise", "valuation", "google_drive_link", "custom_tags",
	"terminal_status", "sla_deadline", "is_overdue", "linked_previous_entry_id",
	"quick_summary", "deck_analysis", "kpi_data", "call_transcript",
	"filter_brief", "ic_memo", "created_at", "updated_at",
}

// Repo provides company persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new company repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a company by primary key, terminal or not.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	var c domain.Company
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &c, q); err != nil {
		return nil, postgres.MapError(err, "company", id)
	}
	return &c, nil
}

// GetForUpdate returns a company and locks its row until the surrounding
// transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE")

	tx, err := postgres.TxQuerier(ctx)
	if err != nil {
		return nil, fmt.Errorf("lock company %s: %w", id, err)
	}

	var c domain.Company
	if err := postgres.Get(ctx, tx, &c, q); err != nil {
		return nil, postgres.MapError(err, "company", id)
	}
	return &c, nil
}

// List returns companies matching the filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.CompanyFilter) ([]domain.Company, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("created_at DESC", "id")

	switch f.View {
	case domain.ViewTerminal:
		q = q.Where(squirrel.NotEq{"terminal_status": nil})
	case domain.ViewAll:
	default:
		q = q.Where(squirrel.Eq{"terminal_status": nil})
	}
	if f.StageID != nil {
		q = q.Where(squirrel.Eq{"pipeline_stage_id": *f.StageID})
	}
	if f.AnalystID != nil {
		q = q.Where(squirrel.Eq{"analyst_id": *f.AnalystID})
	}
	if f.TerminalStatus != nil {
		q = q.Where(squirrel.Eq{"terminal_status": string(*f.TerminalStatus)})
	}

	companies := []domain.Company{}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &companies, q); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a company and returns the stored row.
func (r *Repo) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	tags := c.CustomTags
	if tags == nil {
		tags = []string{}
	}

	q := postgres.Builder().Insert(table).
		SetMap(map[string]any{
			"company_name":             c.CompanyName,
			"founder_name":             c.FounderName,
			"founder_email":            c.FounderEmail,
			"analyst_id":               c.AnalystID,
			"company_round":            string(c.CompanyRound),
			"pipeline_stage_id":        c.PipelineStageID,
			"priority_level":           string(c.PriorityLevel),
			"deal_source_type":         string(c.DealSourceType),
			"deal_source_name_id":      c.DealSourceNameID,
			"industry_id":              c.IndustryID,
			"sub_industry":             c.SubIndustry,
			"share_type":               string(c.ShareType),
			"total_fund_raise":         c.TotalFundRaise,
			"valuation":                c.Valuation,
			"google_drive_link":        c.GoogleDriveLink,
			"custom_tags":              tags,
			"sla_deadline":             c.SLADeadline,
			"linked_previous_entry_id": c.LinkedPreviousEntryID,
			"quick_summary":            c.QuickSummary,
			"deck_analysis":            blob(c.DeckAnalysis),
			"kpi_data":                 blob(c.KPIData),
			"call_transcript":          blob(c.CallTranscript),
			"filter_brief":             blob(c.FilterBrief),
			"ic_memo":                  blob(c.ICMemo),
		}).
		Suffix("RETURNING " + returning())

	var out domain.Company
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "company", uuid.Nil)
	}
	return &out, nil
}

// Update writes only the fields set in p and returns the stored row.
// Stage and analyst are never touched here.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.CompanyUpdateParams) (*domain.Company, error) {
	set := updateMap(p)
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	q := postgres.Builder().Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + returning())

	var out domain.Company
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "company", id)
	}
	return &out, nil
}

// SetStage moves a company to a stage.
func (r *Repo) SetStage(ctx context.Context, id, stageID uuid.UUID) error {
	return r.setColumn(ctx, id, "pipeline_stage_id", stageID)
}

// SetAnalyst assigns or (with nil) unassigns an analyst.
func (r *Repo) SetAnalyst(ctx context.Context, id uuid.UUID, analystID *uuid.UUID) error {
	return r.setColumn(ctx, id, "analyst_id", analystID)
}

// SetTerminalStatus moves a company out of the active pipeline.
func (r *Repo) SetTerminalStatus(ctx context.Context, id uuid.UUID, status domain.TerminalStatus) error {
	return r.setColumn(ctx, id, "terminal_status", string(status))
}

func (r *Repo) setColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	q := postgres.Builder().Update(table).Set(column, value).Where(squirrel.Eq{"id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "company", id)
	}
	if n == 0 {
		return fmt.Errorf("company %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete hard-deletes a company. Dependent rows cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "company", id)
	}
	if n == 0 {
		return fmt.Errorf("company %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MarkOverdue flags every active, not-yet-flagged company whose SLA deadline
// has passed or whose age exceeds overdueDays. It returns the newly flagged rows.
func (r *Repo) MarkOverdue(ctx context.Context, now time.Time, overdueDays int) ([]domain.Company, error) {
	cutoff := now.Add(-time.Duration(overdueDays+1) * 24 * time.Hour)

	q := postgres.Builder().Update(table).
		Set("is_overdue", true).
		Where(squirrel.Eq{"terminal_status": nil, "is_overdue": false}).
		Where(squirrel.Or{
			squirrel.Lt{"sla_deadline": now},
			squirrel.LtOrEq{"created_at": cutoff},
		}).
		Suffix("RETURNING " + returning())

	companies := []domain.Company{}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &companies, q); err != nil {
		return nil, fmt.Errorf("mark overdue: %w", err)
	}
	return companies, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func returning() string {
	return strings.Join(columns, ", ")
}

// blob maps an empty or JSON-null annotation to SQL NULL.
func blob(raw json.RawMessage) any {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return []byte(raw)
}

func nullText(s *string) any {
	if *s == "" {
		return nil
	}
	return *s
}

func nullID(id *uuid.UUID) any {
	if *id == uuid.Nil {
		return nil
	}
	return *id
}

func updateMap(p domain.CompanyUpdateParams) map[string]any {
	set := map[string]any{}

	if p.CompanyName != nil {
		set["company_name"] = *p.CompanyName
	}
	if p.FounderName != nil {
		set["founder_name"] = *p.FounderName
	}
	if p.FounderEmail != nil {
		set["founder_email"] = *p.FounderEmail
	}
	if p.CompanyRound != nil {
		set["company_round"] = string(*p.CompanyRound)
	}
	if p.PriorityLevel != nil {
		set["priority_level"] = string(*p.PriorityLevel)
	}
	if p.DealSourceType != nil {
		set["deal_source_type"] = string(*p.DealSourceType)
	}
	if p.DealSourceNameID != nil {
		set["deal_source_name_id"] = nullID(p.DealSourceNameID)
	}
	if p.IndustryID != nil {
		set["industry_id"] = nullID(p.IndustryID)
	}
	if p.SubIndustry != nil {
		set["sub_industry"] = nullText(p.SubIndustry)
	}
	if p.ShareType != nil {
		set["share_type"] = string(*p.ShareType)
	}
	if p.TotalFundRaise != nil {
		set["total_fund_raise"] = *p.TotalFundRaise
	} else if p.ClearTotalFundRaise {
		set["total_fund_raise"] = nil
	}
	if p.Valuation != nil {
		set["valuation"] = *p.Valuation
	} else if p.ClearValuation {
		set["valuation"] = nil
	}
	if p.GoogleDriveLink != nil {
		set["google_drive_link"] = nullText(p.GoogleDriveLink)
	}
	if p.CustomTags != nil {
		tags := *p.CustomTags
		if tags == nil {
			tags = []string{}
		}
		set["custom_tags"] = tags
	}
	if p.TerminalStatus != nil {
		set["terminal_status"] = string(*p.TerminalStatus)
	}
	if p.SLADeadline != nil {
		set["sla_deadline"] = *p.SLADeadline
	} else if p.ClearSLADeadline {
		set["sla_deadline"] = nil
	}
	if p.IsOverdue != nil {
		set["is_overdue"] = *p.IsOverdue
	}
	if p.LinkedPreviousEntryID != nil {
		set["linked_previous_entry_id"] = nullID(p.LinkedPreviousEntryID)
	}
	if p.QuickSummary != nil {
		set["quick_summary"] = nullText(p.QuickSummary)
	}
	for col, raw := range map[string]json.RawMessage{
		"deck_analysis":   p.DeckAnalysis,
		"kpi_data":        p.KPIData,
		"call_transcript": p.CallTranscript,
		"filter_brief":    p.FilterBrief,
		"ic_memo":         p.ICMemo,
	} {
		if raw != nil {
			set[col] = blob(raw)
		}
	}

	return set
}
