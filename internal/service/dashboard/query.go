package dashboard

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

// SearchScope decides which text fields a free-text search looks at.
type SearchScope string

const (
	// ScopeTable matches company name, founder name and industry name.
	ScopeTable SearchScope = "table"
	// ScopeBoard also matches founder email, sub-industry and custom tags.
	ScopeBoard SearchScope = "board"
	// ScopeAdmin matches company name, founder name and founder email, and
	// includes terminal companies.
	ScopeAdmin SearchScope = "admin"
)

func (s SearchScope) IsValid() bool {
	return s == ScopeTable || s == ScopeBoard || s == ScopeAdmin
}

// SortField names a sortable table column.
type SortField string

const (
	SortCompanyName SortField = "companyName"
	SortFounderName SortField = "founderName"
	SortPriority    SortField = "priority"
	SortRound       SortField = "round"
	SortDays        SortField = "days"
	SortRaise       SortField = "raise"
)

func (f SortField) IsValid() bool {
	switch f {
	case SortCompanyName, SortFounderName, SortPriority, SortRound, SortDays, SortRaise:
		return true
	}
	return false
}

// Query filters and orders the table and board views. Empty slices mean
// "no filter"; a non-empty slice keeps companies matching any element.
type Query struct {
	Search      string
	Scope       SearchScope
	Priorities  []domain.Priority
	IndustryIDs []uuid.UUID
	AnalystIDs  []uuid.UUID
	Rounds      []domain.CompanyRound
	StageIDs    []uuid.UUID
	Sort        SortField
	Desc        bool
}

// Validate checks enum values and fills defaults.
func (q *Query) Validate() error {
	var errs []domain.FieldError

	if q.Scope == "" {
		q.Scope = ScopeTable
	}
	if !q.Scope.IsValid() {
		errs = append(errs, domain.FieldError{Field: "scope", Message: "must be table, board or admin"})
	}
	if q.Sort == "" {
		q.Sort = SortCompanyName
	}
	if !q.Sort.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "unknown sort field"})
	}
	for i, p := range q.Priorities {
		if !p.IsValid() {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("priority[%d]", i), Message: "invalid value"})
		}
	}
	for i, r := range q.Rounds {
		if !r.IsValid() {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("round[%d]", i), Message: "invalid value"})
		}
	}
	q.Search = strings.TrimSpace(q.Search)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// matcher applies a validated Query to single companies.
type matcher struct {
	q          Query
	needle     string
	industries map[uuid.UUID]string
	priorities map[domain.Priority]bool
	rounds     map[domain.CompanyRound]bool
	industry   map[uuid.UUID]bool
	analysts   map[uuid.UUID]bool
	stages     map[uuid.UUID]bool
}

func newMatcher(q Query, industries []domain.Industry) *matcher {
	m := &matcher{
		q:          q,
		needle:     strings.ToLower(q.Search),
		industries: make(map[uuid.UUID]string, len(industries)),
		priorities: setOf(q.Priorities),
		rounds:     setOf(q.Rounds),
		industry:   setOf(q.IndustryIDs),
		analysts:   setOf(q.AnalystIDs),
		stages:     setOf(q.StageIDs),
	}
	for _, ind := range industries {
		m.industries[ind.ID] = ind.Name
	}
	return m
}

func setOf[T comparable](items []T) map[T]bool {
	if len(items) == 0 {
		return nil
	}
	out := make(map[T]bool, len(items))
	for _, it := range items {
		out[it] = true
	}
	return out
}

func (m *matcher) match(c *domain.Company) bool {
	if m.q.Scope != ScopeAdmin && !c.IsActive() {
		return false
	}
	if m.needle != "" && !m.matchText(c) {
		return false
	}
	if m.priorities != nil && !m.priorities[c.PriorityLevel] {
		return false
	}
	if m.rounds != nil && !m.rounds[c.CompanyRound] {
		return false
	}
	if m.industry != nil && (c.IndustryID == nil || !m.industry[*c.IndustryID]) {
		return false
	}
	if m.analysts != nil && (c.AnalystID == nil || !m.analysts[*c.AnalystID]) {
		return false
	}
	if m.stages != nil && (c.PipelineStageID == nil || !m.stages[*c.PipelineStageID]) {
		return false
	}
	return true
}

func (m *matcher) matchText(c *domain.Company) bool {
	fields := []string{c.CompanyName, c.FounderName}

	switch m.q.Scope {
	case ScopeAdmin:
		fields = append(fields, c.FounderEmail)
	case ScopeBoard:
		fields = append(fields, c.FounderEmail, m.industryName(c))
		if c.SubIndustry != nil {
			fields = append(fields, *c.SubIndustry)
		}
		fields = append(fields, c.CustomTags...)
	default:
		fields = append(fields, m.industryName(c))
	}

	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), m.needle) {
			return true
		}
	}
	return false
}

func (m *matcher) industryName(c *domain.Company) string {
	if c.IndustryID == nil {
		return ""
	}
	return m.industries[*c.IndustryID]
}

// Filter returns the companies matching q, preserving input order.
func Filter(companies []domain.Company, industries []domain.Industry, q Query) []domain.Company {
	m := newMatcher(q, industries)
	out := make([]domain.Company, 0, len(companies))
	for i := range companies {
		if m.match(&companies[i]) {
			out = append(out, companies[i])
		}
	}
	return out
}

// Sort orders companies in place by field. Priority and round compare by
// rank, not spelling. Ties keep their input order.
func Sort(companies []domain.Company, field SortField, desc bool, now time.Time) {
	less := func(a, b *domain.Company) int {
		switch field {
		case SortFounderName:
			return strings.Compare(strings.ToLower(a.FounderName), strings.ToLower(b.FounderName))
		case SortPriority:
			return a.PriorityLevel.Rank() - b.PriorityLevel.Rank()
		case SortRound:
			return a.CompanyRound.Rank() - b.CompanyRound.Rank()
		case SortDays:
			return a.DaysInPipeline(now) - b.DaysInPipeline(now)
		case SortRaise:
			ra, rb := raise(a), raise(b)
			switch {
			case ra < rb:
				return -1
			case ra > rb:
				return 1
			}
			return 0
		default:
			return strings.Compare(strings.ToLower(a.CompanyName), strings.ToLower(b.CompanyName))
		}
	}

	sort.SliceStable(companies, func(i, j int) bool {
		cmp := less(&companies[i], &companies[j])
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func raise(c *domain.Company) float64 {
	if c.TotalFundRaise == nil {
		return 0
	}
	return *c.TotalFundRaise
}
