package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OrganizationID is the single tenant every record belongs to. The database
// applies it as a column default; it is exported for seeding and tests.
var OrganizationID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// Company is a prospective portfolio company moving through the pipeline.
type Company struct {
	ID                    uuid.UUID       `json:"id"`
	CompanyName           string          `json:"companyName"`
	FounderName           string          `json:"founderName"`
	FounderEmail          string          `json:"founderEmail"`
	AnalystID             *uuid.UUID      `json:"analystId"`
	CompanyRound          CompanyRound    `json:"companyRound"`
	PipelineStageID       *uuid.UUID      `json:"pipelineStageId"`
	PriorityLevel         Priority        `json:"priorityLevel"`
	DealSourceType        DealSourceType  `json:"dealSourceType"`
	DealSourceNameID      *uuid.UUID      `json:"dealSourceNameId"`
	IndustryID            *uuid.UUID      `json:"industryId"`
	SubIndustry           *string         `json:"subIndustry"`
	ShareType             ShareType       `json:"shareType"`
	TotalFundRaise        *float64        `json:"totalFundRaise"`
	Valuation             *float64        `json:"valuation"`
	GoogleDriveLink       *string         `json:"googleDriveLink"`
	CustomTags            []string        `json:"customTags"`
	TerminalStatus        *TerminalStatus `json:"terminalStatus"`
	SLADeadline           *time.Time      `json:"slaDeadline"`
	IsOverdue             bool            `json:"isOverdue"`
	LinkedPreviousEntryID *uuid.UUID      `json:"linkedPreviousEntryId"`
	Annotations
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Annotations are AI-derived analysis artifacts. The structured ones are
// stored and returned as opaque JSON.
type Annotations struct {
	QuickSummary   *string         `json:"quickSummary"`
	DeckAnalysis   json.RawMessage `json:"deckAnalysis"`
	KPIData        json.RawMessage `json:"kpiData"`
	CallTranscript json.RawMessage `json:"callTranscript"`
	FilterBrief    json.RawMessage `json:"filterBrief"`
	ICMemo         json.RawMessage `json:"icMemo"`
}

// IsActive reports whether the company is still in the active pipeline.
func (c *Company) IsActive() bool {
	return c.TerminalStatus == nil
}

// DaysInPipeline returns whole days since the company was created.
func (c *Company) DaysInPipeline(now time.Time) int {
	return DaysInPipeline(c.CreatedAt, now)
}

// Overdue reports whether the company is flagged overdue or has been in the
// pipeline longer than the threshold.
func (c *Company) Overdue(now time.Time, th Thresholds) bool {
	return c.IsOverdue || c.DaysInPipeline(now) > th.OverdueDays
}

// SLA classifies the company against the thresholds.
func (c *Company) SLA(now time.Time, th Thresholds) SLAStatus {
	switch {
	case c.Overdue(now, th):
		return SLAOverdue
	case c.DaysInPipeline(now) > th.AtRiskDays:
		return SLAAtRisk
	default:
		return SLAOnTrack
	}
}

// DaysInPipeline is floor((now - createdAt) / 24h). A createdAt in the
// future yields 0.
func DaysInPipeline(createdAt, now time.Time) int {
	d := now.Sub(createdAt)
	if d <= 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}

// Thresholds drive overdue and at-risk classification.
type Thresholds struct {
	OverdueDays int
	AtRiskDays  int
}

// DefaultThresholds: overdue after 25 days, at risk after 20.
var DefaultThresholds = Thresholds{OverdueDays: 25, AtRiskDays: 20}

// WithDefaults fills each unset (non-positive) threshold from
// DefaultThresholds independently, so a configured value is never lost.
func (t Thresholds) WithDefaults() Thresholds {
	if t.OverdueDays <= 0 {
		t.OverdueDays = DefaultThresholds.OverdueDays
	}
	if t.AtRiskDays <= 0 {
		t.AtRiskDays = DefaultThresholds.AtRiskDays
	}
	return t
}

// SLAStatus is the derived SLA label of a company.
type SLAStatus string

const (
	SLAOnTrack SLAStatus = "on-track"
	SLAAtRisk  SLAStatus = "at-risk"
	SLAOverdue SLAStatus = "overdue"
)

// CompanyUpdateParams carries a partial update. nil fields are left alone.
// For nullable text fields ptr("") clears the value; for nullable ids
// uuid.Nil clears it; a JSON "null" clears an annotation blob.
type CompanyUpdateParams struct {
	CompanyName           *string
	FounderName           *string
	FounderEmail          *string
	CompanyRound          *CompanyRound
	PriorityLevel         *Priority
	DealSourceType        *DealSourceType
	DealSourceNameID      *uuid.UUID
	IndustryID            *uuid.UUID
	SubIndustry           *string
	ShareType             *ShareType
	TotalFundRaise        *float64
	ClearTotalFundRaise   bool
	Valuation             *float64
	ClearValuation        bool
	GoogleDriveLink       *string
	CustomTags            *[]string
	TerminalStatus        *TerminalStatus
	SLADeadline           *time.Time
	ClearSLADeadline      bool
	IsOverdue             *bool
	LinkedPreviousEntryID *uuid.UUID
	QuickSummary          *string
	DeckAnalysis          json.RawMessage
	KPIData               json.RawMessage
	CallTranscript        json.RawMessage
	FilterBrief           json.RawMessage
	ICMemo                json.RawMessage
}

// IsEmpty reports whether no field is set.
func (p CompanyUpdateParams) IsEmpty() bool {
	return p.CompanyName == nil && p.FounderName == nil && p.FounderEmail == nil &&
		p.CompanyRound == nil && p.PriorityLevel == nil && p.DealSourceType == nil &&
		p.DealSourceNameID == nil && p.IndustryID == nil && p.SubIndustry == nil &&
		p.ShareType == nil && p.TotalFundRaise == nil && !p.ClearTotalFundRaise &&
		p.Valuation == nil && !p.ClearValuation &&
		p.GoogleDriveLink == nil && p.CustomTags == nil && p.TerminalStatus == nil &&
		p.SLADeadline == nil && !p.ClearSLADeadline && p.IsOverdue == nil &&
		p.LinkedPreviousEntryID == nil && p.QuickSummary == nil &&
		p.DeckAnalysis == nil && p.KPIData == nil && p.CallTranscript == nil &&
		p.FilterBrief == nil && p.ICMemo == nil
}

// CompanyView selects which slice of the pipeline a listing returns.
type CompanyView string

const (
	ViewActive   CompanyView = "active"
	ViewTerminal CompanyView = "terminal"
	ViewAll      CompanyView = "all"
)

func (v CompanyView) IsValid() bool {
	return v == ViewActive || v == ViewTerminal || v == ViewAll
}

// CompanyFilter narrows a company listing.
type CompanyFilter struct {
	View           CompanyView
	StageID        *uuid.UUID
	AnalystID      *uuid.UUID
	TerminalStatus *TerminalStatus
}
