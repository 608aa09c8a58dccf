package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChangeOp is the kind of row change carried by a ChangeEvent.
type ChangeOp string

const (
	OpInsert ChangeOp = "INSERT"
	OpUpdate ChangeOp = "UPDATE"
	OpDelete ChangeOp = "DELETE"
)

func (o ChangeOp) IsValid() bool {
	return o == OpInsert || o == OpUpdate || o == OpDelete
}

// Table names used as change-event tags.
const (
	TableCompanies         = "companies"
	TablePipelineStages    = "pipeline_stages"
	TableIndustries        = "industries"
	TableDealSourceNames   = "deal_source_names"
	TableRejectionTaxonomy = "rejection_reason_categories"
	TableComments          = "comments"
	TableActivityLogs      = "activity_logs"
	TableNotifications     = "notifications"
	TableProfiles          = "profiles"
	TableRejectionRecords  = "rejection_records"
)

// ChangeEvent is one row change, tagged by table and operation. Row holds the
// JSON of the new row (or the deleted row's last known state). DELETE events
// may carry only ID.
type ChangeEvent struct {
	Table string          `json:"table"`
	Op    ChangeOp        `json:"op"`
	ID    uuid.UUID       `json:"id"`
	Row   json.RawMessage `json:"row,omitempty"`
	At    time.Time       `json:"at"`
}

// NewChangeEvent builds an event, marshalling row when it is non-nil.
func NewChangeEvent(table string, op ChangeOp, id uuid.UUID, row any) (ChangeEvent, error) {
	ev := ChangeEvent{Table: table, Op: op, ID: id, At: time.Now().UTC()}
	if row != nil {
		raw, err := json.Marshal(row)
		if err != nil {
			return ChangeEvent{}, fmt.Errorf("marshal %s row: %w", table, err)
		}
		ev.Row = raw
	}
	return ev, nil
}

// Decode unmarshals Row into dst.
func (e ChangeEvent) Decode(dst any) error {
	if len(e.Row) == 0 {
		return fmt.Errorf("%s %s %s: empty row", e.Table, e.Op, e.ID)
	}
	return json.Unmarshal(e.Row, dst)
}
