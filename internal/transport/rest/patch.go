package rest

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

var jsonNull = []byte("null")

// patchDecoder turns a PATCH body into update params field by field,
// collecting every problem instead of stopping at the first.
type patchDecoder struct {
	raw  map[string]json.RawMessage
	errs []domain.FieldError
}

func (d *patchDecoder) fail(field, msg string) {
	d.errs = append(d.errs, domain.FieldError{Field: field, Message: msg})
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), jsonNull)
}

// value decodes a field that may not be null.
func value[T any](d *patchDecoder, field string) *T {
	v, ok := d.raw[field]
	if !ok {
		return nil
	}
	delete(d.raw, field)
	if isNull(v) {
		d.fail(field, "cannot be null")
		return nil
	}
	var out T
	if err := json.Unmarshal(v, &out); err != nil {
		d.fail(field, "invalid value")
		return nil
	}
	return &out
}

// text decodes a nullable text field; null clears it.
func (d *patchDecoder) text(field string) *string {
	v, ok := d.raw[field]
	if ok && isNull(v) {
		delete(d.raw, field)
		empty := ""
		return &empty
	}
	return value[string](d, field)
}

// ref decodes a nullable id; null clears it.
func (d *patchDecoder) ref(field string) *uuid.UUID {
	v, ok := d.raw[field]
	if ok && isNull(v) {
		delete(d.raw, field)
		cleared := uuid.Nil
		return &cleared
	}
	return value[uuid.UUID](d, field)
}

// amount decodes a nullable money field. A null reports cleared instead of
// a value.
func (d *patchDecoder) amount(field string) (v *float64, cleared bool) {
	if raw, ok := d.raw[field]; ok && isNull(raw) {
		delete(d.raw, field)
		return nil, true
	}
	return value[float64](d, field), false
}

// blob passes an annotation through unchanged; null clears it.
func (d *patchDecoder) blob(field string) json.RawMessage {
	v, ok := d.raw[field]
	if !ok {
		return nil
	}
	delete(d.raw, field)
	return v
}

func parseCompanyPatch(raw map[string]json.RawMessage) (domain.CompanyUpdateParams, error) {
	d := &patchDecoder{raw: raw}
	var p domain.CompanyUpdateParams

	p.CompanyName = value[string](d, "companyName")
	p.FounderName = value[string](d, "founderName")
	p.FounderEmail = value[string](d, "founderEmail")
	p.CompanyRound = value[domain.CompanyRound](d, "companyRound")
	p.PriorityLevel = value[domain.Priority](d, "priorityLevel")
	p.DealSourceType = value[domain.DealSourceType](d, "dealSourceType")
	p.ShareType = value[domain.ShareType](d, "shareType")
	p.TotalFundRaise, p.ClearTotalFundRaise = d.amount("totalFundRaise")
	p.Valuation, p.ClearValuation = d.amount("valuation")
	p.IsOverdue = value[bool](d, "isOverdue")

	p.DealSourceNameID = d.ref("dealSourceNameId")
	p.IndustryID = d.ref("industryId")
	p.LinkedPreviousEntryID = d.ref("linkedPreviousEntryId")

	p.SubIndustry = d.text("subIndustry")
	p.GoogleDriveLink = d.text("googleDriveLink")
	p.QuickSummary = d.text("quickSummary")

	if v, ok := d.raw["terminalStatus"]; ok && isNull(v) {
		delete(d.raw, "terminalStatus")
		active := domain.TerminalStatus("")
		p.TerminalStatus = &active
	} else {
		p.TerminalStatus = value[domain.TerminalStatus](d, "terminalStatus")
	}

	if v, ok := d.raw["slaDeadline"]; ok && isNull(v) {
		delete(d.raw, "slaDeadline")
		p.ClearSLADeadline = true
	} else {
		p.SLADeadline = value[time.Time](d, "slaDeadline")
	}

	if v, ok := d.raw["customTags"]; ok && isNull(v) {
		delete(d.raw, "customTags")
		p.CustomTags = &[]string{}
	} else {
		p.CustomTags = value[[]string](d, "customTags")
	}

	p.DeckAnalysis = d.blob("deckAnalysis")
	p.KPIData = d.blob("kpiData")
	p.CallTranscript = d.blob("callTranscript")
	p.FilterBrief = d.blob("filterBrief")
	p.ICMemo = d.blob("icMemo")

	return p, d.finish()
}

// finish reports leftover keys as unknown and returns the collected
// errors, if any.
func (d *patchDecoder) finish() error {
	for _, field := range slices.Sorted(maps.Keys(d.raw)) {
		d.fail(field, "unknown or read-only field")
	}
	if len(d.errs) > 0 {
		return domain.NewValidationErrors(d.errs)
	}
	return nil
}
