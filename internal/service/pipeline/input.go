package pipeline

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

const (
	maxNameLength = 200
	maxTagCount   = 50
)

// CreateCompanyInput holds the parameters for adding a company to the pipeline.
// Zero-value enums take the documented defaults.
type CreateCompanyInput struct {
	CompanyName           string
	FounderName           string
	FounderEmail          string
	PipelineStageID       *uuid.UUID // nil = lowest-order stage
	AnalystID             *uuid.UUID
	CompanyRound          domain.CompanyRound
	PriorityLevel         domain.Priority
	ShareType             domain.ShareType
	DealSourceType        domain.DealSourceType
	DealSourceNameID      *uuid.UUID
	IndustryID            *uuid.UUID
	SubIndustry           *string
	TotalFundRaise        *float64
	Valuation             *float64
	GoogleDriveLink       *string
	CustomTags            []string
	SLADeadline           *time.Time
	LinkedPreviousEntryID *uuid.UUID
	QuickSummary          *string
}

// Validate checks all fields and collects all errors.
func (i CreateCompanyInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, requiredName("companyName", i.CompanyName)...)
	errs = append(errs, requiredName("founderName", i.FounderName)...)
	if strings.TrimSpace(i.FounderEmail) == "" {
		errs = append(errs, domain.FieldError{Field: "founderEmail", Message: "required"})
	} else if !validEmail(i.FounderEmail) {
		errs = append(errs, domain.FieldError{Field: "founderEmail", Message: "invalid email"})
	}

	if i.CompanyRound != "" && !i.CompanyRound.IsValid() {
		errs = append(errs, domain.FieldError{Field: "companyRound", Message: "invalid value"})
	}
	if i.PriorityLevel != "" && !i.PriorityLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priorityLevel", Message: "invalid value"})
	}
	if i.ShareType != "" && !i.ShareType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "shareType", Message: "invalid value"})
	}
	if i.DealSourceType != "" && !i.DealSourceType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "dealSourceType", Message: "invalid value"})
	}
	errs = append(errs, validateMoney("totalFundRaise", i.TotalFundRaise)...)
	errs = append(errs, validateMoney("valuation", i.Valuation)...)
	if len(i.CustomTags) > maxTagCount {
		errs = append(errs, domain.FieldError{Field: "customTags", Message: "max 50 tags"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCompanyInput holds a partial update. See domain.CompanyUpdateParams
// for the clearing conventions. An empty TerminalStatus asks to reactivate,
// which is refused for terminal companies.
type UpdateCompanyInput struct {
	CompanyID uuid.UUID
	domain.CompanyUpdateParams
}

// Validate checks all fields and collects all errors.
func (i UpdateCompanyInput) Validate() error {
	var errs []domain.FieldError

	if i.CompanyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "companyId", Message: "required"})
	}
	if i.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.CompanyName != nil {
		errs = append(errs, requiredName("companyName", *i.CompanyName)...)
	}
	if i.FounderName != nil {
		errs = append(errs, requiredName("founderName", *i.FounderName)...)
	}
	if i.FounderEmail != nil && !validEmail(*i.FounderEmail) {
		errs = append(errs, domain.FieldError{Field: "founderEmail", Message: "invalid email"})
	}
	if i.CompanyRound != nil && !i.CompanyRound.IsValid() {
		errs = append(errs, domain.FieldError{Field: "companyRound", Message: "invalid value"})
	}
	if i.PriorityLevel != nil && !i.PriorityLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priorityLevel", Message: "invalid value"})
	}
	if i.ShareType != nil && !i.ShareType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "shareType", Message: "invalid value"})
	}
	if i.DealSourceType != nil && !i.DealSourceType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "dealSourceType", Message: "invalid value"})
	}
	if i.TerminalStatus != nil && *i.TerminalStatus != "" && !i.TerminalStatus.IsValid() {
		errs = append(errs, domain.FieldError{Field: "terminalStatus", Message: "invalid value"})
	}
	errs = append(errs, validateMoney("totalFundRaise", i.TotalFundRaise)...)
	errs = append(errs, validateMoney("valuation", i.Valuation)...)
	if i.CustomTags != nil && len(*i.CustomTags) > maxTagCount {
		errs = append(errs, domain.FieldError{Field: "customTags", Message: "max 50 tags"})
	}
	if i.LinkedPreviousEntryID != nil && *i.LinkedPreviousEntryID == i.CompanyID {
		errs = append(errs, domain.FieldError{Field: "linkedPreviousEntryId", Message: "cannot link to itself"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RejectInput holds the outcome of the rejection flow.
type RejectInput struct {
	CompanyID           uuid.UUID
	Reasons             []domain.RejectionReason
	CommunicationMethod domain.CommunicationMethod
	EmailDraft          *string
	EmailRecipient      *string
}

// Validate checks all fields and collects all errors.
func (i RejectInput) Validate() error {
	var errs []domain.FieldError

	if i.CompanyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "companyId", Message: "required"})
	}
	if len(i.Reasons) == 0 {
		errs = append(errs, domain.FieldError{Field: "reasons", Message: "at least one reason is required"})
	}
	for _, r := range i.Reasons {
		if r.CategoryID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "reasons.categoryId", Message: "required"})
			break
		}
	}
	if !i.CommunicationMethod.IsValid() {
		errs = append(errs, domain.FieldError{Field: "communicationMethod", Message: "invalid value"})
	}
	if i.EmailRecipient != nil && strings.TrimSpace(*i.EmailRecipient) != "" && !validEmail(*i.EmailRecipient) {
		errs = append(errs, domain.FieldError{Field: "emailRecipient", Message: "invalid email"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func requiredName(field, v string) []domain.FieldError {
	v = strings.TrimSpace(v)
	if v == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if len(v) > maxNameLength {
		return []domain.FieldError{{Field: field, Message: "max 200 characters"}}
	}
	return nil
}

func validateMoney(field string, v *float64) []domain.FieldError {
	if v != nil && *v < 0 {
		return []domain.FieldError{{Field: field, Message: "must not be negative"}}
	}
	return nil
}

func validEmail(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "@") {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}
