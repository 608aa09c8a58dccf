package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/internal/service/dashboard"
	"github.com/heartmarshall/dealflow-backend/internal/service/pipeline"
	"github.com/heartmarshall/dealflow-backend/internal/transport/dataloader"
)

type pipelineService interface {
	ListCompanies(ctx context.Context, f domain.CompanyFilter) ([]domain.Company, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	CreateCompany(ctx context.Context, input pipeline.CreateCompanyInput) (*domain.Company, error)
	UpdateCompany(ctx context.Context, input pipeline.UpdateCompanyInput) (*domain.Company, error)
	DeleteCompany(ctx context.Context, companyID uuid.UUID) error
	MoveStage(ctx context.Context, companyID, targetStageID uuid.UUID) (*domain.Company, error)
	Assign(ctx context.Context, companyID uuid.UUID, analystID *uuid.UUID) (*domain.Company, error)
	Reject(ctx context.Context, input pipeline.RejectInput) (*domain.RejectionRecord, error)
	GetRejection(ctx context.Context, companyID uuid.UUID) (*domain.RejectionRecord, error)
	DraftRejection(ctx context.Context, companyID uuid.UUID, categoryIDs []uuid.UUID) (*pipeline.RejectionDraft, error)
	ListActivity(ctx context.Context, companyID uuid.UUID) ([]domain.ActivityLog, error)
}

type commentService interface {
	Add(ctx context.Context, companyID uuid.UUID, text string) (*domain.Comment, error)
	List(ctx context.Context, companyID uuid.UUID) ([]domain.Comment, error)
}

type slaService interface {
	SLA(ctx context.Context, companyID uuid.UUID) (*dashboard.CompanySLA, error)
}

// CompanyHandler serves /api/companies and its sub-resources.
type CompanyHandler struct {
	pipeline pipelineService
	comments commentService
	sla      slaService
	log      *slog.Logger
}

// NewCompanyHandler creates a CompanyHandler.
func NewCompanyHandler(log *slog.Logger, p pipelineService, c commentService, sla slaService) *CompanyHandler {
	return &CompanyHandler{
		pipeline: p,
		comments: c,
		sla:      sla,
		log:      log.With("handler", "companies"),
	}
}

// List handles GET /api/companies?view=&stageId=&analystId=&terminalStatus=.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := parseCompanyFilter(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	companies, err := h.pipeline.ListCompanies(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if companies == nil {
		companies = []domain.Company{}
	}
	writeJSON(w, http.StatusOK, companies)
}

func parseCompanyFilter(r *http.Request) (domain.CompanyFilter, error) {
	q := r.URL.Query()
	f := domain.CompanyFilter{View: domain.CompanyView(q.Get("view"))}
	if f.View == "" {
		f.View = domain.ViewActive
	}

	var errs []domain.FieldError
	if !f.View.IsValid() {
		errs = append(errs, domain.FieldError{Field: "view", Message: "must be active, terminal or all"})
	}
	for _, p := range []struct {
		name string
		dst  **uuid.UUID
	}{{"stageId", &f.StageID}, {"analystId", &f.AnalystID}} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: p.name, Message: "must be a UUID"})
			continue
		}
		*p.dst = &id
	}
	if raw := q.Get("terminalStatus"); raw != "" {
		ts := domain.TerminalStatus(raw)
		if !ts.IsValid() {
			errs = append(errs, domain.FieldError{Field: "terminalStatus", Message: "invalid value"})
		}
		f.TerminalStatus = &ts
	}

	if len(errs) > 0 {
		return f, domain.NewValidationErrors(errs)
	}
	return f, nil
}

// Get handles GET /api/companies/{id}.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	c, err := h.pipeline.GetCompany(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type createCompanyRequest struct {
	CompanyName           string                `json:"companyName"`
	FounderName           string                `json:"founderName"`
	FounderEmail          string                `json:"founderEmail"`
	PipelineStageID       *uuid.UUID            `json:"pipelineStageId"`
	AnalystID             *uuid.UUID            `json:"analystId"`
	CompanyRound          domain.CompanyRound   `json:"companyRound"`
	PriorityLevel         domain.Priority       `json:"priorityLevel"`
	ShareType             domain.ShareType      `json:"shareType"`
	DealSourceType        domain.DealSourceType `json:"dealSourceType"`
	DealSourceNameID      *uuid.UUID            `json:"dealSourceNameId"`
	IndustryID            *uuid.UUID            `json:"industryId"`
	SubIndustry           *string               `json:"subIndustry"`
	TotalFundRaise        *float64              `json:"totalFundRaise"`
	Valuation             *float64              `json:"valuation"`
	GoogleDriveLink       *string               `json:"googleDriveLink"`
	CustomTags            []string              `json:"customTags"`
	SLADeadline           *time.Time            `json:"slaDeadline"`
	LinkedPreviousEntryID *uuid.UUID            `json:"linkedPreviousEntryId"`
	QuickSummary          *string               `json:"quickSummary"`
}

// Create handles POST /api/companies.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCompanyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.pipeline.CreateCompany(r.Context(), pipeline.CreateCompanyInput(req))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Update handles PATCH /api/companies/{id}. Absent keys are untouched and
// explicit nulls clear nullable fields.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var raw map[string]json.RawMessage
	if err := decodeJSON(w, r, &raw); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	params, err := parseCompanyPatch(raw)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	c, err := h.pipeline.UpdateCompany(r.Context(), pipeline.UpdateCompanyInput{
		CompanyID:           id,
		CompanyUpdateParams: params,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Delete handles DELETE /api/companies/{id}.
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.pipeline.DeleteCompany(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type moveRequest struct {
	StageID uuid.UUID `json:"stageId"`
}

// Move handles POST /api/companies/{id}/move.
func (h *CompanyHandler) Move(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req moveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.StageID == uuid.Nil {
		writeServiceError(w, r, h.log, domain.NewValidationError("stageId", "required"))
		return
	}

	c, err := h.pipeline.MoveStage(r.Context(), id, req.StageID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type assignRequest struct {
	AnalystID *uuid.UUID `json:"analystId"`
}

// Assign handles POST /api/companies/{id}/assign. A null analystId
// unassigns.
func (h *CompanyHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req assignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.pipeline.Assign(r.Context(), id, req.AnalystID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type rejectRequest struct {
	Reasons             []domain.RejectionReason   `json:"reasons"`
	CommunicationMethod domain.CommunicationMethod `json:"communicationMethod"`
	EmailDraft          *string                    `json:"emailDraft"`
	EmailRecipient      *string                    `json:"emailRecipient"`
}

// Reject handles POST /api/companies/{id}/reject.
func (h *CompanyHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req rejectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.pipeline.Reject(r.Context(), pipeline.RejectInput{
		CompanyID:           id,
		Reasons:             req.Reasons,
		CommunicationMethod: req.CommunicationMethod,
		EmailDraft:          req.EmailDraft,
		EmailRecipient:      req.EmailRecipient,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// Rejection handles GET /api/companies/{id}/rejection.
func (h *CompanyHandler) Rejection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	rec, err := h.pipeline.GetRejection(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

type draftRequest struct {
	CategoryIDs []uuid.UUID `json:"categoryIds"`
}

// RejectionDraft handles POST /api/companies/{id}/rejection-draft.
func (h *CompanyHandler) RejectionDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req draftRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	draft, err := h.pipeline.DraftRejection(r.Context(), id, req.CategoryIDs)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// activityView is an activity entry with its actor and stage names
// resolved.
type activityView struct {
	domain.ActivityLog
	UserName      string `json:"userName,omitempty"`
	FromStageName string `json:"fromStageName,omitempty"`
	ToStageName   string `json:"toStageName,omitempty"`
}

// Activity handles GET /api/companies/{id}/activity.
func (h *CompanyHandler) Activity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	ctx := r.Context()

	logs, err := h.pipeline.ListActivity(ctx, id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var userIDs, stageIDs []uuid.UUID
	for _, l := range logs {
		userIDs = appendID(userIDs, l.UserID)
		stageIDs = appendID(appendID(stageIDs, l.FromStageID), l.ToStageID)
	}
	users, err := dataloader.ProfileNames(ctx, userIDs)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	stages, err := dataloader.StageNames(ctx, stageIDs)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]activityView, len(logs))
	for i, l := range logs {
		out[i] = activityView{
			ActivityLog:   l,
			UserName:      nameOf(users, l.UserID),
			FromStageName: nameOf(stages, l.FromStageID),
			ToStageName:   nameOf(stages, l.ToStageID),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

type commentView struct {
	domain.Comment
	AuthorName string `json:"authorName,omitempty"`
}

// Comments handles GET /api/companies/{id}/comments.
func (h *CompanyHandler) Comments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	ctx := r.Context()

	comments, err := h.comments.List(ctx, id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	ids := make([]uuid.UUID, len(comments))
	for i := range comments {
		ids[i] = comments[i].AuthorID
	}
	names, err := dataloader.ProfileNames(ctx, ids)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]commentView, len(comments))
	for i, c := range comments {
		out[i] = commentView{Comment: c, AuthorName: names[c.AuthorID]}
	}
	writeJSON(w, http.StatusOK, out)
}

type addCommentRequest struct {
	Text string `json:"text"`
}

// AddComment handles POST /api/companies/{id}/comments.
func (h *CompanyHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req addCommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.comments.Add(r.Context(), id, req.Text)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// SLA handles GET /api/companies/{id}/sla.
func (h *CompanyHandler) SLA(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	s, err := h.sla.SLA(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func appendID(ids []uuid.UUID, id *uuid.UUID) []uuid.UUID {
	if id == nil {
		return ids
	}
	return append(ids, *id)
}

func nameOf(names map[uuid.UUID]string, id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return names[*id]
}
