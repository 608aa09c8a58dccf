package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/internal/service/refdata"
)

type refdataService interface {
	ListStages(ctx context.Context) ([]domain.PipelineStage, error)
	AddStage(ctx context.Context, input refdata.AddStageInput) (*domain.PipelineStage, error)
	UpdateStage(ctx context.Context, input refdata.UpdateStageInput) (*domain.PipelineStage, error)
	DeleteStage(ctx context.Context, id uuid.UUID) error

	ListIndustries(ctx context.Context) ([]domain.Industry, error)
	AddIndustry(ctx context.Context, name string) (*domain.Industry, error)
	RenameIndustry(ctx context.Context, id uuid.UUID, name string) error
	DeleteIndustry(ctx context.Context, id uuid.UUID) error
	AddSubIndustry(ctx context.Context, industryID uuid.UUID, name string) (*domain.SubIndustry, error)
	DeleteSubIndustry(ctx context.Context, id uuid.UUID) error

	ListDealSources(ctx context.Context) ([]domain.DealSourceName, error)
	AddDealSource(ctx context.Context, name string) (*domain.DealSourceName, error)
	RenameDealSource(ctx context.Context, id uuid.UUID, name string) (*domain.DealSourceName, error)
	DeleteDealSource(ctx context.Context, id uuid.UUID) error

	ListRejectionCategories(ctx context.Context) ([]domain.RejectionCategory, error)
	AddRejectionCategory(ctx context.Context, name string) (*domain.RejectionCategory, error)
	RenameRejectionCategory(ctx context.Context, id uuid.UUID, name string) error
	DeleteRejectionCategory(ctx context.Context, id uuid.UUID) error
	AddSubReason(ctx context.Context, categoryID uuid.UUID, name string) (*domain.RejectionSubReason, error)
	RenameSubReason(ctx context.Context, id uuid.UUID, name string) error
	DeleteSubReason(ctx context.Context, id uuid.UUID) error
}

// ReferenceHandler serves the stage, industry, deal source and rejection
// taxonomy lists.
type ReferenceHandler struct {
	refdata refdataService
	log     *slog.Logger
}

// NewReferenceHandler creates a ReferenceHandler.
func NewReferenceHandler(log *slog.Logger, svc refdataService) *ReferenceHandler {
	return &ReferenceHandler{refdata: svc, log: log.With("handler", "reference")}
}

type nameRequest struct {
	Name string `json:"name"`
}

// listed writes items, or an empty array rather than null.
func listed[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, items)
}

// --- stages ---

// ListStages handles GET /api/stages.
func (h *ReferenceHandler) ListStages(w http.ResponseWriter, r *http.Request) {
	stages, err := h.refdata.ListStages(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	listed(w, stages)
}

type addStageRequest struct {
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	Description *string `json:"description"`
}

// AddStage handles POST /api/stages. The stage is appended after the
// current last one.
func (h *ReferenceHandler) AddStage(w http.ResponseWriter, r *http.Request) {
	var req addStageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	stage, err := h.refdata.AddStage(r.Context(), refdata.AddStageInput(req))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, stage)
}

// UpdateStage handles PATCH /api/stages/{id}. A null description clears it.
func (h *ReferenceHandler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var raw map[string]json.RawMessage
	if err := decodeJSON(w, r, &raw); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	d := &patchDecoder{raw: raw}
	in := refdata.UpdateStageInput{
		StageID:     id,
		Name:        value[string](d, "name"),
		Color:       value[string](d, "color"),
		Description: d.text("description"),
	}
	if err := d.finish(); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	stage, err := h.refdata.UpdateStage(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, stage)
}

// DeleteStage handles DELETE /api/stages/{id}.
func (h *ReferenceHandler) DeleteStage(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.refdata.DeleteStage)
}

// --- industries ---

// ListIndustries handles GET /api/industries.
func (h *ReferenceHandler) ListIndustries(w http.ResponseWriter, r *http.Request) {
	industries, err := h.refdata.ListIndustries(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	listed(w, industries)
}

// AddIndustry handles POST /api/industries.
func (h *ReferenceHandler) AddIndustry(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ind, err := h.refdata.AddIndustry(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, ind)
}

// RenameIndustry handles PATCH /api/industries/{id}.
func (h *ReferenceHandler) RenameIndustry(w http.ResponseWriter, r *http.Request) {
	h.rename(w, r, h.refdata.RenameIndustry)
}

// DeleteIndustry handles DELETE /api/industries/{id}.
func (h *ReferenceHandler) DeleteIndustry(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.refdata.DeleteIndustry)
}

// AddSubIndustry handles POST /api/industries/{id}/sub-industries.
func (h *ReferenceHandler) AddSubIndustry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req nameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sub, err := h.refdata.AddSubIndustry(r.Context(), id, req.Name)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

// DeleteSubIndustry handles DELETE /api/sub-industries/{id}.
func (h *ReferenceHandler) DeleteSubIndustry(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.refdata.DeleteSubIndustry)
}

// --- deal sources ---

// ListDealSources handles GET /api/deal-sources.
func (h *ReferenceHandler) ListDealSources(w http.ResponseWriter, r *http.Request) {
	sources, err := h.refdata.ListDealSources(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	listed(w, sources)
}

// AddDealSource handles POST /api/deal-sources.
func (h *ReferenceHandler) AddDealSource(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	src, err := h.refdata.AddDealSource(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, src)
}

// RenameDealSource handles PATCH /api/deal-sources/{id}.
func (h *ReferenceHandler) RenameDealSource(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req nameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	src, err := h.refdata.RenameDealSource(r.Context(), id, req.Name)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, src)
}

// DeleteDealSource handles DELETE /api/deal-sources/{id}.
func (h *ReferenceHandler) DeleteDealSource(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.refdata.DeleteDealSource)
}

// --- rejection taxonomy ---

// ListRejectionCategories handles GET /api/rejection-categories.
func (h *ReferenceHandler) ListRejectionCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.refdata.ListRejectionCategories(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	listed(w, cats)
}

// AddRejectionCategory handles POST /api/rejection-categories.
func (h *ReferenceHandler) AddRejectionCategory(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	cat, err := h.refdata.AddRejectionCategory(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, cat)
}

// RenameRejectionCategory handles PATCH /api/rejection-categories/{id}.
func (h *ReferenceHandler) RenameRejectionCategory(w http.ResponseWriter, r *http.Request) {
	h.rename(w, r, h.refdata.RenameRejectionCategory)
}

// DeleteRejectionCategory handles DELETE /api/rejection-categories/{id}.
func (h *ReferenceHandler) DeleteRejectionCategory(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.refdata.DeleteRejectionCategory)
}

// AddSubReason handles POST /api/rejection-categories/{id}/sub-reasons.
func (h *ReferenceHandler) AddSubReason(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req nameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sub, err := h.refdata.AddSubReason(r.Context(), id, req.Name)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

// RenameSubReason handles PATCH /api/sub-reasons/{id}.
func (h *ReferenceHandler) RenameSubReason(w http.ResponseWriter, r *http.Request) {
	h.rename(w, r, h.refdata.RenameSubReason)
}

// DeleteSubReason handles DELETE /api/sub-reasons/{id}.
func (h *ReferenceHandler) DeleteSubReason(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.refdata.DeleteSubReason)
}

func (h *ReferenceHandler) rename(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID, string) error) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req nameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := fn(r.Context(), id, req.Name); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ReferenceHandler) remove(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) error) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := fn(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
