package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/internal/service/team"
)

type teamService interface {
	Me(ctx context.Context) (*domain.Profile, error)
	ListTeam(ctx context.Context) ([]domain.Profile, error)
	UpdateRole(ctx context.Context, profileID uuid.UUID, role domain.Role) (*domain.Profile, error)
	Invite(ctx context.Context, in team.InviteInput) (*team.Invitation, error)
}

// TeamHandler serves the caller's profile and team administration.
type TeamHandler struct {
	team teamService
	log  *slog.Logger
}

// NewTeamHandler creates a TeamHandler.
func NewTeamHandler(log *slog.Logger, svc teamService) *TeamHandler {
	return &TeamHandler{team: svc, log: log.With("handler", "team")}
}

// Me handles GET /api/me. A signed-in user who was never invited gets 404.
func (h *TeamHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, err := h.team.Me(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// List handles GET /api/team.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.team.ListTeam(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	listed(w, profiles)
}

type roleRequest struct {
	Role domain.Role `json:"role"`
}

// UpdateRole handles PATCH /api/team/{id}/role.
func (h *TeamHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req roleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.team.UpdateRole(r.Context(), id, req.Role)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type inviteRequest struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// Invite handles POST /api/team/invite. When the profile was stored but the
// mail failed, the error is reported and the invite can be repeated.
func (h *TeamHandler) Invite(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	inv, err := h.team.Invite(r.Context(), team.InviteInput(req))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	status := http.StatusOK
	if inv.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, inv)
}
