package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/internal/service/dashboard"
)

type dashboardService interface {
	Stats(ctx context.Context) (*dashboard.Stats, error)
	Table(ctx context.Context, q dashboard.Query) ([]dashboard.Row, error)
	Board(ctx context.Context, q dashboard.Query) ([]dashboard.Column, error)
}

// DashboardHandler serves the aggregated pipeline views.
type DashboardHandler struct {
	dashboard dashboardService
	log       *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(log *slog.Logger, svc dashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: svc, log: log.With("handler", "dashboard")}
}

// Stats handles GET /api/dashboard/stats.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Table handles GET /api/dashboard/table.
func (h *DashboardHandler) Table(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	rows, err := h.dashboard.Table(r.Context(), q)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	listed(w, rows)
}

// Board handles GET /api/dashboard/board.
func (h *DashboardHandler) Board(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	cols, err := h.dashboard.Board(r.Context(), q)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	listed(w, cols)
}

// parseQuery reads ?search=&scope=&priority=&industryId=&analystId=&round=
// &stageId=&sort=&desc=. List filters accept repeated or comma-separated
// values.
func parseQuery(r *http.Request) (dashboard.Query, error) {
	v := r.URL.Query()
	q := dashboard.Query{
		Search: v.Get("search"),
		Scope:  dashboard.SearchScope(v.Get("scope")),
		Sort:   dashboard.SortField(v.Get("sort")),
		Desc:   queryBool(r, "desc"),
	}
	for _, p := range queryList(r, "priority") {
		q.Priorities = append(q.Priorities, domain.Priority(p))
	}
	for _, p := range queryList(r, "round") {
		q.Rounds = append(q.Rounds, domain.CompanyRound(p))
	}

	var err error
	if q.IndustryIDs, err = queryUUIDs(r, "industryId"); err != nil {
		return q, err
	}
	if q.AnalystIDs, err = queryUUIDs(r, "analystId"); err != nil {
		return q, err
	}
	if q.StageIDs, err = queryUUIDs(r, "stageId"); err != nil {
		return q, err
	}
	return q, nil
}
