package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/internal/realtime"
	"github.com/heartmarshall/dealflow-backend/internal/transport/dataloader"
	"github.com/heartmarshall/dealflow-backend/internal/transport/middleware"
	"github.com/heartmarshall/dealflow-backend/internal/transport/rest"
)

// RouterDeps is what NewRouter needs beyond the container.
type RouterDeps struct {
	Projector *realtime.Projector
	Limiter   *middleware.RateLimiter
	Version   string
}

var (
	anyMember = []domain.Role{domain.RoleAnalyst, domain.RolePartner, domain.RoleAdmin}
	curators  = []domain.Role{domain.RolePartner, domain.RoleAdmin}
	admins    = []domain.Role{domain.RoleAdmin}
)

type router struct {
	mux *http.ServeMux
	api middleware.Middleware
}

// handle registers h under pattern. The wrapper records the pattern for
// request metrics before any middleware in mws runs.
func (rt *router) handle(pattern string, h http.Handler, mws ...middleware.Middleware) {
	h = middleware.Chain(mws...)(h)
	rt.mux.Handle(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		middleware.SetRoute(r.Context(), pattern)
		h.ServeHTTP(w, r)
	}))
}

// member registers an /api route open to every team role.
func (rt *router) member(pattern string, h http.HandlerFunc) {
	rt.handle(pattern, h, rt.api, middleware.RequireRole(anyMember...))
}

func (rt *router) curator(pattern string, h http.HandlerFunc) {
	rt.handle(pattern, h, rt.api, middleware.RequireRole(curators...))
}

func (rt *router) admin(pattern string, h http.HandlerFunc) {
	rt.handle(pattern, h, rt.api, middleware.RequireRole(admins...))
}

// NewRouter builds the HTTP handler for the whole service.
func NewRouter(c *Container, deps RouterDeps) http.Handler {
	log, cfg := c.Log, c.Cfg

	loaders := dataloader.Middleware(&dataloader.Repos{
		Profile: c.Repos.Profiles,
		Stage:   c.Repos.Stages,
	})
	var limit middleware.Middleware
	if deps.Limiter != nil {
		limit = deps.Limiter.Limit(cfg.RateLimit.PerMinute)
	}

	rt := &router{
		mux: http.NewServeMux(),
		// Auth runs before the limiter so callers are keyed by user.
		api: middleware.Chain(middleware.Auth(c.JWT, c.Team, log), limit, loaders),
	}

	checks := []rest.Check{rest.ReadyCheck("board", deps.Projector.Ready)}
	if cfg.Redis.Enabled() {
		checks = append(checks, rest.Check{Name: "redis", Ping: c.PingRedis, Optional: true})
	}
	health := rest.NewHealthHandler(c.Pool, deps.Version, checks...)
	rt.handle("GET /live", http.HandlerFunc(health.Live))
	rt.handle("GET /ready", http.HandlerFunc(health.Ready))
	rt.handle("GET /health", http.HandlerFunc(health.Health))
	if reg := c.Metrics.Registry(); reg != nil {
		rt.handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	companies := rest.NewCompanyHandler(log, c.Pipeline, c.Comments, c.Dashboard)
	rt.member("GET /api/companies", companies.List)
	rt.member("POST /api/companies", companies.Create)
	rt.member("GET /api/companies/{id}", companies.Get)
	rt.member("PATCH /api/companies/{id}", companies.Update)
	rt.admin("DELETE /api/companies/{id}", companies.Delete)
	rt.member("POST /api/companies/{id}/move", companies.Move)
	rt.member("POST /api/companies/{id}/assign", companies.Assign)
	rt.member("POST /api/companies/{id}/reject", companies.Reject)
	rt.member("GET /api/companies/{id}/rejection", companies.Rejection)
	rt.member("POST /api/companies/{id}/rejection-draft", companies.RejectionDraft)
	rt.member("GET /api/companies/{id}/activity", companies.Activity)
	rt.member("GET /api/companies/{id}/comments", companies.Comments)
	rt.member("POST /api/companies/{id}/comments", companies.AddComment)
	rt.member("GET /api/companies/{id}/sla", companies.SLA)

	ref := rest.NewReferenceHandler(log, c.Refdata)
	rt.member("GET /api/stages", ref.ListStages)
	rt.curator("POST /api/stages", ref.AddStage)
	rt.curator("PATCH /api/stages/{id}", ref.UpdateStage)
	rt.admin("DELETE /api/stages/{id}", ref.DeleteStage)
	rt.member("GET /api/industries", ref.ListIndustries)
	rt.curator("POST /api/industries", ref.AddIndustry)
	rt.curator("PATCH /api/industries/{id}", ref.RenameIndustry)
	rt.curator("DELETE /api/industries/{id}", ref.DeleteIndustry)
	rt.curator("POST /api/industries/{id}/sub-industries", ref.AddSubIndustry)
	rt.curator("DELETE /api/sub-industries/{id}", ref.DeleteSubIndustry)
	rt.member("GET /api/deal-sources", ref.ListDealSources)
	rt.curator("POST /api/deal-sources", ref.AddDealSource)
	rt.curator("PATCH /api/deal-sources/{id}", ref.RenameDealSource)
	rt.curator("DELETE /api/deal-sources/{id}", ref.DeleteDealSource)
	rt.member("GET /api/rejection-categories", ref.ListRejectionCategories)
	rt.curator("POST /api/rejection-categories", ref.AddRejectionCategory)
	rt.curator("PATCH /api/rejection-categories/{id}", ref.RenameRejectionCategory)
	rt.curator("DELETE /api/rejection-categories/{id}", ref.DeleteRejectionCategory)
	rt.curator("POST /api/rejection-categories/{id}/sub-reasons", ref.AddSubReason)
	rt.curator("PATCH /api/sub-reasons/{id}", ref.RenameSubReason)
	rt.curator("DELETE /api/sub-reasons/{id}", ref.DeleteSubReason)

	dash := rest.NewDashboardHandler(log, c.Dashboard)
	rt.member("GET /api/dashboard/stats", dash.Stats)
	rt.member("GET /api/dashboard/table", dash.Table)
	rt.member("GET /api/dashboard/board", dash.Board)

	notes := rest.NewNotificationHandler(log, c.Notifications)
	rt.member("GET /api/notifications", notes.List)
	rt.member("GET /api/notifications/unread-count", notes.UnreadCount)
	rt.member("POST /api/notifications/read-all", notes.MarkAllRead)

	team := rest.NewTeamHandler(log, c.Team)
	rt.handle("GET /api/me", http.HandlerFunc(team.Me), rt.api, middleware.RequireAuth)
	rt.member("GET /api/team", team.List)
	rt.curator("POST /api/team/invite", team.Invite)
	rt.admin("PATCH /api/team/{id}/role", team.UpdateRole)

	googleOpts := rest.GoogleOptions{
		AfterAuthRedirect: cfg.Google.AfterAuthRedirect,
		SecureCookies:     cfg.Google.SecureCookies,
	}
	google := rest.NewGoogleHandler(log, nil, c.Outreach, googleOpts)
	if c.Google != nil {
		google = rest.NewGoogleHandler(log, c.Google, c.Outreach, googleOpts)
	}
	// The consent flow is a browser redirect without a bearer token; the
	// state cookie ties the callback to the start.
	rt.handle("GET /api/auth/google", http.HandlerFunc(google.Start), limit)
	rt.handle("GET /api/auth/google/callback", http.HandlerFunc(google.Callback), limit)
	rt.member("GET /api/google/status", google.Status)
	rt.member("DELETE /api/google/status", google.Disconnect)
	rt.member("POST /api/calendar/create", google.CreateMeeting)
	rt.member("POST /api/gmail/send", google.SendMail)

	hub := realtime.NewHub(log, c.Local, deps.Projector, c.Metrics)
	rt.handle("GET /api/events", streaming(hub), queryToken, rt.api, middleware.RequireRole(anyMember...))

	return middleware.Chain(
		middleware.Recovery(log),
		middleware.RequestID,
		middleware.Logger(log),
		middleware.Metrics(c.Metrics),
		middleware.CORS(cfg.CORS),
	)(rt.mux)
}

// queryToken lets EventSource clients, which cannot set headers, pass the
// bearer token as ?access_token=.
func queryToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			if tok := r.URL.Query().Get("access_token"); tok != "" {
				r = r.Clone(r.Context())
				r.Header.Set("Authorization", "Bearer "+tok)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// streaming lifts the server write timeout for long-lived responses.
func streaming(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
			slog.Default().DebugContext(r.Context(), "clear write deadline", slog.String("error", err.Error()))
		}
		h.ServeHTTP(w, r)
	})
}
