package rest

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/heartmarshall/dealflow-backend/internal/adapter/provider/google"
	"github.com/heartmarshall/dealflow-backend/internal/service/outreach"
)

const (
	cookieAccess    = "google_access_token"
	cookieRefresh   = "google_refresh_token"
	cookieConnected = "google_connected"
	cookieState     = "google_oauth_state"

	statePath        = "/api/auth/google"
	stateTTL         = 10 * time.Minute
	refreshCookieTTL = 30 * 24 * time.Hour
	defaultAccessTTL = time.Hour
)

type googleAuthorizer interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*google.Token, error)
}

type outreachService interface {
	ScheduleMeeting(ctx context.Context, creds google.Credentials, in outreach.MeetingInput) (*google.CreatedEvent, error)
	SendEmail(ctx context.Context, creds google.Credentials, in outreach.MailInput) (*google.SentMail, error)
}

// GoogleOptions configures the cookies and the post-consent redirect.
type GoogleOptions struct {
	AfterAuthRedirect string
	SecureCookies     bool
}

// GoogleHandler runs the OAuth consent flow and the calendar and mail
// actions. Google tokens live only in the browser's cookies.
type GoogleHandler struct {
	auth      googleAuthorizer
	outreach  outreachService
	afterAuth string
	secure    bool
	log       *slog.Logger
	now       func() time.Time
}

// NewGoogleHandler creates a GoogleHandler. auth is nil when the
// integration is not configured.
func NewGoogleHandler(log *slog.Logger, auth googleAuthorizer, svc outreachService, opts GoogleOptions) *GoogleHandler {
	after := opts.AfterAuthRedirect
	if after == "" {
		after = "/"
	}
	return &GoogleHandler{
		auth:      auth,
		outreach:  svc,
		afterAuth: after,
		secure:    opts.SecureCookies,
		log:       log.With("handler", "google"),
		now:       time.Now,
	}
}

// Start handles GET /api/auth/google: it sets a state cookie and redirects
// to the consent screen.
func (h *GoogleHandler) Start(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil {
		writeError(w, http.StatusServiceUnavailable, "google integration is not configured")
		return
	}

	state, err := newState()
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieState,
		Value:    state,
		Path:     statePath,
		MaxAge:   int(stateTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.auth.AuthURL(state), http.StatusFound)
}

// Callback handles GET /api/auth/google/callback. It always ends in a
// redirect to the app with google_auth=success or google_auth=error.
func (h *GoogleHandler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	stateCookie, _ := r.Cookie(cookieState)
	h.expire(w, cookieState, statePath)

	switch {
	case h.auth == nil:
		h.finish(w, r, false, "not configured")
		return
	case q.Get("error") != "":
		h.finish(w, r, false, "consent denied: "+q.Get("error"))
		return
	case stateCookie == nil || !sameState(stateCookie.Value, q.Get("state")):
		h.finish(w, r, false, "state mismatch")
		return
	case q.Get("code") == "":
		h.finish(w, r, false, "missing code")
		return
	}

	tok, err := h.auth.Exchange(ctx, q.Get("code"))
	if err != nil {
		h.finish(w, r, false, err.Error())
		return
	}
	h.setTokens(w, tok)
	h.finish(w, r, true, "")
}

func (h *GoogleHandler) finish(w http.ResponseWriter, r *http.Request, ok bool, reason string) {
	outcome := "success"
	if !ok {
		outcome = "error"
		h.log.WarnContext(r.Context(), "google authorization failed", slog.String("reason", reason))
	}

	target, err := url.Parse(h.afterAuth)
	if err != nil {
		target = &url.URL{Path: "/"}
	}
	v := target.Query()
	v.Set("google_auth", outcome)
	target.RawQuery = v.Encode()
	http.Redirect(w, r, target.String(), http.StatusFound)
}

type googleStatus struct {
	Connected bool `json:"connected"`
}

// Status handles GET /api/google/status.
func (h *GoogleHandler) Status(w http.ResponseWriter, r *http.Request) {
	creds := credentials(r)
	writeJSON(w, http.StatusOK, googleStatus{
		Connected: creds.AccessToken != "" || creds.RefreshToken != "",
	})
}

// Disconnect handles DELETE /api/google/status.
func (h *GoogleHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	h.clearTokens(w)
	writeJSON(w, http.StatusOK, googleStatus{Connected: false})
}

type meetingRequest struct {
	Title           string `json:"title"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
	AttendeeEmail   string `json:"attendeeEmail"`
	AttendeeName    string `json:"attendeeName"`
	Notes           string `json:"notes"`
	HostEmail       string `json:"hostEmail"`
}

type meetingResponse struct {
	Success   bool                    `json:"success"`
	EventID   string                  `json:"eventId"`
	EventLink string                  `json:"eventLink"`
	MeetLink  string                  `json:"meetLink,omitempty"`
	Start     *calendar.EventDateTime `json:"start"`
	End       *calendar.EventDateTime `json:"end"`
}

// CreateMeeting handles POST /api/calendar/create.
func (h *GoogleHandler) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	var req meetingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ev, err := h.outreach.ScheduleMeeting(r.Context(), credentials(r), outreach.MeetingInput{
		Title:           req.Title,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		AttendeeEmail:   req.AttendeeEmail,
		AttendeeName:    req.AttendeeName,
		Notes:           req.Notes,
		HostEmail:       req.HostEmail,
	})
	if err != nil {
		h.writeGoogleError(w, r, err)
		return
	}
	if ev.Refreshed != nil {
		h.setTokens(w, ev.Refreshed)
	}
	writeJSON(w, http.StatusOK, meetingResponse{
		Success:   true,
		EventID:   ev.ID,
		EventLink: ev.HTMLLink,
		MeetLink:  ev.MeetLink,
		Start:     ev.Start,
		End:       ev.End,
	})
}

type mailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	From    string `json:"from"`
}

type mailResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
	ThreadID  string `json:"threadId"`
}

// SendMail handles POST /api/gmail/send.
func (h *GoogleHandler) SendMail(w http.ResponseWriter, r *http.Request) {
	var req mailRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sent, err := h.outreach.SendEmail(r.Context(), credentials(r), outreach.MailInput(req))
	if err != nil {
		h.writeGoogleError(w, r, err)
		return
	}
	if sent.Refreshed != nil {
		h.setTokens(w, sent.Refreshed)
	}
	writeJSON(w, http.StatusOK, mailResponse{
		Success:   true,
		MessageID: sent.MessageID,
		ThreadID:  sent.ThreadID,
	})
}

// writeGoogleError drops stale credentials so the client starts a fresh
// consent flow.
func (h *GoogleHandler) writeGoogleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, google.ErrCredentialsExpired) {
		h.clearTokens(w)
		writeJSON(w, http.StatusUnauthorized, errorResponse{
			Error:       "google authorization expired, please reconnect",
			NeedsReauth: true,
		})
		return
	}
	writeServiceError(w, r, h.log, err)
}

func credentials(r *http.Request) google.Credentials {
	var c google.Credentials
	if ck, err := r.Cookie(cookieAccess); err == nil {
		c.AccessToken = ck.Value
	}
	if ck, err := r.Cookie(cookieRefresh); err == nil {
		c.RefreshToken = ck.Value
	}
	return c
}

func (h *GoogleHandler) setTokens(w http.ResponseWriter, tok *google.Token) {
	accessTTL := defaultAccessTTL
	if !tok.Expiry.IsZero() {
		accessTTL = tok.Expiry.Sub(h.now())
	}
	if accessTTL > 0 && tok.AccessToken != "" {
		h.setCookie(w, cookieAccess, tok.AccessToken, accessTTL, true)
	}
	if tok.RefreshToken != "" {
		h.setCookie(w, cookieRefresh, tok.RefreshToken, refreshCookieTTL, true)
	}
	h.setCookie(w, cookieConnected, "true", refreshCookieTTL, false)
}

func (h *GoogleHandler) clearTokens(w http.ResponseWriter) {
	for _, name := range []string{cookieAccess, cookieRefresh, cookieConnected} {
		h.expire(w, name, "/")
	}
}

func (h *GoogleHandler) setCookie(w http.ResponseWriter, name, value string, ttl time.Duration, httpOnly bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: httpOnly,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *GoogleHandler) expire(w http.ResponseWriter, name, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		HttpOnly: name != cookieConnected,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func newState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func sameState(a, b string) bool {
	return a != "" && subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
