// Package google wraps the Google OAuth consent flow together with the
// Calendar and Gmail calls made on behalf of a connected user.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// ErrCredentialsExpired means Google rejected the stored tokens and the user
// has to go through consent again.
var ErrCredentialsExpired = errors.New("google credentials expired")

// ErrNotConfigured is returned when no OAuth client is configured.
var ErrNotConfigured = errors.New("google integration not configured")

// Scopes requested at consent.
var Scopes = []string{
	gmail.GmailSendScope,
	calendar.CalendarScope,
	calendar.CalendarEventsScope,
}

// Config holds the OAuth client. Endpoint defaults to Google's.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Endpoint     oauth2.Endpoint
	Timeout      time.Duration
}

// Credentials are the tokens the browser holds for a connected user. Either
// token may be empty; an empty access token forces a refresh.
type Credentials struct {
	AccessToken  string
	RefreshToken string
}

// Token is the outcome of a code exchange or a refresh.
type Token struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// Client talks to Google on behalf of a user.
type Client struct {
	oauth      *oauth2.Config
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client. It returns ErrNotConfigured without client
// credentials so callers can keep the integration switched off.
func New(cfg Config, log *slog.Logger) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, ErrNotConfigured
	}
	endpoint := cfg.Endpoint
	if endpoint.TokenURL == "" {
		endpoint = endpoints.Google
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     endpoint,
			Scopes:       Scopes,
		},
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With("adapter", "google"),
	}, nil
}

// AuthURL returns the consent page URL. Offline access with a forced
// consent prompt makes Google hand out a refresh token every time.
func (c *Client) AuthURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
}

// Exchange trades an authorization code for tokens.
func (c *Client) Exchange(ctx context.Context, code string) (*Token, error) {
	tok, err := c.oauth.Exchange(c.withHTTPClient(ctx), code)
	if err != nil {
		c.log.ErrorContext(ctx, "google code exchange failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("exchange code: %w", err)
	}
	return &Token{AccessToken: tok.AccessToken, RefreshToken: tok.RefreshToken, Expiry: tok.Expiry}, nil
}

// session is one authorized call. It remembers the access token it started
// with so a silent refresh can be reported back to the caller.
type session struct {
	ts      oauth2.TokenSource
	initial string
	http    *http.Client
}

func (c *Client) session(ctx context.Context, creds Credentials) (*session, error) {
	if creds.AccessToken == "" && creds.RefreshToken == "" {
		return nil, ErrCredentialsExpired
	}
	ctx = c.withHTTPClient(ctx)
	ts := c.oauth.TokenSource(ctx, &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		TokenType:    "Bearer",
	})
	return &session{ts: ts, initial: creds.AccessToken, http: oauth2.NewClient(ctx, ts)}, nil
}

// refreshed returns the new token if the session had to refresh.
func (s *session) refreshed() *Token {
	tok, err := s.ts.Token()
	if err != nil || tok.AccessToken == s.initial {
		return nil
	}
	return &Token{AccessToken: tok.AccessToken, RefreshToken: tok.RefreshToken, Expiry: tok.Expiry}
}

func (s *session) options() []option.ClientOption {
	return []option.ClientOption{option.WithHTTPClient(s.http)}
}

func (c *Client) withHTTPClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// mapError turns Google's 401 and failed refreshes into ErrCredentialsExpired.
func mapError(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized {
		return fmt.Errorf("%s: %w", op, ErrCredentialsExpired)
	}
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%s: %w", op, ErrCredentialsExpired)
	}
	if errors.Is(err, ErrCredentialsExpired) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
