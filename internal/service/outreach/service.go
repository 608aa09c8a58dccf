// Package outreach schedules founder meetings and sends founder email
// through the caller's connected Google account.
package outreach

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/dealflow-backend/internal/adapter/provider/google"
)

type provider interface {
	CreateEvent(ctx context.Context, creds google.Credentials, ev google.Event) (*google.CreatedEvent, error)
	SendMail(ctx context.Context, creds google.Credentials, m google.Mail) (*google.SentMail, error)
}

// Service validates outreach requests and hands them to Google.
type Service struct {
	log    *slog.Logger
	google provider
	loc    *time.Location
}

// NewService creates an outreach service. A nil provider leaves the
// integration disabled; every call then fails with google.ErrNotConfigured.
// Meeting times are read in loc, UTC when nil.
func NewService(log *slog.Logger, p provider, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:    log.With("service", "outreach"),
		google: p,
		loc:    loc,
	}
}

// Enabled reports whether a Google client is configured.
func (s *Service) Enabled() bool {
	return s.google != nil
}
