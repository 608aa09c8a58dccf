package outreach

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/dealflow-backend/internal/adapter/provider/google"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/pkg/ctxutil"
)

// ScheduleMeeting puts a Meet invite on the caller's calendar.
func (s *Service) ScheduleMeeting(ctx context.Context, creds google.Credentials, in MeetingInput) (*google.CreatedEvent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if s.google == nil {
		return nil, google.ErrNotConfigured
	}
	if err := in.Validate(s.loc); err != nil {
		return nil, err
	}

	ev, err := s.google.CreateEvent(ctx, creds, google.Event{
		Title:         in.Title,
		Start:         in.start,
		Duration:      time.Duration(in.DurationMinutes) * time.Minute,
		AttendeeEmail: in.AttendeeEmail,
		AttendeeName:  in.AttendeeName,
		Notes:         in.Notes,
		HostEmail:     in.HostEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.InfoContext(ctx, "meeting scheduled",
		slog.String("user_id", userID.String()),
		slog.String("event_id", ev.ID),
		slog.String("attendee", in.AttendeeEmail),
	)
	return ev, nil
}

// SendEmail sends a message from the caller's Gmail account.
func (s *Service) SendEmail(ctx context.Context, creds google.Credentials, in MailInput) (*google.SentMail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if s.google == nil {
		return nil, google.ErrNotConfigured
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	sent, err := s.google.SendMail(ctx, creds, google.Mail{
		From:    in.From,
		To:      in.To,
		Subject: in.Subject,
		Body:    in.Body,
	})
	if err != nil {
		return nil, fmt.Errorf("send mail: %w", err)
	}

	s.log.InfoContext(ctx, "email sent",
		slog.String("user_id", userID.String()),
		slog.String("message_id", sent.MessageID),
	)
	return sent, nil
}
