package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/pkg/ctxutil"
)

// ListLimit is how many notifications the inbox shows.
const ListLimit = 50

type notificationRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

type publisher interface {
	Publish(ctx context.Context, ev domain.ChangeEvent) error
}

// Service exposes the caller's notification inbox.
type Service struct {
	notifications notificationRepo
	bus           publisher
	log           *slog.Logger
}

// NewService creates a new notification service.
func NewService(log *slog.Logger, notifications notificationRepo, bus publisher) *Service {
	return &Service{
		notifications: notifications,
		bus:           bus,
		log:           log.With("service", "notification"),
	}
}

// Inbox is the caller's newest notifications plus the unread count.
type Inbox struct {
	Items  []domain.Notification `json:"items"`
	Unread int                   `json:"unread"`
}

// List returns the caller's newest notifications.
func (s *Service) List(ctx context.Context) (*Inbox, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.notifications.ListByUser(ctx, userID, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	unread, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count unread: %w", err)
	}
	return &Inbox{Items: items, Unread: unread}, nil
}

// UnreadCount returns how many of the caller's notifications are unread.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return n, nil
}

// MarkAllRead flips every unread notification of the caller in one
// statement and returns how many changed. Notifications arriving
// concurrently may or may not be included.
func (s *Service) MarkAllRead(ctx context.Context) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}

	if n > 0 {
		ev, err := domain.NewChangeEvent(domain.TableNotifications, domain.OpUpdate, userID, map[string]any{
			"userId": userID,
			"read":   true,
		})
		if err == nil {
			err = s.bus.Publish(ctx, ev)
		}
		if err != nil {
			s.log.WarnContext(ctx, "publish mark-read failed", slog.String("error", err.Error()))
		}
	}

	s.log.InfoContext(ctx, "notifications marked read",
		slog.String("user_id", userID.String()),
		slog.Int64("count", n),
	)
	return n, nil
}
