package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/internal/service/notification"
)

type notificationService interface {
	List(ctx context.Context) (*notification.Inbox, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkAllRead(ctx context.Context) (int64, error)
}

// NotificationHandler serves the caller's notification inbox.
type NotificationHandler struct {
	notifications notificationService
	log           *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(log *slog.Logger, svc notificationService) *NotificationHandler {
	return &NotificationHandler{notifications: svc, log: log.With("handler", "notifications")}
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	inbox, err := h.notifications.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if inbox.Items == nil {
		inbox.Items = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, inbox)
}

// UnreadCount handles GET /api/notifications/unread-count.
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.notifications.UnreadCount(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"unread": n})
}

// MarkAllRead handles POST /api/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.notifications.MarkAllRead(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": n})
}
