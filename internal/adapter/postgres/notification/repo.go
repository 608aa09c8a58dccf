// Package notification implements the per-user notification inbox repository.
package notification

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/dealflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

const table = "notifications"

var columns = []string{"id", "user_id", "type", "title", "message", "company_id", "read", "created_at"}

const insertSQL = `
INSERT INTO notifications (user_id, type, title, message, company_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, type, title, message, company_id, read, created_at`

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new notification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUser returns the newest notifications of a user, at most limit.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit))

	notifications := []domain.Notification{}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &notifications, q); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// CountUnread returns how many unread notifications a user has.
func (r *Repo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().Select("count(*)").From(table).
		Where(squirrel.Eq{"user_id": userID, "read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts one notification.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, insertSQL,
		n.UserID, string(n.Type), n.Title, n.Message, n.CompanyID)

	out, err := scanNotification(row)
	if err != nil {
		return nil, postgres.MapError(err, "notification for user", n.UserID)
	}
	return out, nil
}

// CreateBatch inserts several notifications in one round trip.
func (r *Repo) CreateBatch(ctx context.Context, ns []domain.Notification) ([]domain.Notification, error) {
	if len(ns) == 0 {
		return []domain.Notification{}, nil
	}

	batch := &pgx.Batch{}
	for _, n := range ns {
		batch.Queue(insertSQL, n.UserID, string(n.Type), n.Title, n.Message, n.CompanyID)
	}

	br := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer br.Close()

	out := make([]domain.Notification, 0, len(ns))
	for i := range ns {
		n, err := scanNotification(br.QueryRow())
		if err != nil {
			return nil, postgres.MapError(err, "notification for user", ns[i].UserID)
		}
		out = append(out, *n)
	}
	return out, nil
}

// MarkAllRead sets read = true on every unread notification of the user in
// one statement and returns how many rows changed.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	q := postgres.Builder().Update(table).
		Set("read", true).
		Where(squirrel.Eq{"user_id": userID, "read": false})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, fmt.Errorf("mark notifications read: %w", err)
	}
	return n, nil
}

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var (
		n       domain.Notification
		typ     string
		company *uuid.UUID
	)
	if err := row.Scan(&n.ID, &n.UserID, &typ, &n.Title, &n.Message, &company, &n.Read, &n.CreatedAt); err != nil {
		return nil, err
	}
	n.Type = domain.NotificationType(typ)
	n.CompanyID = company
	return &n, nil
}
