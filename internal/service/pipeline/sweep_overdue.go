package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

// SweepResult reports what a sweep changed.
type SweepResult struct {
	Flagged  int
	Notified int
}

// SweepOverdue flags active companies past their SLA deadline or the overdue
// threshold, and notifies each one's analyst once. Already flagged companies
// are skipped, so repeated sweeps do not duplicate notifications.
func (s *Service) SweepOverdue(ctx context.Context) (SweepResult, error) {
	now := s.now()

	var (
		flagged []domain.Company
		created []domain.Notification
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		flagged, err = s.companies.MarkOverdue(txCtx, now, s.cfg.Thresholds.OverdueDays)
		if err != nil {
			return fmt.Errorf("mark overdue: %w", err)
		}

		batch := make([]domain.Notification, 0, len(flagged))
		for i := range flagged {
			c := &flagged[i]
			if c.AnalystID == nil {
				continue
			}
			batch = append(batch, domain.Notification{
				UserID:    *c.AnalystID,
				Type:      domain.NotificationOverdue,
				Title:     "Company Overdue",
				Message:   fmt.Sprintf("%s has been in the pipeline for %d days", c.CompanyName, c.DaysInPipeline(now)),
				CompanyID: &c.ID,
			})
		}
		if len(batch) == 0 {
			return nil
		}

		created, err = s.notifications.CreateBatch(txCtx, batch)
		if err != nil {
			return fmt.Errorf("notify overdue: %w", err)
		}
		return nil
	})
	if err != nil {
		return SweepResult{}, err
	}

	for i := range flagged {
		s.publish(ctx, domain.TableCompanies, domain.OpUpdate, flagged[i].ID, &flagged[i])
	}
	for i := range created {
		s.publish(ctx, domain.TableNotifications, domain.OpInsert, created[i].ID, &created[i])
	}
	if len(flagged) > 0 {
		s.mutations.WithLabelValues("sweep_overdue").Add(float64(len(flagged)))
	}

	s.log.InfoContext(ctx, "overdue sweep finished",
		slog.Int("flagged", len(flagged)),
		slog.Int("notified", len(created)),
	)

	return SweepResult{Flagged: len(flagged), Notified: len(created)}, nil
}
