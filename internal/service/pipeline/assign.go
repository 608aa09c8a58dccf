package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/pkg/ctxutil"
)

// Assign sets or (with nil) clears the company's analyst. Only a non-nil
// analyst receives a notification. Terminal companies cannot be assigned.
func (s *Service) Assign(ctx context.Context, companyID uuid.UUID, analystID *uuid.UUID) (*domain.Company, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if companyID == uuid.Nil {
		return nil, domain.NewValidationError("companyId", "required")
	}
	if analystID != nil && *analystID == uuid.Nil {
		analystID = nil
	}

	var (
		assigned     *domain.Company
		entry        *domain.ActivityLog
		notification *domain.Notification
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.companies.GetForUpdate(txCtx, companyID)
		if err != nil {
			return fmt.Errorf("get company: %w", err)
		}
		if !current.IsActive() {
			return domain.ErrTerminal
		}

		details := "Unassigned"
		if analystID != nil {
			analyst, err := s.profiles.GetByID(txCtx, *analystID)
			if err != nil {
				return fmt.Errorf("get analyst: %w", err)
			}
			details = fmt.Sprintf("Assigned to %s", analystName(analyst))
		}

		if err := s.companies.SetAnalyst(txCtx, companyID, analystID); err != nil {
			return fmt.Errorf("set analyst: %w", err)
		}

		entry, err = s.activity.Create(txCtx, &domain.ActivityLog{
			CompanyID: companyID,
			UserID:    actorID(userID),
			Action:    domain.ActivityAssigned,
			Details:   details,
		})
		if err != nil {
			return fmt.Errorf("activity log: %w", err)
		}

		assigned, err = s.companies.GetByID(txCtx, companyID)
		if err != nil {
			return fmt.Errorf("reload company: %w", err)
		}

		if analystID != nil {
			notification, err = s.notifications.Create(txCtx, assignmentNotification(assigned, *analystID))
			if err != nil {
				return fmt.Errorf("notify analyst: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.observe("assign")
	s.publish(ctx, domain.TableCompanies, domain.OpUpdate, assigned.ID, assigned)
	s.publish(ctx, domain.TableActivityLogs, domain.OpInsert, entry.ID, entry)
	if notification != nil {
		s.publish(ctx, domain.TableNotifications, domain.OpInsert, notification.ID, notification)
	}

	s.log.InfoContext(ctx, "company assigned",
		slog.String("user_id", userID.String()),
		slog.String("company_id", companyID.String()),
		slog.Bool("unassigned", analystID == nil),
	)

	return assigned, nil
}

func analystName(p *domain.Profile) string {
	if p.FullName != "" {
		return p.FullName
	}
	return "analyst"
}
