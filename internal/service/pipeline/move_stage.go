package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/pkg/ctxutil"
)

// MoveStage places a company on targetStageID and records the transition.
// Any jump is allowed, backward included. Terminal companies cannot move.
func (s *Service) MoveStage(ctx context.Context, companyID, targetStageID uuid.UUID) (*domain.Company, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if companyID == uuid.Nil || targetStageID == uuid.Nil {
		return nil, domain.NewValidationError("stageId", "required")
	}

	var (
		moved *domain.Company
		entry *domain.ActivityLog
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.companies.GetForUpdate(txCtx, companyID)
		if err != nil {
			return fmt.Errorf("get company: %w", err)
		}

		target, err := s.stages.GetByID(txCtx, targetStageID)
		if err != nil {
			return fmt.Errorf("get target stage: %w", err)
		}

		if !current.IsActive() {
			return domain.ErrTerminal
		}

		if err := s.companies.SetStage(txCtx, companyID, target.ID); err != nil {
			return fmt.Errorf("set stage: %w", err)
		}

		entry, err = s.activity.Create(txCtx, &domain.ActivityLog{
			CompanyID:   companyID,
			UserID:      actorID(userID),
			Action:      domain.ActivityStageChange,
			Details:     fmt.Sprintf("Moved to %s", target.Name),
			FromStageID: current.PipelineStageID,
			ToStageID:   &target.ID,
		})
		if err != nil {
			return fmt.Errorf("activity log: %w", err)
		}

		moved, err = s.companies.GetByID(txCtx, companyID)
		if err != nil {
			return fmt.Errorf("reload company: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.observe("move_stage")
	s.publish(ctx, domain.TableCompanies, domain.OpUpdate, moved.ID, moved)
	s.publish(ctx, domain.TableActivityLogs, domain.OpInsert, entry.ID, entry)

	s.log.InfoContext(ctx, "company moved",
		slog.String("user_id", userID.String()),
		slog.String("company_id", companyID.String()),
		slog.String("to_stage_id", targetStageID.String()),
	)

	return moved, nil
}
