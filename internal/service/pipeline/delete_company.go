package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/pkg/ctxutil"
)

// DeleteCompany hard-deletes a company. Comments, activity, notifications and
// rejection records go with it through the foreign keys.
func (s *Service) DeleteCompany(ctx context.Context, companyID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.companies.Delete(ctx, companyID); err != nil {
		return fmt.Errorf("delete company: %w", err)
	}

	s.observe("delete")
	s.publish(ctx, domain.TableCompanies, domain.OpDelete, companyID, nil)

	s.log.InfoContext(ctx, "company deleted",
		slog.String("user_id", userID.String()),
		slog.String("company_id", companyID.String()),
	)

	return nil
}
