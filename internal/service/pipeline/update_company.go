package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/pkg/ctxutil"
)

// UpdateCompany writes only the supplied fields. Stage and analyst never
// change here; use MoveStage and Assign. Last writer wins.
func (s *Service) UpdateCompany(ctx context.Context, input UpdateCompanyInput) (*domain.Company, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := normalizeUpdate(input.CompanyUpdateParams)

	var (
		updated *domain.Company
		entry   *domain.ActivityLog
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.companies.GetForUpdate(txCtx, input.CompanyID)
		if err != nil {
			return fmt.Errorf("get company: %w", err)
		}

		if params.TerminalStatus != nil {
			switch {
			case !current.IsActive() && *params.TerminalStatus != *current.TerminalStatus:
				return domain.ErrTerminal
			case *params.TerminalStatus == "":
				// Clearing an unset status is a no-op.
				params.TerminalStatus = nil
			}
		}

		updated, err = s.companies.Update(txCtx, input.CompanyID, params)
		if err != nil {
			return fmt.Errorf("update company: %w", err)
		}

		details := "Updated company details"
		if current.IsActive() && !updated.IsActive() {
			details = fmt.Sprintf("Marked as %s", *updated.TerminalStatus)
		}
		entry, err = s.activity.Create(txCtx, &domain.ActivityLog{
			CompanyID: updated.ID,
			UserID:    actorID(userID),
			Action:    domain.ActivityUpdated,
			Details:   details,
		})
		if err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.observe("update")
	s.publish(ctx, domain.TableCompanies, domain.OpUpdate, updated.ID, updated)
	s.publish(ctx, domain.TableActivityLogs, domain.OpInsert, entry.ID, entry)

	s.log.InfoContext(ctx, "company updated",
		slog.String("user_id", userID.String()),
		slog.String("company_id", updated.ID.String()),
	)

	return updated, nil
}

// normalizeUpdate trims text fields. Required text keeps its value; optional
// text trimmed to "" clears the column.
func normalizeUpdate(p domain.CompanyUpdateParams) domain.CompanyUpdateParams {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		t := strings.TrimSpace(*s)
		return &t
	}
	p.CompanyName = trim(p.CompanyName)
	p.FounderName = trim(p.FounderName)
	p.FounderEmail = trim(p.FounderEmail)
	p.SubIndustry = trim(p.SubIndustry)
	p.GoogleDriveLink = trim(p.GoogleDriveLink)
	p.QuickSummary = trim(p.QuickSummary)
	if p.CustomTags != nil {
		tags := normalizeTags(*p.CustomTags)
		p.CustomTags = &tags
	}
	return p
}
