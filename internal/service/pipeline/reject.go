package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/pkg/ctxutil"
)

// Reject completes the rejection flow: the company becomes terminal, the
// reasons and communication intent are snapshotted, and the activity is
// logged. No email is sent.
func (s *Service) Reject(ctx context.Context, input RejectInput) (*domain.RejectionRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		record   *domain.RejectionRecord
		entry    *domain.ActivityLog
		rejected *domain.Company
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.companies.GetForUpdate(txCtx, input.CompanyID)
		if err != nil {
			return fmt.Errorf("get company: %w", err)
		}
		if !current.IsActive() {
			return domain.ErrTerminal
		}

		if err := s.checkReasons(txCtx, input.Reasons); err != nil {
			return err
		}

		stageName := "current stage"
		if current.PipelineStageID != nil {
			stage, err := s.stages.GetByID(txCtx, *current.PipelineStageID)
			if err != nil {
				return fmt.Errorf("get stage: %w", err)
			}
			stageName = stage.Name
		}

		if err := s.companies.SetTerminalStatus(txCtx, current.ID, domain.TerminalRejected); err != nil {
			return fmt.Errorf("set terminal status: %w", err)
		}

		draft := trimOrNil(input.EmailDraft)
		recipient := trimOrNil(input.EmailRecipient)
		if recipient == nil && input.CommunicationMethod == domain.CommunicationEmail {
			recipient = &current.FounderEmail
		}

		record, err = s.rejections.CreateRecord(txCtx, &domain.RejectionRecord{
			CompanyID:           current.ID,
			Reasons:             input.Reasons,
			RejectionStageID:    current.PipelineStageID,
			CommunicationMethod: input.CommunicationMethod,
			EmailRecipient:      recipient,
			EmailDraft:          draft,
			EmailSent:           domain.RejectionEmailSent(input.CommunicationMethod, draft),
		})
		if err != nil {
			return fmt.Errorf("create rejection record: %w", err)
		}

		entry, err = s.activity.Create(txCtx, &domain.ActivityLog{
			CompanyID:   current.ID,
			UserID:      actorID(userID),
			Action:      domain.ActivityRejected,
			Details:     fmt.Sprintf("Rejected at %s", stageName),
			FromStageID: current.PipelineStageID,
		})
		if err != nil {
			return fmt.Errorf("activity log: %w", err)
		}

		rejected, err = s.companies.GetByID(txCtx, current.ID)
		if err != nil {
			return fmt.Errorf("reload company: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.observe("reject")
	s.publish(ctx, domain.TableCompanies, domain.OpUpdate, rejected.ID, rejected)
	s.publish(ctx, domain.TableRejectionRecords, domain.OpInsert, record.ID, record)
	s.publish(ctx, domain.TableActivityLogs, domain.OpInsert, entry.ID, entry)

	s.log.InfoContext(ctx, "company rejected",
		slog.String("user_id", userID.String()),
		slog.String("company_id", input.CompanyID.String()),
		slog.String("method", string(input.CommunicationMethod)),
		slog.Bool("email_sent", record.EmailSent),
	)

	return record, nil
}

// checkReasons verifies every category exists and every sub-reason belongs
// to its category.
func (s *Service) checkReasons(ctx context.Context, reasons []domain.RejectionReason) error {
	ids := make([]uuid.UUID, 0, len(reasons))
	for _, r := range reasons {
		ids = append(ids, r.CategoryID)
	}

	categories, err := s.rejections.GetCategoriesByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("get rejection categories: %w", err)
	}
	known := make(map[uuid.UUID]map[uuid.UUID]bool, len(categories))
	for _, c := range categories {
		subs := make(map[uuid.UUID]bool, len(c.SubReasons))
		for _, sr := range c.SubReasons {
			subs[sr.ID] = true
		}
		known[c.ID] = subs
	}

	var errs []domain.FieldError
	for _, r := range reasons {
		subs, ok := known[r.CategoryID]
		if !ok {
			errs = append(errs, domain.FieldError{Field: "reasons.categoryId", Message: "unknown category " + r.CategoryID.String()})
			continue
		}
		for _, id := range r.SubReasonIDs {
			if !subs[id] {
				errs = append(errs, domain.FieldError{Field: "reasons.subReasonIds", Message: "unknown sub-reason " + id.String()})
			}
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RejectionDraft is a pre-filled decline email for the rejection flow.
type RejectionDraft struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// DraftRejection renders the standard decline letter for the selected
// categories, in the order given.
func (s *Service) DraftRejection(ctx context.Context, companyID uuid.UUID, categoryIDs []uuid.UUID) (*RejectionDraft, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}

	names := make([]string, 0, len(categoryIDs))
	if len(categoryIDs) > 0 {
		categories, err := s.rejections.GetCategoriesByIDs(ctx, categoryIDs)
		if err != nil {
			return nil, fmt.Errorf("get rejection categories: %w", err)
		}
		byID := make(map[uuid.UUID]string, len(categories))
		for _, c := range categories {
			byID[c.ID] = c.Name
		}
		for _, id := range categoryIDs {
			if name, ok := byID[id]; ok {
				names = append(names, name)
			}
		}
	}

	return &RejectionDraft{
		Recipient: company.FounderEmail,
		Subject:   "Re: " + company.CompanyName,
		Body:      domain.RejectionEmail(company.FounderName, company.CompanyName, s.cfg.FirmName, names),
	}, nil
}

// GetRejection returns the latest rejection record of a company.
func (s *Service) GetRejection(ctx context.Context, companyID uuid.UUID) (*domain.RejectionRecord, error) {
	rec, err := s.rejections.GetLatestByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("get rejection: %w", err)
	}
	return rec, nil
}
