package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/pkg/ctxutil"
)

// CreateCompany adds a company to the pipeline. Unless a stage is given it
// lands on the lowest-order stage.
func (s *Service) CreateCompany(ctx context.Context, input CreateCompanyInput) (*domain.Company, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	c := &domain.Company{
		CompanyName:           strings.TrimSpace(input.CompanyName),
		FounderName:           strings.TrimSpace(input.FounderName),
		FounderEmail:          strings.TrimSpace(input.FounderEmail),
		AnalystID:             input.AnalystID,
		CompanyRound:          input.CompanyRound,
		PriorityLevel:         input.PriorityLevel,
		ShareType:             input.ShareType,
		DealSourceType:        input.DealSourceType,
		DealSourceNameID:      input.DealSourceNameID,
		IndustryID:            input.IndustryID,
		SubIndustry:           trimOrNil(input.SubIndustry),
		TotalFundRaise:        input.TotalFundRaise,
		Valuation:             input.Valuation,
		GoogleDriveLink:       trimOrNil(input.GoogleDriveLink),
		CustomTags:            normalizeTags(input.CustomTags),
		SLADeadline:           input.SLADeadline,
		LinkedPreviousEntryID: input.LinkedPreviousEntryID,
	}
	c.QuickSummary = trimOrNil(input.QuickSummary)
	applyDefaults(c)

	var (
		created      *domain.Company
		entry        *domain.ActivityLog
		notification *domain.Notification
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		stage, err := s.resolveStage(txCtx, input)
		if err != nil {
			return err
		}
		c.PipelineStageID = &stage.ID

		var analyst *domain.Profile
		if input.AnalystID != nil {
			analyst, err = s.profiles.GetByID(txCtx, *input.AnalystID)
			if err != nil {
				return fmt.Errorf("get analyst: %w", err)
			}
		}

		created, err = s.companies.Create(txCtx, c)
		if err != nil {
			return fmt.Errorf("create company: %w", err)
		}

		entry, err = s.activity.Create(txCtx, &domain.ActivityLog{
			CompanyID: created.ID,
			UserID:    actorID(userID),
			Action:    domain.ActivityCreated,
			Details:   fmt.Sprintf("Added %s to pipeline", created.CompanyName),
			ToStageID: created.PipelineStageID,
		})
		if err != nil {
			return fmt.Errorf("activity log: %w", err)
		}

		if analyst != nil {
			notification, err = s.notifications.Create(txCtx, assignmentNotification(created, analyst.ID))
			if err != nil {
				return fmt.Errorf("notify analyst: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.observe("create")
	s.publish(ctx, domain.TableCompanies, domain.OpInsert, created.ID, created)
	s.publish(ctx, domain.TableActivityLogs, domain.OpInsert, entry.ID, entry)
	if notification != nil {
		s.publish(ctx, domain.TableNotifications, domain.OpInsert, notification.ID, notification)
	}

	s.log.InfoContext(ctx, "company created",
		slog.String("user_id", userID.String()),
		slog.String("company_id", created.ID.String()),
		slog.String("name", created.CompanyName),
	)

	return created, nil
}

// resolveStage returns the requested stage, or the lowest-order one.
func (s *Service) resolveStage(ctx context.Context, input CreateCompanyInput) (*domain.PipelineStage, error) {
	if input.PipelineStageID != nil {
		stage, err := s.stages.GetByID(ctx, *input.PipelineStageID)
		if err != nil {
			return nil, fmt.Errorf("get stage: %w", err)
		}
		return stage, nil
	}

	stages, err := s.stages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	lowest := domain.LowestStage(stages)
	if lowest == nil {
		return nil, domain.NewValidationError("pipelineStageId", "no pipeline stages configured")
	}
	return lowest, nil
}

func applyDefaults(c *domain.Company) {
	if c.CompanyRound == "" {
		c.CompanyRound = domain.RoundSeed
	}
	if c.PriorityLevel == "" {
		c.PriorityLevel = domain.PriorityMedium
	}
	if c.ShareType == "" {
		c.ShareType = domain.ShareTypePrimary
	}
	if c.DealSourceType == "" {
		c.DealSourceType = domain.DealSourceFounderNetwork
	}
}

// normalizeTags trims, drops empties and de-duplicates while keeping order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func assignmentNotification(c *domain.Company, analystID uuid.UUID) *domain.Notification {
	return &domain.Notification{
		UserID:    analystID,
		Type:      domain.NotificationAssignment,
		Title:     "New Assignment",
		Message:   fmt.Sprintf("%s has been assigned to you", c.CompanyName),
		CompanyID: &c.ID,
	}
}
