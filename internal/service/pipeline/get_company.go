package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

// GetCompany returns a company by id, terminal ones included.
func (s *Service) GetCompany(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// ListCompanies returns companies newest first. The zero view is active.
func (s *Service) ListCompanies(ctx context.Context, f domain.CompanyFilter) ([]domain.Company, error) {
	if f.View == "" {
		f.View = domain.ViewActive
	}
	if !f.View.IsValid() {
		return nil, domain.NewValidationError("view", "must be one of active, terminal, all")
	}
	if f.TerminalStatus != nil && !f.TerminalStatus.IsValid() {
		return nil, domain.NewValidationError("terminalStatus", "invalid value")
	}

	companies, err := s.companies.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

// ListActivity returns a company's activity log, newest first.
func (s *Service) ListActivity(ctx context.Context, companyID uuid.UUID) ([]domain.ActivityLog, error) {
	if _, err := s.companies.GetByID(ctx, companyID); err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}

	entries, err := s.activity.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return entries, nil
}
