package refdata

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

// ListIndustries returns industries by name, each with its sub-industries.
func (s *Service) ListIndustries(ctx context.Context) ([]domain.Industry, error) {
	industries, err := cached(ctx, s.cache, keyIndustries, s.industries.List)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}
	return industries, nil
}

// AddIndustry creates an industry.
func (s *Service) AddIndustry(ctx context.Context, name string) (*domain.Industry, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	industry, err := s.industries.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create industry: %w", err)
	}

	s.changed(ctx, domain.TableIndustries, domain.OpInsert, industry.ID, industry)
	s.log.InfoContext(ctx, "industry added", slog.String("industry_id", industry.ID.String()))
	return industry, nil
}

// RenameIndustry changes an industry's name.
func (s *Service) RenameIndustry(ctx context.Context, id uuid.UUID, name string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}

	if err := s.industries.Rename(ctx, id, name); err != nil {
		return fmt.Errorf("rename industry: %w", err)
	}

	s.changed(ctx, domain.TableIndustries, domain.OpUpdate, id, namedRow{ID: id, Name: name})
	return nil
}

// DeleteIndustry removes an industry and its sub-industries. Companies keep
// a null industry.
func (s *Service) DeleteIndustry(ctx context.Context, id uuid.UUID) error {
	if err := s.industries.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete industry: %w", err)
	}

	s.changed(ctx, domain.TableIndustries, domain.OpDelete, id, nil)
	s.log.InfoContext(ctx, "industry deleted", slog.String("industry_id", id.String()))
	return nil
}

// AddSubIndustry creates a sub-industry under industryID.
func (s *Service) AddSubIndustry(ctx context.Context, industryID uuid.UUID, name string) (*domain.SubIndustry, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	sub, err := s.industries.AddSub(ctx, industryID, name)
	if err != nil {
		return nil, fmt.Errorf("add sub-industry: %w", err)
	}

	s.changed(ctx, domain.TableIndustries, domain.OpUpdate, industryID, sub)
	return sub, nil
}

// DeleteSubIndustry removes a sub-industry.
func (s *Service) DeleteSubIndustry(ctx context.Context, id uuid.UUID) error {
	if err := s.industries.DeleteSub(ctx, id); err != nil {
		return fmt.Errorf("delete sub-industry: %w", err)
	}

	s.changed(ctx, domain.TableIndustries, domain.OpUpdate, id, nil)
	return nil
}
