package refdata

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

// ListDealSources returns deal-source names ordered by name.
func (s *Service) ListDealSources(ctx context.Context) ([]domain.DealSourceName, error) {
	sources, err := cached(ctx, s.cache, keyDealSources, s.dealSources.List)
	if err != nil {
		return nil, fmt.Errorf("list deal sources: %w", err)
	}
	return sources, nil
}

// AddDealSource creates a deal-source name.
func (s *Service) AddDealSource(ctx context.Context, name string) (*domain.DealSourceName, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	src, err := s.dealSources.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create deal source: %w", err)
	}

	s.changed(ctx, domain.TableDealSourceNames, domain.OpInsert, src.ID, src)
	s.log.InfoContext(ctx, "deal source added", slog.String("deal_source_id", src.ID.String()))
	return src, nil
}

// RenameDealSource changes a deal-source name.
func (s *Service) RenameDealSource(ctx context.Context, id uuid.UUID, name string) (*domain.DealSourceName, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	src, err := s.dealSources.Rename(ctx, id, name)
	if err != nil {
		return nil, fmt.Errorf("rename deal source: %w", err)
	}

	s.changed(ctx, domain.TableDealSourceNames, domain.OpUpdate, src.ID, src)
	return src, nil
}

// DeleteDealSource removes a deal-source name.
func (s *Service) DeleteDealSource(ctx context.Context, id uuid.UUID) error {
	if err := s.dealSources.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete deal source: %w", err)
	}

	s.changed(ctx, domain.TableDealSourceNames, domain.OpDelete, id, nil)
	s.log.InfoContext(ctx, "deal source deleted", slog.String("deal_source_id", id.String()))
	return nil
}
