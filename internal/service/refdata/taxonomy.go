package refdata

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

// ListRejectionCategories returns the two-level rejection taxonomy.
func (s *Service) ListRejectionCategories(ctx context.Context) ([]domain.RejectionCategory, error) {
	categories, err := cached(ctx, s.cache, keyTaxonomy, s.taxonomy.ListCategories)
	if err != nil {
		return nil, fmt.Errorf("list rejection categories: %w", err)
	}
	return categories, nil
}

// AddRejectionCategory creates a top-level rejection category.
func (s *Service) AddRejectionCategory(ctx context.Context, name string) (*domain.RejectionCategory, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	cat, err := s.taxonomy.CreateCategory(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create rejection category: %w", err)
	}

	s.changed(ctx, domain.TableRejectionTaxonomy, domain.OpInsert, cat.ID, cat)
	return cat, nil
}

// RenameRejectionCategory changes a category name.
func (s *Service) RenameRejectionCategory(ctx context.Context, id uuid.UUID, name string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}

	if err := s.taxonomy.RenameCategory(ctx, id, name); err != nil {
		return fmt.Errorf("rename rejection category: %w", err)
	}

	s.changed(ctx, domain.TableRejectionTaxonomy, domain.OpUpdate, id, namedRow{ID: id, Name: name})
	return nil
}

// DeleteRejectionCategory deletes the category's sub-reasons and then the
// category, in one transaction.
func (s *Service) DeleteRejectionCategory(ctx context.Context, id uuid.UUID) error {
	var removed int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		removed, err = s.taxonomy.DeleteSubReasonsByCategory(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete sub-reasons: %w", err)
		}
		if err := s.taxonomy.DeleteCategory(txCtx, id); err != nil {
			return fmt.Errorf("delete rejection category: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.changed(ctx, domain.TableRejectionTaxonomy, domain.OpDelete, id, nil)
	s.log.InfoContext(ctx, "rejection category deleted",
		slog.String("category_id", id.String()),
		slog.Int64("sub_reasons", removed),
	)
	return nil
}

// AddSubReason creates a sub-reason under categoryID.
func (s *Service) AddSubReason(ctx context.Context, categoryID uuid.UUID, name string) (*domain.RejectionSubReason, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	sub, err := s.taxonomy.AddSubReason(ctx, categoryID, name)
	if err != nil {
		return nil, fmt.Errorf("add sub-reason: %w", err)
	}

	s.changed(ctx, domain.TableRejectionTaxonomy, domain.OpUpdate, categoryID, sub)
	return sub, nil
}

// RenameSubReason changes a sub-reason name.
func (s *Service) RenameSubReason(ctx context.Context, id uuid.UUID, name string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}

	if err := s.taxonomy.RenameSubReason(ctx, id, name); err != nil {
		return fmt.Errorf("rename sub-reason: %w", err)
	}

	s.changed(ctx, domain.TableRejectionTaxonomy, domain.OpUpdate, id, namedRow{ID: id, Name: name})
	return nil
}

// DeleteSubReason removes one sub-reason.
func (s *Service) DeleteSubReason(ctx context.Context, id uuid.UUID) error {
	if err := s.taxonomy.DeleteSubReason(ctx, id); err != nil {
		return fmt.Errorf("delete sub-reason: %w", err)
	}

	s.changed(ctx, domain.TableRejectionTaxonomy, domain.OpUpdate, id, nil)
	return nil
}
