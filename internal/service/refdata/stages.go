package refdata

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

// ListStages returns all stages ordered by order. The slice is shared with
// the cache and must not be modified.
func (s *Service) ListStages(ctx context.Context) ([]domain.PipelineStage, error) {
	stages, err := cached(ctx, s.cache, keyStages, s.stages.List)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	return stages, nil
}

// AddStage appends a stage after the current last one.
func (s *Service) AddStage(ctx context.Context, input AddStageInput) (*domain.PipelineStage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	color := input.Color
	if color == "" {
		color = defaultStageColor
	}
	var description *string
	if input.Description != nil {
		if d := strings.TrimSpace(*input.Description); d != "" {
			description = &d
		}
	}

	var stage *domain.PipelineStage
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.stages.List(txCtx)
		if err != nil {
			return fmt.Errorf("list stages: %w", err)
		}

		stage, err = s.stages.Create(txCtx, strings.TrimSpace(input.Name), color, description, domain.NextStageOrder(existing))
		if err != nil {
			return fmt.Errorf("create stage: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.changed(ctx, domain.TablePipelineStages, domain.OpInsert, stage.ID, stage)
	s.log.InfoContext(ctx, "stage added",
		slog.String("stage_id", stage.ID.String()),
		slog.String("name", stage.Name),
		slog.Int("order", stage.Order),
	)
	return stage, nil
}

// UpdateStage changes a stage's name, color or description.
func (s *Service) UpdateStage(ctx context.Context, input UpdateStageInput) (*domain.PipelineStage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.StageUpdateParams{Color: input.Color}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		params.Name = &name
	}
	if input.Description != nil {
		d := strings.TrimSpace(*input.Description)
		params.Description = &d
	}

	stage, err := s.stages.Update(ctx, input.StageID, params)
	if err != nil {
		return nil, fmt.Errorf("update stage: %w", err)
	}

	s.changed(ctx, domain.TablePipelineStages, domain.OpUpdate, stage.ID, stage)
	s.log.InfoContext(ctx, "stage updated", slog.String("stage_id", stage.ID.String()))
	return stage, nil
}

// DeleteStage removes a stage. Companies placed on it are left without a
// stage; nothing blocks or reassigns them.
func (s *Service) DeleteStage(ctx context.Context, id uuid.UUID) error {
	if err := s.stages.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete stage: %w", err)
	}

	s.changed(ctx, domain.TablePipelineStages, domain.OpDelete, id, nil)
	s.log.InfoContext(ctx, "stage deleted", slog.String("stage_id", id.String()))
	return nil
}
