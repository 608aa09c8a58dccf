package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/internal/service/refdata"
)

// Store is the reference-data surface the pipeline writes through. The
// refdata service satisfies it, so seeding goes through the same
// validation and change events as the API.
type Store interface {
	ListStages(ctx context.Context) ([]domain.PipelineStage, error)
	AddStage(ctx context.Context, input refdata.AddStageInput) (*domain.PipelineStage, error)

	ListIndustries(ctx context.Context) ([]domain.Industry, error)
	AddIndustry(ctx context.Context, name string) (*domain.Industry, error)
	AddSubIndustry(ctx context.Context, industryID uuid.UUID, name string) (*domain.SubIndustry, error)

	ListDealSources(ctx context.Context) ([]domain.DealSourceName, error)
	AddDealSource(ctx context.Context, name string) (*domain.DealSourceName, error)

	ListRejectionCategories(ctx context.Context) ([]domain.RejectionCategory, error)
	AddRejectionCategory(ctx context.Context, name string) (*domain.RejectionCategory, error)
	AddSubReason(ctx context.Context, categoryID uuid.UUID, name string) (*domain.RejectionSubReason, error)
}
