// Package dashboard computes read-only projections over the company list:
// pipeline statistics, SLA labels, analyst workload and the table and board
// views. Nothing here writes.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

type companyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	List(ctx context.Context, f domain.CompanyFilter) ([]domain.Company, error)
}

type stageRepo interface {
	List(ctx context.Context) ([]domain.PipelineStage, error)
}

type industryRepo interface {
	List(ctx context.Context) ([]domain.Industry, error)
}

type profileRepo interface {
	List(ctx context.Context) ([]domain.Profile, error)
}

// Service builds dashboard projections.
type Service struct {
	companies  companyRepo
	stages     stageRepo
	industries industryRepo
	profiles   profileRepo
	thresholds domain.Thresholds
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new dashboard service. Unset thresholds fall back to
// domain.DefaultThresholds field by field.
func NewService(
	log *slog.Logger,
	companies companyRepo,
	stages stageRepo,
	industries industryRepo,
	profiles profileRepo,
	thresholds domain.Thresholds,
) *Service {
	thresholds = thresholds.WithDefaults()
	return &Service{
		companies:  companies,
		stages:     stages,
		industries: industries,
		profiles:   profiles,
		thresholds: thresholds,
		now:        time.Now,
		log:        log.With("service", "dashboard"),
	}
}

// snapshot is everything a projection may need, loaded in parallel.
type snapshot struct {
	companies  []domain.Company
	stages     []domain.PipelineStage
	industries []domain.Industry
	profiles   []domain.Profile
}

type loadSet struct {
	industries bool
	profiles   bool
}

func (s *Service) load(ctx context.Context, view domain.CompanyView, want loadSet) (*snapshot, error) {
	var snap snapshot

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		snap.companies, err = s.companies.List(gctx, domain.CompanyFilter{View: view})
		if err != nil {
			return fmt.Errorf("list companies: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		snap.stages, err = s.stages.List(gctx)
		if err != nil {
			return fmt.Errorf("list stages: %w", err)
		}
		return nil
	})

	if want.industries {
		g.Go(func() error {
			var err error
			snap.industries, err = s.industries.List(gctx)
			if err != nil {
				return fmt.Errorf("list industries: %w", err)
			}
			return nil
		})
	}

	if want.profiles {
		g.Go(func() error {
			var err error
			snap.profiles, err = s.profiles.List(gctx)
			if err != nil {
				return fmt.Errorf("list profiles: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// CompanySLA is the SLA classification of one company.
type CompanySLA struct {
	CompanyID      uuid.UUID        `json:"companyId"`
	DaysInPipeline int              `json:"daysInPipeline"`
	Status         domain.SLAStatus `json:"status"`
	Deadline       *time.Time       `json:"slaDeadline"`
}

// SLA classifies a single company. Terminal companies are classified too;
// callers decide whether that is meaningful.
func (s *Service) SLA(ctx context.Context, companyID uuid.UUID) (*CompanySLA, error) {
	c, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	now := s.now()
	return &CompanySLA{
		CompanyID:      c.ID,
		DaysInPipeline: c.DaysInPipeline(now),
		Status:         c.SLA(now, s.thresholds),
		Deadline:       c.SLADeadline,
	}, nil
}
