package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

type companyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	List(ctx context.Context, f domain.CompanyFilter) ([]domain.Company, error)
	Create(ctx context.Context, c *domain.Company) (*domain.Company, error)
	Update(ctx context.Context, id uuid.UUID, p domain.CompanyUpdateParams) (*domain.Company, error)
	SetStage(ctx context.Context, id, stageID uuid.UUID) error
	SetAnalyst(ctx context.Context, id uuid.UUID, analystID *uuid.UUID) error
	SetTerminalStatus(ctx context.Context, id uuid.UUID, status domain.TerminalStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	MarkOverdue(ctx context.Context, now time.Time, overdueDays int) ([]domain.Company, error)
}

type stageRepo interface {
	List(ctx context.Context) ([]domain.PipelineStage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PipelineStage, error)
}

type activityRepo interface {
	Create(ctx context.Context, e *domain.ActivityLog) (*domain.ActivityLog, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.ActivityLog, error)
}

type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	CreateBatch(ctx context.Context, ns []domain.Notification) ([]domain.Notification, error)
}

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

type rejectionRepo interface {
	GetCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.RejectionCategory, error)
	CreateRecord(ctx context.Context, rec *domain.RejectionRecord) (*domain.RejectionRecord, error)
	GetLatestByCompany(ctx context.Context, companyID uuid.UUID) (*domain.RejectionRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type publisher interface {
	Publish(ctx context.Context, ev domain.ChangeEvent) error
}

// Config holds the pipeline tunables.
type Config struct {
	Thresholds domain.Thresholds
	FirmName   string
}

// Service owns the company mutation contract: every multi-row mutation runs
// in one transaction and change events are published after commit.
type Service struct {
	companies     companyRepo
	stages        stageRepo
	activity      activityRepo
	notifications notificationRepo
	profiles      profileRepo
	rejections    rejectionRepo
	tx            txManager
	bus           publisher
	mutations     *prometheus.CounterVec
	cfg           Config
	now           func() time.Time
	log           *slog.Logger
}

// NewService creates a new pipeline service. mutations may be nil.
func NewService(
	log *slog.Logger,
	companies companyRepo,
	stages stageRepo,
	activity activityRepo,
	notifications notificationRepo,
	profiles profileRepo,
	rejections rejectionRepo,
	tx txManager,
	bus publisher,
	mutations *prometheus.CounterVec,
	cfg Config,
) *Service {
	if mutations == nil {
		mutations = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "pipeline_mutations_total"}, []string{"op"})
	}
	cfg.Thresholds = cfg.Thresholds.WithDefaults()
	return &Service{
		companies:     companies,
		stages:        stages,
		activity:      activity,
		notifications: notifications,
		profiles:      profiles,
		rejections:    rejections,
		tx:            tx,
		bus:           bus,
		mutations:     mutations,
		cfg:           cfg,
		now:           time.Now,
		log:           log.With("service", "pipeline"),
	}
}

// publish emits a change event. Failures are logged and never surface: the
// write has already been committed.
func (s *Service) publish(ctx context.Context, table string, op domain.ChangeOp, id uuid.UUID, row any) {
	ev, err := domain.NewChangeEvent(table, op, id, row)
	if err == nil {
		err = s.bus.Publish(ctx, ev)
	}
	if err != nil {
		s.log.WarnContext(ctx, "publish change event failed",
			slog.String("table", table),
			slog.String("op", string(op)),
			slog.String("id", id.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) observe(op string) {
	s.mutations.WithLabelValues(op).Inc()
}

// actorID returns the caller's id for activity attribution.
func actorID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
