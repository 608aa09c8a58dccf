// Package team resolves bearer identities to profiles and manages team
// membership: listing, role changes and invitations.
package team

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.Profile, error)
}

type mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type publisher interface {
	Publish(ctx context.Context, ev domain.ChangeEvent) error
}

// Config carries the settings team operations depend on.
type Config struct {
	SuperAdminEmail string
	SiteURL         string
	AppName         string
	// ResolveTTL bounds how long a resolved identity is reused.
	ResolveTTL time.Duration
}

// Service manages team members.
type Service struct {
	profiles profileRepo
	mail     mailer
	bus      publisher
	cfg      Config
	resolved *cache.Cache
	log      *slog.Logger
}

// NewService creates a new team service.
func NewService(log *slog.Logger, profiles profileRepo, mail mailer, bus publisher, cfg Config) *Service {
	if cfg.ResolveTTL <= 0 {
		cfg.ResolveTTL = 30 * time.Second
	}
	if cfg.AppName == "" {
		cfg.AppName = "VC-SAAS"
	}
	cfg.SuperAdminEmail = strings.TrimSpace(cfg.SuperAdminEmail)
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")

	return &Service{
		profiles: profiles,
		mail:     mail,
		bus:      bus,
		cfg:      cfg,
		resolved: cache.New(cfg.ResolveTTL, 2*cfg.ResolveTTL),
		log:      log.With("service", "team"),
	}
}

// IsSuperAdmin reports whether email is the configured super-admin address.
func (s *Service) IsSuperAdmin(email string) bool {
	return s.cfg.SuperAdminEmail != "" && strings.EqualFold(strings.TrimSpace(email), s.cfg.SuperAdminEmail)
}

func (s *Service) forget() {
	s.resolved.Flush()
}

func (s *Service) publish(ctx context.Context, op domain.ChangeOp, p *domain.Profile) {
	ev, err := domain.NewChangeEvent(domain.TableProfiles, op, p.ID, p)
	if err == nil {
		err = s.bus.Publish(ctx, ev)
	}
	if err != nil {
		s.log.WarnContext(ctx, "publish profile change failed",
			slog.String("profile_id", p.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
