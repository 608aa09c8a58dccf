package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/dealflow-backend/internal/adapter/mailer"
	"github.com/heartmarshall/dealflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dealflow-backend/internal/adapter/postgres/activity"
	"github.com/heartmarshall/dealflow-backend/internal/adapter/postgres/comment"
	"github.com/heartmarshall/dealflow-backend/internal/adapter/postgres/company"
	"github.com/heartmarshall/dealflow-backend/internal/adapter/postgres/dealsource"
	"github.com/heartmarshall/dealflow-backend/internal/adapter/postgres/industry"
	"github.com/heartmarshall/dealflow-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/dealflow-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/dealflow-backend/internal/adapter/postgres/rejection"
	"github.com/heartmarshall/dealflow-backend/internal/adapter/postgres/stage"
	"github.com/heartmarshall/dealflow-backend/internal/adapter/provider/google"
	"github.com/heartmarshall/dealflow-backend/internal/auth"
	"github.com/heartmarshall/dealflow-backend/internal/config"
	"github.com/heartmarshall/dealflow-backend/internal/metrics"
	"github.com/heartmarshall/dealflow-backend/internal/realtime"
	commentsvc "github.com/heartmarshall/dealflow-backend/internal/service/comment"
	"github.com/heartmarshall/dealflow-backend/internal/service/dashboard"
	notificationsvc "github.com/heartmarshall/dealflow-backend/internal/service/notification"
	"github.com/heartmarshall/dealflow-backend/internal/service/outreach"
	"github.com/heartmarshall/dealflow-backend/internal/service/pipeline"
	"github.com/heartmarshall/dealflow-backend/internal/service/refdata"
	"github.com/heartmarshall/dealflow-backend/internal/service/team"
)

const mailTimeout = 15 * time.Second

// Repos are the Postgres repositories, shared by services and loaders.
type Repos struct {
	Companies     *company.Repo
	Stages        *stage.Repo
	Industries    *industry.Repo
	DealSources   *dealsource.Repo
	Rejections    *rejection.Repo
	Activity      *activity.Repo
	Comments      *comment.Repo
	Notifications *notification.Repo
	Profiles      *profile.Repo
}

// Container holds everything the server and the CLI commands share.
type Container struct {
	Cfg     *config.Config
	Log     *slog.Logger
	Pool    *pgxpool.Pool
	Metrics *metrics.Metrics
	Repos   Repos

	// Local is the in-process bus the SSE hub and the projector read from.
	// Bus is what services publish to: Local itself, or Redis wrapping it.
	Local *realtime.LocalBus
	Bus   realtime.Bus
	redis *realtime.RedisBus

	JWT    *auth.JWTManager
	Google *google.Client // nil when not configured

	Pipeline      *pipeline.Service
	Refdata       *refdata.Service
	Dashboard     *dashboard.Service
	Comments      *commentsvc.Service
	Notifications *notificationsvc.Service
	Team          *team.Service
	Outreach      *outreach.Service
}

// NewContainer connects to Postgres (and Redis when configured) and builds
// every service. Close releases the connections.
func NewContainer(ctx context.Context, cfg *config.Config, log *slog.Logger, m *metrics.Metrics) (*Container, error) {
	if m == nil {
		m = metrics.NewNop()
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	c := &Container{
		Cfg:     cfg,
		Log:     log,
		Pool:    pool,
		Metrics: m,
		Local:   realtime.NewLocalBus(log, m, realtime.DefaultBuffer),
		JWT:     auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
	}
	c.Bus = c.Local

	if cfg.Redis.Enabled() {
		c.redis, err = realtime.NewRedisBus(ctx, log, c.Local, realtime.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Channel:  cfg.Redis.Channel,
		})
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		c.Bus = c.redis
	}

	if err := c.build(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Container) build() error {
	cfg, log := c.Cfg, c.Log

	c.Repos = Repos{
		Companies:     company.New(c.Pool),
		Stages:        stage.New(c.Pool),
		Industries:    industry.New(c.Pool),
		DealSources:   dealsource.New(c.Pool),
		Rejections:    rejection.New(c.Pool),
		Activity:      activity.New(c.Pool),
		Comments:      comment.New(c.Pool),
		Notifications: notification.New(c.Pool),
		Profiles:      profile.New(c.Pool),
	}
	r := c.Repos
	tx := postgres.NewTxManager(c.Pool)

	c.Pipeline = pipeline.NewService(log,
		r.Companies, r.Stages, r.Activity, r.Notifications, r.Profiles, r.Rejections,
		tx, c.Bus, c.Metrics.PipelineMutations,
		pipeline.Config{Thresholds: cfg.Pipeline.Thresholds(), FirmName: cfg.Mail.FirmName},
	)
	c.Refdata = refdata.NewService(log, r.Stages, r.Industries, r.DealSources, r.Rejections, tx, c.Bus, cfg.Cache.RefDataTTL)
	c.Dashboard = dashboard.NewService(log, r.Companies, r.Stages, r.Industries, r.Profiles, cfg.Pipeline.Thresholds())
	c.Comments = commentsvc.NewService(log, r.Comments, r.Companies, c.Bus)
	c.Notifications = notificationsvc.NewService(log, r.Notifications, c.Bus)

	teamCfg := team.Config{
		SuperAdminEmail: cfg.Auth.SuperAdminEmail,
		SiteURL:         cfg.Mail.SiteURL,
		AppName:         cfg.Mail.AppName,
	}
	if cfg.Mail.ShoutrrrURL != "" {
		smtp, err := mailer.New(log, cfg.Mail.ShoutrrrURL, mailTimeout)
		if err != nil {
			return fmt.Errorf("mailer: %w", err)
		}
		c.Team = team.NewService(log, r.Profiles, smtp, c.Bus, teamCfg)
	} else {
		log.Warn("mail.shoutrrr_url not set, invitation emails are only logged")
		c.Team = team.NewService(log, r.Profiles, mailer.NewLog(log), c.Bus, teamCfg)
	}

	loc, err := cfg.Google.Location()
	if err != nil {
		return fmt.Errorf("google time zone: %w", err)
	}
	if cfg.Google.Enabled() {
		c.Google, err = google.New(google.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
		}, log)
		if err != nil {
			return fmt.Errorf("google client: %w", err)
		}
		c.Outreach = outreach.NewService(log, c.Google, loc)
	} else {
		c.Outreach = outreach.NewService(log, nil, loc)
	}

	return nil
}

// StartRelay starts the Redis relay, if any. It returns once subscribed.
func (c *Container) StartRelay(ctx context.Context) error {
	if c.redis == nil {
		return nil
	}
	return c.redis.Start(ctx)
}

// PingRedis checks the Redis connection, if any.
func (c *Container) PingRedis(ctx context.Context) error {
	if c.redis == nil {
		return nil
	}
	return c.redis.Ping(ctx)
}

// Close releases Redis and the database pool.
func (c *Container) Close() {
	if err := c.redis.Close(); err != nil {
		c.Log.Warn("close redis", slog.String("error", err.Error()))
	}
	c.Pool.Close()
}
