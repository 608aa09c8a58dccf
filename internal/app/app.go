package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/dealflow-backend/internal/config"
	"github.com/heartmarshall/dealflow-backend/internal/metrics"
	"github.com/heartmarshall/dealflow-backend/internal/realtime"
	"github.com/heartmarshall/dealflow-backend/internal/transport/middleware"
)

const limiterCleanup = time.Minute

// Run starts the API server and blocks until ctx is canceled or a
// component fails. Shutdown drains in-flight requests for up to
// cfg.Server.ShutdownTimeout.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)
	logger.Info("starting dealflow api",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	m, err := metrics.New()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	c, err := NewContainer(ctx, cfg, logger, m)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := c.StartRelay(ctx); err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(limiterCleanup)
	defer limiter.Stop()

	projector := realtime.NewProjector(logger, c.Local, c.Repos.Companies, c.Repos.Stages)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewRouter(c, RouterDeps{Projector: projector, Limiter: limiter, Version: BuildVersion()}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return projector.Run(gctx)
	})

	g.Go(func() error {
		invalidateRefdata(gctx, c)
		return nil
	})

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, done := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	err = g.Wait()
	logger.Info("stopped")
	return err
}

// invalidateRefdata drops cached reference lists whenever the bus carries a
// reference-data change, including changes made by other instances.
func invalidateRefdata(ctx context.Context, c *Container) {
	events, unsubscribe := c.Local.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.Refdata.Invalidate(ev.Table)
		}
	}
}
