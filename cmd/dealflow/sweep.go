package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/dealflow-backend/internal/app"
)

const sweepTimeout = 5 * time.Minute

// sweepCommand flags overdue companies and notifies their analysts. It is
// meant for an external cron job, not an in-process ticker.
func sweepCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep-overdue",
		Short: "Flag companies past their SLA and notify their analysts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), sweepTimeout)
			defer cancel()

			logger := app.NewLogger(e.cfg.Log)
			c, err := app.NewContainer(ctx, e.cfg, logger, nil)
			if err != nil {
				return err
			}
			defer c.Close()

			res, err := c.Pipeline.SweepOverdue(ctx)
			if err != nil {
				logger.Error("sweep failed", slog.String("error", err.Error()))
				return err
			}

			logger.Info("sweep completed",
				slog.Int("flagged", res.Flagged),
				slog.Int("notified", res.Notified),
			)
			return nil
		},
	}
}
