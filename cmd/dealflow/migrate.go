package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/dealflow-backend/migrations"
)

func migrateCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrations(cmd.Context(), e.cfg.Database.DSN, func(p *goose.Provider) error {
					results, err := p.Up(cmd.Context())
					printResults(cmd.OutOrStdout(), results)
					if err != nil {
						return fmt.Errorf("migrate up: %w", err)
					}
					if len(results) == 0 {
						fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrations(cmd.Context(), e.cfg.Database.DSN, func(p *goose.Provider) error {
					result, err := p.Down(cmd.Context())
					if result != nil {
						printResults(cmd.OutOrStdout(), []*goose.MigrationResult{result})
					}
					if err != nil {
						return fmt.Errorf("migrate down: %w", err)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrations(cmd.Context(), e.cfg.Database.DSN, func(p *goose.Provider) error {
					statuses, err := p.Status(cmd.Context())
					if err != nil {
						return fmt.Errorf("migrate status: %w", err)
					}
					out := cmd.OutOrStdout()
					for _, s := range statuses {
						applied := "-"
						if s.State == goose.StateApplied {
							applied = s.AppliedAt.Format("2006-01-02 15:04:05")
						}
						fmt.Fprintf(out, "%05d  %-8s  %-19s  %s\n", s.Source.Version, s.State, applied, s.Source.Path)
					}
					return nil
				})
			},
		},
	)
	return cmd
}

func withMigrations(ctx context.Context, dsn string, fn func(*goose.Provider) error) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	return fn(provider)
}

func printResults(w io.Writer, results []*goose.MigrationResult) {
	for _, r := range results {
		status := "ok"
		if r.Error != nil {
			status = r.Error.Error()
		}
		fmt.Fprintf(w, "%-4s %05d %s (%s) %s\n", r.Direction, r.Source.Version, r.Source.Path, r.Duration.Round(time.Millisecond), status)
	}
}
