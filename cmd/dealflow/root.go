package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/dealflow-backend/internal/app"
	"github.com/heartmarshall/dealflow-backend/internal/config"
)

// env is filled in by the root command before any subcommand runs.
type env struct {
	configPath string
	cfg        *config.Config
}

func rootCommand() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:          "dealflow",
		Short:        "Deal-flow CRM backend",
		Version:      app.BuildVersion(),
		SilenceUsage: true,
	}
	root.PersistentPreRunE = func(*cobra.Command, []string) error {
		load := config.Load
		if e.configPath != "" {
			load = func() (*config.Config, error) { return config.LoadPath(e.configPath) }
		}
		cfg, err := load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		e.cfg = cfg
		return nil
	}
	root.PersistentFlags().StringVarP(&e.configPath, "config", "c", "",
		"path to config.yaml (default $CONFIG_PATH, then ./config.yaml)")

	root.AddCommand(
		serveCommand(e),
		migrateCommand(e),
		seedCommand(e),
		sweepCommand(e),
		tokenCommand(e),
	)
	return root
}
