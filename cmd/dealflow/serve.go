package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/dealflow-backend/internal/app"
)

func serveCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the realtime feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), e.cfg)
		},
	}
}
