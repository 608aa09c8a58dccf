package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/dealflow-backend/internal/app"
	"github.com/heartmarshall/dealflow-backend/internal/app/seeder"
)

func seedCommand(e *env) *cobra.Command {
	var (
		seederConfig string
		catalogPath  string
		dryRun       bool
		phases       []string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the default stages, industries, deal sources and rejection taxonomy",
		Long: `Seed writes the reference catalog through the same service the API uses.
Rows are matched by name, so running it again only adds what is missing.

Examples:
  dealflow seed
  dealflow seed --dry-run
  dealflow seed --catalog=catalog.yaml --phase=stages --phase=industries`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scfg, err := seeder.LoadConfig(seederConfig)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("catalog") {
				scfg.CatalogPath = catalogPath
			}
			if cmd.Flags().Changed("dry-run") {
				scfg.DryRun = dryRun
			}

			catalog, err := seeder.LoadCatalog(scfg.CatalogPath)
			if err != nil {
				return err
			}

			logger := app.NewLogger(e.cfg.Log)
			c, err := app.NewContainer(cmd.Context(), e.cfg, logger, nil)
			if err != nil {
				return err
			}
			defer c.Close()

			p := seeder.NewPipeline(logger, c.Refdata, catalog, *scfg)
			if err := p.Run(cmd.Context(), phases); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			results := p.Results()
			names := make([]string, 0, len(results))
			for name := range results {
				names = append(names, name)
			}
			slices.Sort(names)
			for _, name := range names {
				r := results[name]
				if r.Err != nil {
					fmt.Fprintf(out, "%-20s FAILED: %v\n", name, r.Err)
					continue
				}
				fmt.Fprintf(out, "%-20s inserted=%d skipped=%d\n", name, r.Inserted, r.Skipped)
			}
			if p.HasErrors() {
				return errors.New("seeding finished with errors")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&seederConfig, "seeder-config", "", "seeder YAML config (default: SEEDER_* environment)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog YAML replacing the built-in defaults")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be inserted without writing")
	cmd.Flags().StringSliceVar(&phases, "phase", nil, "run only these phases: stages, industries, deal_sources, rejection_taxonomy")
	return cmd
}
