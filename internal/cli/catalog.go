package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/confscout/confscout/internal/output"
)

func newCatalogCmd() *cobra.Command {
	var (
		flagOutput string
		flagFormat string
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Fetch, merge, and write the flat catalog dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(flagFormat)
			if err != nil {
				return err
			}

			app, err := newApp()
			if err != nil {
				return err
			}

			outPath := app.cfg.CatalogPath
			if flagOutput != "" {
				outPath = flagOutput
			}

			driver, cleanup, err := app.buildDriver()
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := driver.Run(cmd.Context())
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			doc := output.BuildCatalog(result.Conferences, now.Format(time.RFC3339))
			if err := output.WriteCatalog(outPath, doc); err != nil {
				return err
			}

			summary := &RunSummary{
				GeneratedAt: now,
				Output:      outPath,
				Stages:      result.Stages,
				BySource:    result.BySource,
				Failed:      result.Failed,
			}
			return WriteSummary(cmd.OutOrStdout(), summary, format)
		},
	}

	cmd.Flags().StringVar(&flagOutput, "output", "", "Output path (overrides CONFSCOUT_CATALOG_PATH)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Summary format: text or json")

	return cmd
}
