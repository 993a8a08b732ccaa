package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/confscout/confscout/internal/notifier"
	"github.com/confscout/confscout/internal/output"
	"github.com/confscout/confscout/internal/pipeline"
)

func newAggregateCmd() *cobra.Command {
	var (
		flagOutput string
		flagFormat string
		flagNotify bool
		flagDryRun bool
	)

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Fetch, merge, and write the month-grouped conference dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(flagFormat)
			if err != nil {
				return err
			}

			app, err := newApp()
			if err != nil {
				return err
			}

			outPath := app.cfg.OutputPath
			if flagOutput != "" {
				outPath = flagOutput
			}

			driver, cleanup, err := app.buildDriver()
			if err != nil {
				return err
			}
			defer cleanup()

			// Previous IDs must be read before the file is overwritten.
			previousIDs, err := output.LoadPreviousIDs(outPath)
			if err != nil {
				return err
			}

			result, err := driver.Run(cmd.Context())
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			doc := &output.MonthsDocument{
				LastUpdated: now.Format(time.RFC3339),
				Stats:       output.BuildStats(result.Conferences),
				Months:      output.GroupByMonth(result.Conferences),
			}
			if err := output.WriteMonthsDocument(outPath, doc, app.logger); err != nil {
				return err
			}

			newCFPs := pipeline.NewCFPs(result.Conferences, previousIDs)
			closing := pipeline.ClosingSoon(result.Conferences, app.cfg.ClosingSoonDays)

			if flagNotify || flagDryRun {
				n, err := buildNotifier(app, flagDryRun)
				if err != nil {
					return err
				}
				if err := n.NotifyNewCFPs(cmd.Context(), newCFPs); err != nil {
					app.logger.Error().Err(err).Msg("new-CFP notification failed")
				}
				if err := n.NotifyClosingSoon(cmd.Context(), closing); err != nil {
					app.logger.Error().Err(err).Msg("closing-soon notification failed")
				}
			}

			summary := &RunSummary{
				GeneratedAt: now,
				Output:      outPath,
				Stages:      result.Stages,
				BySource:    result.BySource,
				Failed:      result.Failed,
				NewCFPs:     len(newCFPs),
				ClosingSoon: len(closing),
			}
			return WriteSummary(cmd.OutOrStdout(), summary, format)
		},
	}

	cmd.Flags().StringVar(&flagOutput, "output", "", "Output path (overrides CONFSCOUT_OUTPUT_PATH)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Summary format: text or json")
	cmd.Flags().BoolVar(&flagNotify, "notify", false, "Send CFP notifications to configured channels")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print notifications instead of sending them")

	return cmd
}

// buildNotifier assembles the channels enabled by configuration. Dry-run
// replaces all of them.
func buildNotifier(app *app, dryRun bool) (notifier.Notifier, error) {
	if dryRun {
		return notifier.NewDryRunNotifier(), nil
	}

	var channels notifier.Multi
	if app.cfg.DiscordWebhookURL != "" {
		discord, err := notifier.NewDiscordNotifier(app.cfg.DiscordWebhookURL)
		if err != nil {
			return nil, err
		}
		channels = append(channels, discord)
	}
	if os.Getenv("TWITTER_API_KEY") != "" {
		tw, err := notifier.NewTwitterNotifier()
		if err != nil {
			return nil, err
		}
		channels = append(channels, tw)
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("no notification channels configured")
	}
	return channels, nil
}
