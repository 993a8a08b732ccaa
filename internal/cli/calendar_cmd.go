package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/confscout/confscout/internal/calendar"
	"github.com/confscout/confscout/internal/config"
	"github.com/confscout/confscout/internal/filter"
	"github.com/confscout/confscout/internal/output"
)

func newCalendarCmd() *cobra.Command {
	var (
		flagInput        string
		flagOutput       string
		flagDomains      []string
		flagCountries    []string
		flagCFPDeadlines bool
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Export conferences from a dataset as an iCalendar file",
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath := flagInput
			if inPath == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				inPath = cfg.OutputPath
			}

			confs, err := output.LoadConferences(inPath)
			if err != nil {
				return err
			}

			f := filter.New()
			f.Domains = flagDomains
			f.Countries = flagCountries
			confs = f.Apply(confs)

			ics := calendar.GenerateICS(confs, calendar.Options{
				IncludeCFPDeadlines: flagCFPDeadlines,
			})

			if flagOutput == "" || flagOutput == "-" {
				fmt.Fprint(cmd.OutOrStdout(), ics)
				return nil
			}
			if err := os.WriteFile(flagOutput, []byte(ics), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", flagOutput, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", flagOutput)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagInput, "input", "", "Dataset path (defaults to CONFSCOUT_OUTPUT_PATH)")
	cmd.Flags().StringVar(&flagOutput, "output", "", "ICS output path (default: stdout)")
	cmd.Flags().StringSliceVar(&flagDomains, "domain", nil, "Filter by domain (repeatable)")
	cmd.Flags().StringSliceVar(&flagCountries, "country", nil, "Filter by country substring (repeatable)")
	cmd.Flags().BoolVar(&flagCFPDeadlines, "cfp-deadlines", false, "Include CFP deadline reminders")

	return cmd
}
