package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/confscout/confscout/internal/config"
	"github.com/confscout/confscout/internal/filter"
	"github.com/confscout/confscout/internal/output"
)

func newListCmd() *cobra.Command {
	var (
		flagInput     string
		flagFormat    string
		flagSort      string
		flagVerbose   bool
		flagDomains   []string
		flagCountries []string
		flagTags      []string
		flagNames     []string
		flagOnline    bool
		flagOpenCFP   bool
		flagDates     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print conferences from a previously aggregated dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(flagFormat)
			if err != nil {
				return err
			}
			order, err := parseSortOrder(flagSort)
			if err != nil {
				return err
			}

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
			f.Tags = flagTags
			f.Names = flagNames
			f.OnlineOnly = flagOnline
			f.OpenCFPOnly = flagOpenCFP
			if flagDates != "" {
				from, to, err := filter.ParseDateRange(flagDates, time.Now())
				if err != nil {
					return err
				}
				f.DateFrom, f.DateTo = from, to
			}

			confs = f.Apply(confs)
			sortConferences(confs, order)

			return WriteConferenceList(cmd.OutOrStdout(), confs, format, flagVerbose)
		},
	}

	cmd.Flags().StringVar(&flagInput, "input", "", "Dataset path (defaults to CONFSCOUT_OUTPUT_PATH)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagSort, "sort", "date", "Sort order: date, name, or country")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Show IDs, URLs, domains, and tags")
	cmd.Flags().StringSliceVar(&flagDomains, "domain", nil, "Filter by domain (repeatable)")
	cmd.Flags().StringSliceVar(&flagCountries, "country", nil, "Filter by country substring (repeatable)")
	cmd.Flags().StringSliceVar(&flagTags, "tag", nil, "Filter by tag (repeatable)")
	cmd.Flags().StringSliceVar(&flagNames, "name", nil, "Filter by name substring (repeatable)")
	cmd.Flags().BoolVar(&flagOnline, "online", false, "Only online or hybrid events")
	cmd.Flags().BoolVar(&flagOpenCFP, "open-cfp", false, "Only conferences with an open CFP")
	cmd.Flags().StringVar(&flagDates, "dates", "", "Date range, e.g. '2026-03-01..2026-04-15' or 'Mar-May'")

	return cmd
}
