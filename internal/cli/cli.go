package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitError   = 1
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confscout",
		Short: "Aggregate tech conference and CFP data from multiple sources",
		Long: `ConfScout fetches conference metadata from confs.tech, dblp, and
Sessionize, deduplicates and merges records across sources, enriches them
with classification and coordinates, and publishes JSON datasets.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(
		newAggregateCmd(),
		newCatalogCmd(),
		newListCmd(),
		newCalendarCmd(),
	)

	return cmd
}

// Execute runs the CLI. A .env file is loaded when present so local runs
// pick up credentials without exporting them.
func Execute() {
	_ = godotenv.Load()

	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
