package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/confscout/confscout/internal/conference"
	"github.com/confscout/confscout/internal/pipeline"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

func parseFormat(s string) (OutputFormat, error) {
	format := OutputFormat(s)
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", s)
	}
	return format, nil
}

// RunSummary is what the aggregate and catalog commands report.
type RunSummary struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Output      string               `json:"output"`
	Stages      pipeline.StageCounts `json:"stages"`
	BySource    map[string]int       `json:"by_source"`
	Failed      []string             `json:"failed_sources,omitempty"`
	NewCFPs     int                  `json:"new_cfps"`
	ClosingSoon int                  `json:"closing_soon"`
}

// WriteSummary writes a run summary in the requested format.
func WriteSummary(w io.Writer, summary *RunSummary, format OutputFormat) error {
	if format == FormatJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	}

	fmt.Fprintf(w, "Aggregated %d conferences (from %d raw records)\n",
		summary.Stages.Final, summary.Stages.Raw)
	names := make([]string, 0, len(summary.BySource))
	for name := range summary.BySource {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s: %d\n", name, summary.BySource[name])
	}
	for _, name := range summary.Failed {
		fmt.Fprintf(w, "  %s: FAILED\n", name)
	}
	if summary.NewCFPs > 0 {
		fmt.Fprintf(w, "New CFPs: %d\n", summary.NewCFPs)
	}
	if summary.ClosingSoon > 0 {
		fmt.Fprintf(w, "CFPs closing soon: %d\n", summary.ClosingSoon)
	}
	fmt.Fprintf(w, "Wrote %s\n", summary.Output)
	return nil
}

// WriteConferenceList prints conferences for the list command.
func WriteConferenceList(w io.Writer, confs []*conference.Conference, format OutputFormat, verbose bool) error {
	if format == FormatJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(confs)
	}

	if len(confs) == 0 {
		fmt.Fprintln(w, "No conferences found.")
		return nil
	}

	for _, c := range confs {
		fmt.Fprintf(w, "%s  %s", displayDate(c), c.Name)
		if location := displayLocation(c); location != "" {
			fmt.Fprintf(w, "  (%s)", location)
		}
		if c.HasOpenCFP() {
			fmt.Fprintf(w, "  [CFP open until %s]", c.CFP.EndDate)
		}
		fmt.Fprintln(w)

		if verbose {
			fmt.Fprintf(w, "      ID: %s\n", c.ID)
			if c.URL != "" {
				fmt.Fprintf(w, "      URL: %s\n", c.URL)
			}
			if c.Domain != "" {
				fmt.Fprintf(w, "      Domain: %s\n", c.Domain)
			}
			if len(c.Tags) > 0 {
				fmt.Fprintf(w, "      Tags: %v\n", c.Tags)
			}
		}
	}
	fmt.Fprintf(w, "\nTotal: %d conferences\n", len(confs))
	return nil
}

func displayDate(c *conference.Conference) string {
	if c.StartDate == "" {
		return "TBD       "
	}
	return c.StartDate
}

func displayLocation(c *conference.Conference) string {
	switch {
	case c.Location.City != "" && c.Location.Country != "":
		return c.Location.City + ", " + c.Location.Country
	case c.Location.Raw != "":
		return c.Location.Raw
	case c.Online:
		return "Online"
	}
	return ""
}
