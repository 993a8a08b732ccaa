// Package filter narrows aggregated conference lists by user criteria.
//
// Filters back the `list` and `calendar` subcommands:
//   - Date ranges (from/to dates)
//   - Domains (exact match, case-insensitive)
//   - Countries (substring matching, case-insensitive)
//   - Tags (exact match against a record's tag list)
//   - Name (substring matching, case-insensitive)
//   - Online-only and open-CFP-only toggles
//
// Example usage:
//
//	f := filter.New()
//	f.Domains = []string{"ai"}
//	f.OpenCFPOnly = true
//	upcoming := f.Apply(confs)
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/confscout/confscout/internal/conference"
)

// Filter represents conference filtering criteria.
type Filter struct {
	// Date range filtering against a record's start date
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`

	// Domain filtering (exact match, case-insensitive)
	Domains []string `json:"domains,omitempty"`

	// Country filtering (case-insensitive substring match)
	Countries []string `json:"countries,omitempty"`

	// Tag filtering (exact match against the record's tags)
	Tags []string `json:"tags,omitempty"`

	// Name filtering (case-insensitive substring match)
	Names []string `json:"names,omitempty"`

	// OnlineOnly keeps only online or hybrid events
	OnlineOnly bool `json:"online_only,omitempty"`

	// OpenCFPOnly keeps only records whose CFP is open
	OpenCFPOnly bool `json:"open_cfp_only,omitempty"`
}

// New creates an empty filter. An empty filter matches everything.
func New() *Filter {
	return &Filter{}
}

// IsEmpty reports whether the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return f.DateFrom == nil &&
		f.DateTo == nil &&
		len(f.Domains) == 0 &&
		len(f.Countries) == 0 &&
		len(f.Tags) == 0 &&
		len(f.Names) == 0 &&
		!f.OnlineOnly &&
		!f.OpenCFPOnly
}

// Matches checks a conference against all active criteria. Criteria combine
// with AND; values within one criterion combine with OR. Undated records
// pass date-range checks, matching the aggregation pipeline's treatment of
// missing dates.
func (f *Filter) Matches(c *conference.Conference) bool {
	if f.IsEmpty() {
		return true
	}

	startDate := conference.ParseDate(c.StartDate)

	if f.DateFrom != nil && !startDate.IsZero() && startDate.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && !startDate.IsZero() && startDate.After(*f.DateTo) {
		return false
	}

	if f.OnlineOnly && !c.Online && !c.Hybrid {
		return false
	}

	if f.OpenCFPOnly && !c.HasOpenCFP() {
		return false
	}

	if len(f.Domains) > 0 {
		matched := false
		for _, domain := range f.Domains {
			if strings.EqualFold(c.Domain, domain) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.Countries) > 0 {
		matched := false
		countryLower := strings.ToLower(c.Location.Country)
		for _, country := range f.Countries {
			if strings.Contains(countryLower, strings.ToLower(country)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.Tags) > 0 {
		matched := false
	tagLoop:
		for _, want := range f.Tags {
			for _, tag := range c.Tags {
				if strings.EqualFold(tag, want) {
					matched = true
					break tagLoop
				}
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.Names) > 0 {
		matched := false
		nameLower := strings.ToLower(c.Name)
		for _, name := range f.Names {
			if strings.Contains(nameLower, strings.ToLower(name)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// Apply returns the conferences matching all criteria. An empty filter
// returns the input slice unchanged.
func (f *Filter) Apply(confs []*conference.Conference) []*conference.Conference {
	if f.IsEmpty() {
		return confs
	}

	var filtered []*conference.Conference
	for _, c := range confs {
		if f.Matches(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// String returns a human-readable description of the active criteria.
// Format: "From: Jan 2, 2026 | Domains: ai | Open CFP only"
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if f.DateFrom != nil {
		parts = append(parts, fmt.Sprintf("From: %s", f.DateFrom.Format("Jan 2, 2006")))
	}
	if f.DateTo != nil {
		parts = append(parts, fmt.Sprintf("To: %s", f.DateTo.Format("Jan 2, 2006")))
	}
	if len(f.Domains) > 0 {
		parts = append(parts, fmt.Sprintf("Domains: %s", strings.Join(f.Domains, ", ")))
	}
	if len(f.Countries) > 0 {
		parts = append(parts, fmt.Sprintf("Countries: %s", strings.Join(f.Countries, ", ")))
	}
	if len(f.Tags) > 0 {
		parts = append(parts, fmt.Sprintf("Tags: %s", strings.Join(f.Tags, ", ")))
	}
	if len(f.Names) > 0 {
		parts = append(parts, fmt.Sprintf("Names: %s", strings.Join(f.Names, ", ")))
	}
	if f.OnlineOnly {
		parts = append(parts, "Online only")
	}
	if f.OpenCFPOnly {
		parts = append(parts, "Open CFP only")
	}

	return strings.Join(parts, " | ")
}
