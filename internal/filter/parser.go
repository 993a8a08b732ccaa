package filter

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/confscout/confscout/internal/conference"
)

const monthPattern = `(jan|january|feb|february|mar|march|apr|april|may|jun|june|jul|july|aug|august|sep|september|oct|october|nov|november|dec|december)`

var (
	isoRangeRe   = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s*\.\.\s*(\d{4}-\d{2}-\d{2})$`)
	monthRe      = regexp.MustCompile(`(?i)^` + monthPattern + `(?:\s+(\d{4}))?$`)
	monthRangeRe = regexp.MustCompile(`(?i)^` + monthPattern + `\s*-\s*` + monthPattern + `(?:\s+(\d{4}))?$`)
)

// ParseDateRange parses a CLI date range into inclusive from/to bounds.
//
// Supported formats:
//   - "2026-03-01..2026-04-15" - explicit ISO dates
//   - "March" or "Mar 2026"    - one whole month
//   - "Mar-May" or "Mar-May 2026" - a span of whole months
//
// When the year is omitted the parser picks the next occurrence: a month
// already past this year means next year. Times are UTC; the upper bound is
// the last instant of its day.
func ParseDateRange(input string, now time.Time) (*time.Time, *time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil, fmt.Errorf("date range cannot be empty")
	}

	if matches := isoRangeRe.FindStringSubmatch(input); matches != nil {
		from := conference.ParseDate(matches[1])
		to := conference.ParseDate(matches[2])
		if from.IsZero() || to.IsZero() {
			return nil, nil, fmt.Errorf("invalid date in range %q", input)
		}
		if from.After(to) {
			return nil, nil, fmt.Errorf("start date must be before end date")
		}
		to = endOfDay(to)
		return &from, &to, nil
	}

	if matches := monthRangeRe.FindStringSubmatch(input); matches != nil {
		month1 := parseMonth(matches[1])
		month2 := parseMonth(matches[2])
		year1 := parseYear(matches[3], month1, now)
		year2 := year1
		if month2 < month1 {
			year2++
		}
		from := time.Date(year1, month1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year2, month2+1, 0, 23, 59, 59, 0, time.UTC)
		return &from, &to, nil
	}

	if matches := monthRe.FindStringSubmatch(input); matches != nil {
		month := parseMonth(matches[1])
		year := parseYear(matches[2], month, now)
		from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year, month+1, 0, 23, 59, 59, 0, time.UTC)
		return &from, &to, nil
	}

	return nil, nil, fmt.Errorf("invalid date range %q. Use '2026-03-01..2026-04-15', 'March', or 'Mar-May'", input)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
}

// parseMonth converts a month name or abbreviation to time.Month. The
// regexps above guarantee the name is valid.
func parseMonth(name string) time.Month {
	name = strings.ToLower(strings.TrimSpace(name))

	months := map[string]time.Month{
		"jan": time.January, "january": time.January,
		"feb": time.February, "february": time.February,
		"mar": time.March, "march": time.March,
		"apr": time.April, "april": time.April,
		"may": time.May,
		"jun": time.June, "june": time.June,
		"jul": time.July, "july": time.July,
		"aug": time.August, "august": time.August,
		"sep": time.September, "september": time.September,
		"oct": time.October, "october": time.October,
		"nov": time.November, "november": time.November,
		"dec": time.December, "december": time.December,
	}

	return months[name]
}

// parseYear resolves an optional explicit year. Without one, a month before
// the current month rolls over to next year.
func parseYear(explicit string, month time.Month, now time.Time) int {
	if explicit != "" {
		var year int
		fmt.Sscanf(explicit, "%d", &year)
		return year
	}
	year := now.Year()
	if month < now.Month() {
		year++
	}
	return year
}
