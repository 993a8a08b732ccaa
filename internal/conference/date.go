package conference

import "time"

// ISODate is the wire format for all conference dates.
const ISODate = "2006-01-02"

// undatedSortKey sorts undated records after every dated one.
const undatedSortKey = "9999-12-31"

// ParseDate parses an ISO date string. Returns the zero time if the string
// is empty or malformed; callers treat that as "no date".
func ParseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DaysBetween returns the absolute difference in days between two ISO date
// strings. Returns 0 if either side does not parse, so an unparseable date
// never disqualifies a duplicate match.
func DaysBetween(a, b string) int {
	ta := ParseDate(a)
	tb := ParseDate(b)
	if ta.IsZero() || tb.IsZero() {
		return 0
	}
	days := int(ta.Sub(tb).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days
}

// DaysUntil returns the number of whole days from today until the given ISO
// date. The second return is false when the date does not parse.
func DaysUntil(s string, today time.Time) (int, bool) {
	t := ParseDate(s)
	if t.IsZero() {
		return 0, false
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(day).Hours() / 24), true
}

// MonthKey returns the display grouping key for a start date, e.g.
// "March 2026". Undated or unparseable dates land under "TBD".
func MonthKey(startDate string) string {
	t := ParseDate(startDate)
	if t.IsZero() {
		return "TBD"
	}
	return t.Format("January 2006")
}

// MonthSortKey converts a MonthKey back into a chronologically sortable
// string. "TBD" sorts after all real months.
func MonthSortKey(key string) string {
	if key == "TBD" {
		return "9999-12"
	}
	t, err := time.Parse("January 2006", key)
	if err != nil {
		return "9999-12"
	}
	return t.Format("2006-01")
}

// SortDate returns the start date, or a far-future sentinel for undated
// records so they sort last within a month group.
func (c *Conference) SortDate() string {
	if c.StartDate == "" {
		return undatedSortKey
	}
	return c.StartDate
}

// IsUpcoming reports whether the conference starts on or after today.
// Undated records always pass; better to show than to hide.
func (c *Conference) IsUpcoming(today time.Time) bool {
	t := ParseDate(c.StartDate)
	if t.IsZero() {
		return true
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return !t.Before(day)
}
