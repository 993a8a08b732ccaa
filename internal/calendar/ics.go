// Package calendar renders aggregated conferences as iCalendar files so
// users can subscribe to event dates and CFP deadlines.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/confscout/confscout/internal/conference"
)

// Options controls what the generated calendar includes.
type Options struct {
	// IncludeCFPDeadlines adds an all-day event per open CFP end date.
	IncludeCFPDeadlines bool

	// Now stamps DTSTAMP; zero means time.Now.
	Now time.Time
}

// GenerateICS renders one VCALENDAR with a VEVENT per dated conference and,
// optionally, per CFP deadline. Undated conferences are skipped; a calendar
// entry without a date is meaningless.
func GenerateICS(confs []*conference.Conference, opts Options) string {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	stamp := formatICSTime(now)

	var ics strings.Builder
	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//ConfScout//confscout//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	for _, c := range confs {
		writeConferenceEvent(&ics, c, stamp)
		if opts.IncludeCFPDeadlines && c.CFP != nil && c.CFP.Status == conference.CFPOpen {
			writeCFPEvent(&ics, c, stamp)
		}
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

// writeConferenceEvent emits an all-day event spanning the conference dates.
// DTEND is exclusive per RFC 5545, hence the extra day.
func writeConferenceEvent(ics *strings.Builder, c *conference.Conference, stamp string) {
	start := conference.ParseDate(c.StartDate)
	if start.IsZero() {
		return
	}
	end := conference.ParseDate(c.EndDate)
	if end.IsZero() {
		end = start
	}
	end = end.AddDate(0, 0, 1)

	ics.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(ics, "UID:%s@confscout.site\r\n", c.ID)
	fmt.Fprintf(ics, "DTSTAMP:%s\r\n", stamp)
	fmt.Fprintf(ics, "DTSTART;VALUE=DATE:%s\r\n", formatICSDate(start))
	fmt.Fprintf(ics, "DTEND;VALUE=DATE:%s\r\n", formatICSDate(end))
	fmt.Fprintf(ics, "SUMMARY:%s\r\n", escapeICS(c.Name))

	if location := displayLocation(c); location != "" {
		fmt.Fprintf(ics, "LOCATION:%s\r\n", escapeICS(location))
	}
	if c.URL != "" {
		fmt.Fprintf(ics, "URL:%s\r\n", c.URL)
	}
	if c.Description != "" {
		fmt.Fprintf(ics, "DESCRIPTION:%s\r\n", escapeICS(c.Description))
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// writeCFPEvent emits an all-day reminder on the CFP closing date.
func writeCFPEvent(ics *strings.Builder, c *conference.Conference, stamp string) {
	deadline := conference.ParseDate(c.CFP.EndDate)
	if deadline.IsZero() {
		return
	}

	ics.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(ics, "UID:%s-cfp@confscout.site\r\n", c.ID)
	fmt.Fprintf(ics, "DTSTAMP:%s\r\n", stamp)
	fmt.Fprintf(ics, "DTSTART;VALUE=DATE:%s\r\n", formatICSDate(deadline))
	fmt.Fprintf(ics, "DTEND;VALUE=DATE:%s\r\n", formatICSDate(deadline.AddDate(0, 0, 1)))
	fmt.Fprintf(ics, "SUMMARY:%s\r\n", escapeICS(fmt.Sprintf("CFP closes: %s", c.Name)))
	if c.CFP.URL != "" {
		fmt.Fprintf(ics, "URL:%s\r\n", c.CFP.URL)
	}
	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:TRANSPARENT\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

func displayLocation(c *conference.Conference) string {
	switch {
	case c.Location.City != "" && c.Location.Country != "":
		return fmt.Sprintf("%s, %s", c.Location.City, c.Location.Country)
	case c.Location.Raw != "":
		return c.Location.Raw
	case c.Online:
		return "Online"
	}
	return ""
}

// formatICSTime formats a time.Time as an iCalendar UTC datetime string.
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// formatICSDate formats a time.Time as an iCalendar all-day date.
func formatICSDate(t time.Time) string {
	return t.Format("20060102")
}

// escapeICS escapes special characters per RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
