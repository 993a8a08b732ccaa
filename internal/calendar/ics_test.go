package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/confscout/confscout/internal/conference"
)

var calNow = time.Date(2026, time.January, 15, 9, 30, 0, 0, time.UTC)

func TestGenerateICS(t *testing.T) {
	confs := []*conference.Conference{
		{
			ID:        "abc123def456",
			Name:      "GopherCon Europe, Berlin Edition",
			URL:       "https://gophercon.eu",
			StartDate: "2026-06-15",
			EndDate:   "2026-06-17",
			Location:  conference.Location{City: "Berlin", Country: "Germany"},
		},
	}

	ics := GenerateICS(confs, Options{Now: calNow})

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//ConfScout//confscout//EN",
		"BEGIN:VEVENT",
		"UID:abc123def456@confscout.site",
		"DTSTAMP:20260115T093000Z",
		"DTSTART;VALUE=DATE:20260615",
		// DTEND is exclusive, one day past the last conference day.
		"DTEND;VALUE=DATE:20260618",
		"SUMMARY:GopherCon Europe\\, Berlin Edition",
		"LOCATION:Berlin\\, Germany",
		"URL:https://gophercon.eu",
		"STATUS:CONFIRMED",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	for _, field := range requiredFields {
		if !strings.Contains(ics, field) {
			t.Errorf("ICS missing required field: %s", field)
		}
	}

	if !strings.Contains(ics, "\r\n") {
		t.Error("ICS should use \\r\\n line endings")
	}
}

func TestGenerateICSSkipsUndated(t *testing.T) {
	confs := []*conference.Conference{
		{ID: "a", Name: "Undated Conf"},
		{ID: "b", Name: "Dated Conf", StartDate: "2026-03-01"},
	}

	ics := GenerateICS(confs, Options{Now: calNow})

	if strings.Contains(ics, "Undated Conf") {
		t.Error("undated conference should not appear in the calendar")
	}
	if !strings.Contains(ics, "Dated Conf") {
		t.Error("dated conference missing from the calendar")
	}
}

func TestGenerateICSSingleDayEvent(t *testing.T) {
	confs := []*conference.Conference{
		{ID: "a", Name: "One Day", StartDate: "2026-04-10"},
	}

	ics := GenerateICS(confs, Options{Now: calNow})

	if !strings.Contains(ics, "DTSTART;VALUE=DATE:20260410") {
		t.Error("missing DTSTART for single-day event")
	}
	if !strings.Contains(ics, "DTEND;VALUE=DATE:20260411") {
		t.Error("single-day event should end the following day (exclusive DTEND)")
	}
}

func TestGenerateICSCFPDeadlines(t *testing.T) {
	confs := []*conference.Conference{
		{
			ID:        "abc123def456",
			Name:      "GopherCon Europe",
			StartDate: "2026-06-15",
			CFP: &conference.CFP{
				URL:     "https://gophercon.eu/cfp",
				EndDate: "2026-03-01",
				Status:  conference.CFPOpen,
			},
		},
		{
			ID:        "fed654cba321",
			Name:      "Closed Conf",
			StartDate: "2026-07-01",
			CFP: &conference.CFP{
				EndDate: "2026-01-01",
				Status:  conference.CFPClosed,
			},
		},
	}

	ics := GenerateICS(confs, Options{Now: calNow, IncludeCFPDeadlines: true})

	if !strings.Contains(ics, "UID:abc123def456-cfp@confscout.site") {
		t.Error("missing CFP deadline event for open CFP")
	}
	if !strings.Contains(ics, "SUMMARY:CFP closes: GopherCon Europe") {
		t.Error("missing CFP deadline summary")
	}
	if !strings.Contains(ics, "DTSTART;VALUE=DATE:20260301") {
		t.Error("CFP deadline should land on the CFP end date")
	}
	if strings.Contains(ics, "fed654cba321-cfp") {
		t.Error("closed CFP should not produce a deadline event")
	}

	// Without the option, no CFP events at all.
	plain := GenerateICS(confs, Options{Now: calNow})
	if strings.Contains(plain, "-cfp@confscout.site") {
		t.Error("CFP events emitted without IncludeCFPDeadlines")
	}
}

func TestEscapeICS(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a,b", "a\\,b"},
		{"a;b", "a\\;b"},
		{"a\nb", "a\\nb"},
		{`a\b`, `a\\b`},
	}
	for _, tt := range tests {
		if got := escapeICS(tt.in); got != tt.want {
			t.Errorf("escapeICS(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
