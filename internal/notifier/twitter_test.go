package notifier

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/confscout/confscout/internal/conference"
)

func openCFPConf() *conference.Conference {
	return &conference.Conference{
		ID:        "abc123def456",
		Name:      "GopherCon Europe",
		URL:       "https://gophercon.eu",
		StartDate: "2026-06-15",
		Location:  conference.Location{City: "Berlin", Country: "Germany"},
		Domain:    "software",
		CFP: &conference.CFP{
			URL:           "https://gophercon.eu/cfp",
			EndDate:       "2026-03-01",
			DaysRemaining: 45,
			Status:        conference.CFPOpen,
		},
	}
}

func TestFormatNewCFPTweet(t *testing.T) {
	tests := []struct {
		name     string
		conf     *conference.Conference
		contains []string
	}{
		{
			name: "complete conference",
			conf: openCFPConf(),
			contains: []string{
				"CFP now open",
				"GopherCon Europe",
				"Berlin, Germany",
				"2026-03-01",
				"https://gophercon.eu/cfp",
				"#CFP",
				"#software",
			},
		},
		{
			name: "online conference without dates",
			conf: &conference.Conference{
				Name:   "Remote Rust Days",
				Online: true,
				CFP:    &conference.CFP{URL: "https://rust.days/cfp"},
			},
			contains: []string{"Remote Rust Days", "Online", "https://rust.days/cfp"},
		},
		{
			name: "general domain gets no domain hashtag",
			conf: &conference.Conference{
				Name:   "Some Conf",
				Domain: "general",
			},
			contains: []string{"#CFP"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatNewCFPTweet(tt.conf)

			if len(got) > tweetLimit {
				t.Errorf("tweet length = %d, want <= %d", len(got), tweetLimit)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("tweet missing %q:\n%s", want, got)
				}
			}
		})
	}

	long := openCFPConf()
	long.Name = strings.Repeat("Very Long Conference Name ", 20)
	if got := formatNewCFPTweet(long); len(got) > tweetLimit || !strings.HasSuffix(got, "...") {
		t.Errorf("long tweet not truncated: len=%d", len(got))
	}
}

func TestFormatClosingTweet(t *testing.T) {
	conf := openCFPConf()
	got := formatClosingTweet(conf)
	if !strings.Contains(got, "45 days left") {
		t.Errorf("closing tweet missing days remaining:\n%s", got)
	}

	conf.CFP.DaysRemaining = 0
	got = formatClosingTweet(conf)
	if !strings.Contains(got, "Last call") || !strings.Contains(got, "closes today") {
		t.Errorf("last-day tweet wrong:\n%s", got)
	}
}

func TestDryRunNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := &DryRunNotifier{out: &buf}

	confs := []*conference.Conference{openCFPConf()}

	if err := n.NotifyNewCFPs(context.Background(), confs); err != nil {
		t.Errorf("NotifyNewCFPs() error = %v", err)
	}
	if !strings.Contains(buf.String(), "GopherCon Europe") {
		t.Error("dry run output missing conference name")
	}

	buf.Reset()
	if err := n.NotifyClosingSoon(context.Background(), confs); err != nil {
		t.Errorf("NotifyClosingSoon() error = %v", err)
	}
	if !strings.Contains(buf.String(), "closing soon") {
		t.Error("dry run output missing kind label")
	}
}
