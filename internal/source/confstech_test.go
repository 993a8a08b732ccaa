package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/confscout/confscout/internal/httpx"
	"github.com/confscout/confscout/internal/retry"
)

const confsTechFixture = `[
  {
    "name": "GopherCon Europe",
    "url": "https://gophercon.eu",
    "startDate": "2026-06-15",
    "endDate": "2026-06-17",
    "city": "Berlin",
    "country": "Germany",
    "online": false,
    "cfpUrl": "https://gophercon.eu/cfp",
    "cfpEndDate": "2026-03-01",
    "twitter": "@gopherconeu"
  },
  {
    "name": "RustFest Online",
    "url": "https://rustfest.global",
    "startDate": "2026-09-01",
    "online": true
  }
]`

func testConfsTech(baseURL string, years []int, topics []string) *ConfsTech {
	s := NewConfsTech(years, topics, zerolog.Nop())
	s.baseURL = baseURL
	s.client = httpx.New(httpx.WithRetry(retry.Config{MaxAttempts: 1}))
	return s
}

func TestConfsTechFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2026/rust.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(confsTechFixture))
	}))
	defer server.Close()

	s := testConfsTech(server.URL, []int{2026}, []string{"rust", "cobol"})
	confs, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(confs) != 2 {
		t.Fatalf("Fetch() returned %d conferences, want 2", len(confs))
	}

	first := confs[0]
	if first.Name != "GopherCon Europe" {
		t.Errorf("Name = %q, want %q", first.Name, "GopherCon Europe")
	}
	if first.Source != "confs.tech" {
		t.Errorf("Source = %q, want confs.tech", first.Source)
	}
	if first.Location.Raw != "Berlin, Germany" {
		t.Errorf("Location.Raw = %q, want %q", first.Location.Raw, "Berlin, Germany")
	}
	if first.CFP == nil || first.CFP.EndDate != "2026-03-01" {
		t.Errorf("CFP = %+v, want end date 2026-03-01", first.CFP)
	}
	if first.Twitter != "gopherconeu" {
		t.Errorf("Twitter = %q, want handle without @", first.Twitter)
	}

	second := confs[1]
	if !second.Online {
		t.Error("second conference should be online")
	}
	if second.EndDate != "2026-09-01" {
		t.Errorf("EndDate = %q, want start date carried over", second.EndDate)
	}
	if second.Location.Raw != "Online" {
		t.Errorf("Location.Raw = %q, want Online", second.Location.Raw)
	}
	if second.CFP != nil {
		t.Errorf("CFP = %+v, want nil without URL and end date", second.CFP)
	}
}

func TestConfsTechFetchAllFilesMissing(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	s := testConfsTech(server.URL, []int{2026}, []string{"rust"})
	if _, err := s.Fetch(context.Background()); err == nil {
		t.Error("Fetch() should error when no file could be fetched")
	}
}

func TestConfsTechFetchPartialFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/2026/rust.json" {
			w.Write([]byte(confsTechFixture))
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	s := testConfsTech(server.URL, []int{2026}, []string{"rust", "cobol", "fortran"})
	confs, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v, want partial success", err)
	}
	if len(confs) != 2 {
		t.Errorf("Fetch() returned %d conferences, want 2", len(confs))
	}
}

func TestConfsTechDefaultTopics(t *testing.T) {
	s := NewConfsTech([]int{2026}, nil, zerolog.Nop())
	if len(s.topics) != len(DefaultConfsTechTopics) {
		t.Errorf("topics = %d entries, want defaults", len(s.topics))
	}
}
