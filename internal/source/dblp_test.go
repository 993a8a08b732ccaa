package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/confscout/confscout/internal/httpx"
	"github.com/confscout/confscout/internal/ratelimit"
	"github.com/confscout/confscout/internal/retry"
)

const dblpFixture = `<?xml version="1.0"?>
<result>
  <hits total="2">
    <hit>
      <info>
        <venue>International Conference on Machine Learning</venue>
        <url>https://dblp.org/db/conf/icml</url>
      </info>
    </hit>
    <hit>
      <info>
        <venue>USENIX Security Symposium</venue>
        <url>https://dblp.org/db/conf/uss</url>
      </info>
    </hit>
  </hits>
</result>`

func testDBLP(baseURL string, terms []string) *DBLP {
	s := NewDBLP(terms, zerolog.Nop())
	s.baseURL = baseURL
	s.client = httpx.New(httpx.WithRetry(retry.Config{MaxAttempts: 1}))
	s.limiter = ratelimit.New(0)
	return s
}

func TestDBLPFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("format") != "xml" {
			t.Errorf("format = %q, want xml", r.URL.Query().Get("format"))
		}
		w.Write([]byte(dblpFixture))
	}))
	defer server.Close()

	s := testDBLP(server.URL, []string{"machine learning"})
	confs, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(confs) != 2 {
		t.Fatalf("Fetch() returned %d conferences, want 2", len(confs))
	}

	icml := confs[0]
	if icml.Name != "International Conference on Machine Learning" {
		t.Errorf("Name = %q", icml.Name)
	}
	if icml.Source != "dblp" {
		t.Errorf("Source = %q, want dblp", icml.Source)
	}
	if icml.Domain != "ai" {
		t.Errorf("Domain = %q, want ai", icml.Domain)
	}
	if confs[1].Domain != "security" {
		t.Errorf("Domain = %q, want security", confs[1].Domain)
	}
}

func TestDBLPFetchDeduplicatesByURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(dblpFixture))
	}))
	defer server.Close()

	// Both terms return the same two venues.
	s := testDBLP(server.URL, []string{"machine learning", "security"})
	confs, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(confs) != 2 {
		t.Errorf("Fetch() returned %d conferences, want 2 after URL dedup", len(confs))
	}
}

func TestDBLPFetchAllSearchesFailed(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	s := testDBLP(server.URL, []string{"machine learning"})
	if _, err := s.Fetch(context.Background()); err == nil {
		t.Error("Fetch() should error when every search fails")
	}
}

func TestAcademicDomain(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Conference on Neural Information Processing Systems", "ai"},
		{"International Conference on Software Engineering", "software"},
		{"Symposium on Theory of Computing", "academic"},
		{"VLDB: Very Large Data Bases", "data"},
	}
	for _, tt := range tests {
		if got := academicDomain(tt.name); got != tt.want {
			t.Errorf("academicDomain(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
