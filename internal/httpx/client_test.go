package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/confscout/confscout/internal/retry"
)

func fastRetry() retry.Config {
	return retry.Config{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
}

func TestGetSetsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := New(WithUserAgent(GitHubUserAgent))
	body, err := client.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}

	if string(body) != "ok" {
		t.Errorf("body = %q", body)
	}
	if gotUA != GitHubUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, GitHubUserAgent)
	}
}

func TestGetNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New()
	if _, err := client.Get(context.Background(), srv.URL); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestGetWithRetryRecoversFromTransientFailure(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("recovered"))
	}))
	defer srv.Close()

	client := New(WithRetry(fastRetry()))
	body, err := client.GetWithRetry(context.Background(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}

	if string(body) != "recovered" {
		t.Errorf("body = %q", body)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestGetWithRetryDoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(WithRetry(fastRetry()))
	if _, err := client.GetWithRetry(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 404 response")
	}

	if attempts != 1 {
		t.Errorf("404 should not be retried, got %d attempts", attempts)
	}
}

func TestGetWithRetrySurfacesExhaustedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(WithRetry(fastRetry()))
	if _, err := client.GetWithRetry(context.Background(), srv.URL); err == nil {
		t.Error("exhausted retries must surface the error")
	}
}

func TestWithHeader(t *testing.T) {
	var gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := New(WithHeader("Accept", "application/vnd.github.v3+json"))
	if _, err := client.Get(context.Background(), srv.URL); err != nil {
		t.Fatal(err)
	}

	if gotAccept != "application/vnd.github.v3+json" {
		t.Errorf("Accept = %q", gotAccept)
	}
}
