package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/confscout/confscout/internal/conference"
)

func TestDiscordNotifierNewCFPs(t *testing.T) {
	var payloads []discordPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %q", r.Header.Get("Content-Type"))
		}
		body, _ := io.ReadAll(r.Body)
		var p discordPayload
		if err := json.Unmarshal(body, &p); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		payloads = append(payloads, p)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	n, err := NewDiscordNotifier(server.URL)
	if err != nil {
		t.Fatalf("NewDiscordNotifier() error = %v", err)
	}

	if err := n.NotifyNewCFPs(context.Background(), []*conference.Conference{openCFPConf()}); err != nil {
		t.Fatalf("NotifyNewCFPs() error = %v", err)
	}

	if len(payloads) != 1 {
		t.Fatalf("got %d webhook calls, want 1", len(payloads))
	}
	p := payloads[0]
	if p.Content == "" {
		t.Error("first message should carry the summary content")
	}
	if len(p.Embeds) != 1 {
		t.Fatalf("got %d embeds, want 1", len(p.Embeds))
	}
	embed := p.Embeds[0]
	if embed.Title != "GopherCon Europe" {
		t.Errorf("embed title = %q", embed.Title)
	}
	if embed.Color != discordColorNew {
		t.Errorf("embed color = %d, want %d", embed.Color, discordColorNew)
	}
	if len(embed.Fields) != 3 {
		t.Errorf("embed has %d fields, want location, dates, deadline", len(embed.Fields))
	}
}

func TestDiscordNotifierBatchesEmbeds(t *testing.T) {
	var calls int
	var embedCounts []int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var p discordPayload
		json.Unmarshal(body, &p)
		calls++
		embedCounts = append(embedCounts, len(p.Embeds))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	n, _ := NewDiscordNotifier(server.URL)

	confs := make([]*conference.Conference, 23)
	for i := range confs {
		confs[i] = &conference.Conference{Name: fmt.Sprintf("Conf %d", i)}
	}

	if err := n.NotifyNewCFPs(context.Background(), confs); err != nil {
		t.Fatalf("NotifyNewCFPs() error = %v", err)
	}
	if calls != 3 {
		t.Fatalf("got %d webhook calls, want 3 for 23 embeds", calls)
	}
	want := []int{10, 10, 3}
	for i, count := range embedCounts {
		if count != want[i] {
			t.Errorf("call %d carried %d embeds, want %d", i, count, want[i])
		}
	}
}

func TestDiscordNotifierErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	n, _ := NewDiscordNotifier(server.URL)
	if err := n.NotifyNewCFPs(context.Background(), []*conference.Conference{openCFPConf()}); err == nil {
		t.Error("NotifyNewCFPs() should surface a non-2xx status")
	}
}

func TestDiscordNotifierNoConfs(t *testing.T) {
	n, _ := NewDiscordNotifier("https://example.invalid/webhook")
	if err := n.NotifyNewCFPs(context.Background(), nil); err != nil {
		t.Errorf("NotifyNewCFPs(nil) error = %v, want no webhook call", err)
	}
}

func TestNewDiscordNotifierEmptyURL(t *testing.T) {
	if _, err := NewDiscordNotifier(""); err == nil {
		t.Error("NewDiscordNotifier(\"\") should error")
	}
}

func TestMultiNotifierContinuesAfterFailure(t *testing.T) {
	failing := &stubNotifier{err: fmt.Errorf("boom")}
	ok := &stubNotifier{}

	m := Multi{failing, ok}
	err := m.NotifyNewCFPs(context.Background(), []*conference.Conference{openCFPConf()})
	if err == nil {
		t.Error("Multi should surface the first error")
	}
	if ok.newCalls != 1 {
		t.Error("Multi should still call later notifiers after a failure")
	}
}

type stubNotifier struct {
	err               error
	newCalls, dueCall int
}

func (s *stubNotifier) NotifyNewCFPs(context.Context, []*conference.Conference) error {
	s.newCalls++
	return s.err
}

func (s *stubNotifier) NotifyClosingSoon(context.Context, []*conference.Conference) error {
	s.dueCall++
	return s.err
}
