package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/confscout/confscout/internal/conference"
)

// Discord limits a webhook message to ten embeds.
const discordEmbedBatch = 10

// Embed colors as decimal RGB.
const (
	discordColorNew     = 0x2ECC71
	discordColorClosing = 0xE67E22
)

// DiscordNotifier posts CFP announcements to a Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	httpClient *http.Client
}

// NewDiscordNotifier creates a notifier for the given webhook URL.
func NewDiscordNotifier(webhookURL string) (*DiscordNotifier, error) {
	if webhookURL == "" {
		return nil, fmt.Errorf("discord webhook URL is empty")
	}
	return &DiscordNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type discordPayload struct {
	Content string         `json:"content,omitempty"`
	Embeds  []discordEmbed `json:"embeds,omitempty"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Description string              `json:"description,omitempty"`
	Color       int                 `json:"color"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// NotifyNewCFPs implements Notifier.
func (n *DiscordNotifier) NotifyNewCFPs(ctx context.Context, confs []*conference.Conference) error {
	if len(confs) == 0 {
		return nil
	}
	return n.send(ctx, fmt.Sprintf("📢 %d new CFP(s) opened", len(confs)), confs, discordColorNew)
}

// NotifyClosingSoon implements Notifier.
func (n *DiscordNotifier) NotifyClosingSoon(ctx context.Context, confs []*conference.Conference) error {
	if len(confs) == 0 {
		return nil
	}
	return n.send(ctx, "⏳ CFPs closing soon", confs, discordColorClosing)
}

// send batches embeds to stay under the per-message limit.
func (n *DiscordNotifier) send(ctx context.Context, content string, confs []*conference.Conference, color int) error {
	for start := 0; start < len(confs); start += discordEmbedBatch {
		end := start + discordEmbedBatch
		if end > len(confs) {
			end = len(confs)
		}

		payload := discordPayload{Embeds: make([]discordEmbed, 0, end-start)}
		if start == 0 {
			payload.Content = content
		}
		for _, c := range confs[start:end] {
			payload.Embeds = append(payload.Embeds, buildEmbed(c, color))
		}

		if err := n.postPayload(ctx, payload); err != nil {
			return err
		}
	}
	return nil
}

func buildEmbed(c *conference.Conference, color int) discordEmbed {
	embed := discordEmbed{
		Title: c.Name,
		URL:   c.URL,
		Color: color,
	}

	if location := shortLocation(c); location != "" {
		embed.Fields = append(embed.Fields, discordEmbedField{Name: "Location", Value: location, Inline: true})
	}
	if c.StartDate != "" {
		embed.Fields = append(embed.Fields, discordEmbedField{Name: "Dates", Value: c.StartDate, Inline: true})
	}
	if c.CFP != nil && c.CFP.EndDate != "" {
		deadline := c.CFP.EndDate
		if c.CFP.DaysRemaining > 0 {
			deadline = fmt.Sprintf("%s (%d days left)", c.CFP.EndDate, c.CFP.DaysRemaining)
		}
		embed.Fields = append(embed.Fields, discordEmbedField{Name: "CFP deadline", Value: deadline, Inline: true})
	}
	if c.CFP != nil && c.CFP.URL != "" {
		embed.Description = fmt.Sprintf("[Submit a talk](%s)", c.CFP.URL)
	}

	return embed
}

func (n *DiscordNotifier) postPayload(ctx context.Context, payload discordPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting to discord: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}
	return nil
}
