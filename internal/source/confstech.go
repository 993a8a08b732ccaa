package source

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/confscout/confscout/internal/conference"
	"github.com/confscout/confscout/internal/httpx"
)

const confsTechBaseURL = "https://raw.githubusercontent.com/tech-conferences/conference-data/main/conferences"

// DefaultConfsTechTopics are the per-topic JSON files fetched from the
// tech-conferences/conference-data repository.
var DefaultConfsTechTopics = []string{
	"javascript", "typescript", "java", "python", "rust", "kotlin",
	"android", "ios", "devops", "security", "data", "general",
	"css", "php", "dotnet", "ux", "accessibility", "api",
	"networking", "performance", "testing", "opensource", "leadership", "product",
}

// ConfsTech fetches the community-maintained confs.tech dataset, one JSON
// file per year and topic.
type ConfsTech struct {
	client  *httpx.Client
	baseURL string
	years   []int
	topics  []string
	logger  zerolog.Logger
}

// NewConfsTech creates a fetcher for the given years and topics.
func NewConfsTech(years []int, topics []string, logger zerolog.Logger) *ConfsTech {
	if len(topics) == 0 {
		topics = DefaultConfsTechTopics
	}
	return &ConfsTech{
		client:  httpx.New(httpx.WithUserAgent(httpx.GitHubUserAgent)),
		baseURL: confsTechBaseURL,
		years:   years,
		topics:  topics,
		logger:  logger,
	}
}

// Name implements Source.
func (s *ConfsTech) Name() string { return "confs.tech" }

// confsTechEntry mirrors one record of the upstream JSON files.
type confsTechEntry struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	City       string `json:"city"`
	Country    string `json:"country"`
	Online     bool   `json:"online"`
	CFPURL     string `json:"cfpUrl"`
	CFPEndDate string `json:"cfpEndDate"`
	Twitter    string `json:"twitter"`
	Description string `json:"description"`
}

// Fetch downloads every year/topic file. Individual file failures are
// logged and skipped; the source only errors when nothing could be fetched.
func (s *ConfsTech) Fetch(ctx context.Context) ([]*conference.Conference, error) {
	var confs []*conference.Conference
	fetched := 0
	var lastErr error

	for _, year := range s.years {
		for _, topic := range s.topics {
			url := fmt.Sprintf("%s/%d/%s.json", s.baseURL, year, topic)

			body, err := s.client.GetWithRetry(ctx, url)
			if err != nil {
				// Topic files that don't exist yet for a year 404; that is
				// routine, not a source failure.
				s.logger.Debug().Err(err).Str("url", url).Msg("confs.tech file unavailable")
				lastErr = err
				continue
			}

			var entries []confsTechEntry
			if err := json.Unmarshal(body, &entries); err != nil {
				s.logger.Warn().Err(err).Str("url", url).Msg("invalid confs.tech JSON")
				lastErr = err
				continue
			}

			for _, entry := range entries {
				confs = append(confs, s.parseEntry(entry))
			}
			fetched++
		}
	}

	if fetched == 0 && lastErr != nil {
		return nil, fmt.Errorf("confs.tech: no files fetched: %w", lastErr)
	}
	return confs, nil
}

// parseEntry converts an upstream record to the common shape. CFP state is
// carried as raw URL and end date; the pipeline computes status later.
func (s *ConfsTech) parseEntry(entry confsTechEntry) *conference.Conference {
	city := strings.TrimSpace(entry.City)
	country := strings.TrimSpace(entry.Country)

	raw := ""
	switch {
	case city != "" && country != "":
		raw = city + ", " + country
	case entry.Online:
		raw = "Online"
	}

	endDate := strings.TrimSpace(entry.EndDate)
	if endDate == "" {
		endDate = strings.TrimSpace(entry.StartDate)
	}

	var cfp *conference.CFP
	if entry.CFPURL != "" && entry.CFPEndDate != "" {
		cfp = &conference.CFP{URL: entry.CFPURL, EndDate: entry.CFPEndDate}
	}

	return &conference.Conference{
		Name:      strings.TrimSpace(entry.Name),
		URL:       entry.URL,
		StartDate: strings.TrimSpace(entry.StartDate),
		EndDate:   endDate,
		Location: conference.Location{
			City:    city,
			Country: country,
			Raw:     raw,
		},
		Online:      entry.Online,
		Hybrid:      entry.Online && city != "",
		CFP:         cfp,
		Description: strings.TrimSpace(entry.Description),
		Twitter:     strings.TrimPrefix(entry.Twitter, "@"),
		Source:      s.Name(),
	}
}
