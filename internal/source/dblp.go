package source

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/confscout/confscout/internal/conference"
	"github.com/confscout/confscout/internal/httpx"
	"github.com/confscout/confscout/internal/ratelimit"
)

const dblpSearchURL = "https://dblp.org/search/venue/api"

// DefaultDBLPSearchTerms cover the academic venues worth listing. dblp
// aggregates IEEE and ACM venues, so those need no scraping of their own.
var DefaultDBLPSearchTerms = []string{
	"conference on artificial intelligence",
	"conference on machine learning",
	"software engineering conference",
	"security symposium",
	"data science conference",
	"cloud computing conference",
	"IEEE conference 2026",
	"ACM conference 2026",
}

// DBLP fetches academic CS venues from the dblp.org search API.
type DBLP struct {
	client      *httpx.Client
	baseURL     string
	searchTerms []string
	maxResults  int
	limiter     *ratelimit.Limiter
	logger      zerolog.Logger
}

// NewDBLP creates a dblp fetcher with one-second spacing between queries.
func NewDBLP(searchTerms []string, logger zerolog.Logger) *DBLP {
	if len(searchTerms) == 0 {
		searchTerms = DefaultDBLPSearchTerms
	}
	return &DBLP{
		client:      httpx.New(),
		baseURL:     dblpSearchURL,
		searchTerms: searchTerms,
		maxResults:  50,
		limiter:     ratelimit.New(time.Second),
		logger:      logger,
	}
}

// Name implements Source.
func (s *DBLP) Name() string { return "dblp" }

// dblpResponse mirrors the XML search response.
type dblpResponse struct {
	XMLName xml.Name `xml:"result"`
	Hits    struct {
		Hit []struct {
			Info struct {
				Venue string `xml:"venue"`
				URL   string `xml:"url"`
			} `xml:"info"`
		} `xml:"hit"`
	} `xml:"hits"`
}

// Fetch runs every search term and flattens the venues, deduplicating by
// URL within this source. dblp provides no event dates; records carry only
// name, URL, and an academic domain hint.
func (s *DBLP) Fetch(ctx context.Context) ([]*conference.Conference, error) {
	var confs []*conference.Conference
	seenURLs := make(map[string]bool)
	succeeded := 0
	var lastErr error

	for _, term := range s.searchTerms {
		venues, err := s.search(ctx, term)
		if err != nil {
			s.logger.Warn().Err(err).Str("term", term).Msg("dblp search failed")
			lastErr = err
			continue
		}
		succeeded++

		for _, venue := range venues {
			if venue.URL != "" && seenURLs[venue.URL] {
				continue
			}
			seenURLs[venue.URL] = true
			confs = append(confs, venue)
		}
	}

	if succeeded == 0 && lastErr != nil {
		return nil, fmt.Errorf("dblp: all searches failed: %w", lastErr)
	}
	return confs, nil
}

// search queries one term against the venue API.
func (s *DBLP) search(ctx context.Context, term string) ([]*conference.Conference, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", term)
	params.Set("format", "xml")
	params.Set("h", fmt.Sprint(s.maxResults))

	body, err := s.client.GetWithRetry(ctx, s.baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var resp dblpResponse
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing dblp response: %w", err)
	}

	var confs []*conference.Conference
	for _, hit := range resp.Hits.Hit {
		name := strings.TrimSpace(hit.Info.Venue)
		if name == "" {
			continue
		}
		confs = append(confs, &conference.Conference{
			Name:   name,
			URL:    hit.Info.URL,
			Domain: academicDomain(name),
			Source: s.Name(),
		})
	}
	return confs, nil
}

// academicDomain gives dblp venues a coarse domain before the keyword
// classifier runs; venues it cannot place stay "academic" rather than
// falling into "general".
func academicDomain(name string) string {
	lower := strings.ToLower(name)

	checks := []struct {
		domain   string
		keywords []string
	}{
		{"ai", []string{"artificial intelligence", "machine learning", "neural", "deep learning", "nlp", "vision"}},
		{"software", []string{"software", "engineering", "agile", "devops"}},
		{"security", []string{"security", "crypto", "privacy", "hacking"}},
		{"data", []string{"data", "database", "analytics", "big data"}},
		{"web", []string{"web", "mobile", "frontend", "backend"}},
		{"cloud", []string{"cloud", "kubernetes", "distributed", "serverless"}},
	}

	for _, check := range checks {
		for _, kw := range check.keywords {
			if strings.Contains(lower, kw) {
				return check.domain
			}
		}
	}
	return "academic"
}
