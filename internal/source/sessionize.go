package source

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/confscout/confscout/internal/conference"
	"github.com/confscout/confscout/internal/httpx"
)

// Sessionize scrapes individual Sessionize CFP pages. Sessionize has no
// public browse-all endpoint; each event's CFP page is configured
// explicitly in sources.yaml.
type Sessionize struct {
	client *httpx.Client
	urls   []string
	logger zerolog.Logger
}

// NewSessionize creates a scraper for the configured CFP page URLs.
func NewSessionize(urls []string, logger zerolog.Logger) *Sessionize {
	return &Sessionize{
		client: httpx.New(httpx.WithTimeout(15 * time.Second)),
		urls:   urls,
		logger: logger,
	}
}

// Name implements Source.
func (s *Sessionize) Name() string { return "sessionize" }

// Fetch scrapes each configured page. Per-page failures are logged and
// skipped; a configured-but-empty URL list is not an error.
func (s *Sessionize) Fetch(ctx context.Context) ([]*conference.Conference, error) {
	if len(s.urls) == 0 {
		s.logger.Info().Msg("sessionize: no CFP URLs configured")
		return nil, nil
	}

	var confs []*conference.Conference
	for _, pageURL := range s.urls {
		body, err := s.client.GetWithRetry(ctx, pageURL)
		if err != nil {
			s.logger.Warn().Err(err).Str("url", pageURL).Msg("sessionize page fetch failed")
			continue
		}

		conf, err := parseSessionizePage(body, pageURL)
		if err != nil {
			s.logger.Warn().Err(err).Str("url", pageURL).Msg("sessionize page parse failed")
			continue
		}
		confs = append(confs, conf)
	}
	return confs, nil
}

// parseSessionizePage extracts one conference from a Sessionize CFP page.
// Layout: the event name sits in an h4 under .ibox-title; the second
// .ibox-content column carries event dates, location, and website as h2
// elements; the third carries CFP dates and travel/accommodation details.
func parseSessionizePage(body []byte, pageURL string) (*conference.Conference, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	name := strings.TrimSpace(doc.Find(".ibox-title h4").First().Text())
	if name == "" {
		return nil, fmt.Errorf("no event name found")
	}

	boxes := doc.Find(".ibox-content")
	if boxes.Length() < 3 {
		return nil, fmt.Errorf("unexpected page layout: %d content boxes", boxes.Length())
	}

	leftH2s := boxes.Eq(1).Find("h2")
	rightCol := boxes.Eq(2)

	startDate := parseSessionizeDate(h2Text(leftH2s, 0))
	endDate := parseSessionizeDate(h2Text(leftH2s, 1))
	if endDate == "" {
		endDate = startDate
	}

	// Location spans sit inside the third h2.
	var locationParts []string
	leftH2s.Eq(2).Find("span").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			locationParts = append(locationParts, text)
		}
	})
	location := strings.Join(locationParts, " ")

	website := pageURL
	if href, ok := leftH2s.Eq(3).Find("a").First().Attr("href"); ok && href != "" {
		website = href
	}

	var cfp *conference.CFP
	if cfpEnd := parseSessionizeDate(h2Text(rightCol.Find("h2"), 1)); cfpEnd != "" {
		cfp = &conference.CFP{URL: pageURL, EndDate: cfpEnd}
	}

	city, country := splitLocation(location)
	lower := strings.ToLower(location)

	return &conference.Conference{
		Name:      name,
		URL:       website,
		StartDate: startDate,
		EndDate:   endDate,
		Location: conference.Location{
			City:    city,
			Country: country,
			Raw:     location,
		},
		Online:       strings.Contains(lower, "online") || strings.Contains(lower, "virtual"),
		CFP:          cfp,
		FinancialAid: parseSessionizeFinancialAid(rightCol),
		Source:       "sessionize",
	}, nil
}

func h2Text(sel *goquery.Selection, index int) string {
	return strings.TrimSpace(sel.Eq(index).Text())
}

// parseSessionizeDate converts the page's "15 Mar 2026" format to ISO.
func parseSessionizeDate(text string) string {
	if text == "" {
		return ""
	}
	t, err := time.Parse("2 Jan 2006", text)
	if err != nil {
		return ""
	}
	return t.Format(conference.ISODate)
}

// splitLocation splits "City, Country" style strings; a single segment is
// treated as the city.
func splitLocation(location string) (string, string) {
	if location == "" {
		return "", ""
	}
	parts := strings.Split(location, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) >= 2 {
		return parts[0], parts[len(parts)-1]
	}
	return parts[0], ""
}

// parseSessionizeFinancialAid reads the travel/accommodation/fee rows of
// the right column: each is an h3 label whose next sibling says Yes or No.
func parseSessionizeFinancialAid(rightCol *goquery.Selection) *conference.FinancialAid {
	var types []string

	h3s := rightCol.Find("h3")
	start := h3s.Length() - 3
	if start < 0 {
		start = 0
	}

	for i := start; i < h3s.Length(); i++ {
		h3 := h3s.Eq(i)
		label := strings.ToLower(strings.TrimSpace(h3.Text()))
		answer := strings.ToLower(strings.TrimSpace(h3.Next().Text()))
		if !strings.Contains(answer, "yes") {
			continue
		}
		switch {
		case strings.Contains(label, "travel"):
			types = append(types, "travel")
		case strings.Contains(label, "accommodation"):
			types = append(types, "accommodation")
		case strings.Contains(label, "fee"), strings.Contains(label, "ticket"):
			types = append(types, "ticket")
		}
	}

	if len(types) == 0 {
		return nil
	}
	return &conference.FinancialAid{Available: true, Types: types}
}
