package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/confscout/confscout/internal/httpx"
	"github.com/confscout/confscout/internal/ratelimit"
	"github.com/confscout/confscout/internal/retry"
)

const nominatimBaseURL = "https://nominatim.openstreetmap.org/search"

// NominatimClient queries the OpenStreetMap Nominatim API. Their usage
// policy allows at most one request per second, enforced here with a
// limiter shared across all lookups by this client.
type NominatimClient struct {
	client  *httpx.Client
	baseURL string
	limiter *ratelimit.Limiter
}

// NewNominatimClient creates a rate-limited Nominatim client.
func NewNominatimClient() *NominatimClient {
	return &NominatimClient{
		client: httpx.New(
			httpx.WithUserAgent(httpx.NominatimUserAgent),
			httpx.WithTimeout(10*time.Second),
			httpx.WithRetry(retry.Config{
				MaxAttempts: 3,
				BaseDelay:   2 * time.Second,
				MaxDelay:    10 * time.Second,
				Jitter:      true,
			}),
		),
		baseURL: nominatimBaseURL,
		limiter: ratelimit.New(time.Second),
	}
}

// nominatimResult is one entry of the API's JSON response; coordinates come
// back as strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a city/country pair via the API. Returns false when the
// service has no match; errors only for transport or decoding failures
// after the retry budget is exhausted.
func (n *NominatimClient) Geocode(ctx context.Context, city, country string) (Coordinates, bool, error) {
	if city == "" || country == "" {
		return Coordinates{}, false, nil
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return Coordinates{}, false, err
	}

	params := url.Values{}
	params.Set("q", city+", "+country)
	params.Set("format", "json")
	params.Set("limit", "1")

	body, err := n.client.GetWithRetry(ctx, n.baseURL+"?"+params.Encode())
	if err != nil {
		return Coordinates{}, false, fmt.Errorf("querying nominatim: %w", err)
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return Coordinates{}, false, fmt.Errorf("parsing nominatim response: %w", err)
	}
	if len(results) == 0 {
		return Coordinates{}, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Coordinates{}, false, fmt.Errorf("parsing latitude %q: %w", results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Coordinates{}, false, fmt.Errorf("parsing longitude %q: %w", results[0].Lon, err)
	}

	return Coordinates{Lat: lat, Lng: lng}, true, nil
}
