// Package httpx provides the HTTP client shared by all fetchers, with the
// project User-Agent headers and retry behavior external services expect.
package httpx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/confscout/confscout/internal/retry"
)

// User-Agent strings per service. Nominatim's terms of service require a
// descriptive agent; GitHub asks for one identifying the project.
const (
	DefaultUserAgent   = "Mozilla/5.0 (compatible; ConfScoutBot/2.0; +https://confscout.site)"
	NominatimUserAgent = "ConfScout-Conference-Finder/2.0"
	GitHubUserAgent    = "ConfScout-Data-Fetcher/2.0"
)

const defaultTimeout = 15 * time.Second

// Client wraps http.Client with project headers and a retry budget.
type Client struct {
	httpClient *http.Client
	userAgent  string
	headers    map[string]string
	retryCfg   retry.Config
}

// Option configures a Client.
type Option func(*Client)

// WithUserAgent overrides the default User-Agent.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHeader adds a default header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers[key] = value }
}

// WithRetry overrides the retry configuration used by GetWithRetry.
func WithRetry(cfg retry.Config) Option {
	return func(c *Client) { c.retryCfg = cfg }
}

// New creates a Client with the default User-Agent and timeout.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		userAgent:  DefaultUserAgent,
		headers:    make(map[string]string),
		retryCfg:   retry.DefaultConfig,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a single GET request and returns the response body. Non-2xx
// statuses are errors; 4xx statuses are permanent (GetWithRetry will not
// retry them).
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, retry.Permanent(err)
		}
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	return body, nil
}

// GetWithRetry performs a GET request with the client's retry budget,
// backing off exponentially between attempts.
func (c *Client) GetWithRetry(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := retry.Do(ctx, c.retryCfg, func() error {
		var getErr error
		body, getErr = c.Get(ctx, url)
		return getErr
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}
