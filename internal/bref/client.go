package bref

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/zjtippetts/NBA-Database/internal/category"
	"github.com/zjtippetts/NBA-Database/internal/table"
)

const (
	BaseURL   = "https://www.basketball-reference.com"
	UserAgent = "nba-database/1.0 (+https://github.com/zjtippetts/NBA-Database)"
	Timeout   = 30 * time.Second

	// DefaultRequestsPerMinute is the site's documented request budget;
	// exceeding it earns an hour-long ban.
	DefaultRequestsPerMinute = 20

	maxRetries = 3
)

// retryInitialInterval seeds the exponential backoff between retries.
// Shortened in tests.
var retryInitialInterval = 500 * time.Millisecond

// ErrNotFound indicates the league page does not exist, typically a season
// before the category was tracked.
var ErrNotFound = errors.New("page not found")

// Client fetches league stat pages. All requests pass through one shared
// rate limiter, so a client is meant to live for the whole run.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// NewClient creates a client that spaces requests to stay within the given
// per-minute budget. Zero or negative falls back to the site default.
func NewClient(requestsPerMinute int) *Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = DefaultRequestsPerMinute
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: Timeout},
		baseURL:    BaseURL,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// SeasonURL returns the league page URL for one season and category.
func (c *Client) SeasonURL(year int, cat category.Category) string {
	return fmt.Sprintf("%s/leagues/NBA_%d_%s.html", c.baseURL, year, cat.Slug)
}

// FetchTable fetches and extracts one (season, category) stats table.
func (c *Client) FetchTable(ctx context.Context, year int, cat category.Category) (*table.Raw, error) {
	body, err := c.fetch(ctx, c.SeasonURL(year, cat))
	if err != nil {
		return nil, fmt.Errorf("season %d %s: %w", year, cat.Key, err)
	}

	raw, err := Extract(strings.NewReader(body), cat)
	if err != nil {
		return nil, fmt.Errorf("season %d: %w", year, err)
	}
	return raw, nil
}

// fetch GETs one page through the rate limiter. Network errors, server errors
// and 429 responses retry with exponential backoff up to maxRetries; other
// client errors are permanent.
func (c *Client) fetch(ctx context.Context, url string) (string, error) {
	var body string

	operation := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(fmt.Errorf("rate limit wait: %w", err))
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(fmt.Errorf("%w: %s", ErrNotFound, url))
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}
		body = string(data)
		return nil
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = retryInitialInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(expo, maxRetries), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		return "", err
	}
	return body, nil
}
