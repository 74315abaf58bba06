// Package holiday fetches, parses and caches the list of non-working dates
// consumed by the business-time calculations.
package holiday

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxBodyBytes bounds the holiday payload read from upstream.
const maxBodyBytes = 1 << 20

// Source yields holiday dates as YYYY-MM-DD strings.
type Source interface {
	Fetch(ctx context.Context) ([]string, error)
}

// Client fetches the holiday list over HTTP.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates an HTTP source for url. Requests are traced and bounded by timeout.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Fetch implements Source.
func (c *Client) Fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	return ParseDates(body)
}

// FileSource reads the holiday list from a local JSON file in any format
// accepted by ParseDates.
type FileSource struct {
	Path string
}

// Fetch implements Source.
func (f FileSource) Fetch(_ context.Context) ([]string, error) {
	body, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read holiday file: %w", err)
	}
	return ParseDates(body)
}

// StaticSource serves a fixed list.
type StaticSource []string

// Fetch implements Source.
func (s StaticSource) Fetch(_ context.Context) ([]string, error) {
	return append([]string(nil), s...), nil
}
