// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/news-sentiment/pkg/types"
)

// maxBodyBytes bounds a single page read.
const maxBodyBytes = 16 << 20

// Getter fetches a page body. Non-2xx responses are errors.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// StatusError reports a non-success HTTP status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// Client is the production Getter.
type Client struct {
	http       *http.Client
	userAgent  string
	maxRetries int
	limiter    *HostLimiter
}

// NewClient builds a Client from cfg. A nil httpClient gets one with
// cfg.Timeout.
func NewClient(httpClient *http.Client, cfg types.HTTPConfig) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		http:       httpClient,
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		limiter:    NewHostLimiter(cfg.MinHostInterval),
	}
}

// Get fetches url and returns its body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx, url); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := DoWithRetry(ctx, c.http, req, c.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	return body, nil
}
