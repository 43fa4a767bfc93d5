package request

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"trailbuddy/pkg/version"
)

var defaultUserAgent = fmt.Sprintf("TrailBuddy/%s (hiking assistant)", version.Version)

// Client handles outbound HTTP requests with a fixed per-call timeout.
// There is no retry or backoff: callers treat any failure as absent data
// and take their documented fallback path.
type Client struct {
	httpClient *http.Client
}

// New creates a new Client with the given timeout.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Get performs a GET request and returns the response body.
func (c *Client) Get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, nil)
}

// Post performs a POST request with the given body and content type.
func (c *Client) Post(ctx context.Context, u string, body []byte, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, map[string]string{"Content-Type": contentType})
}

func (c *Client) do(req *http.Request, headers map[string]string) ([]byte, error) {
	req.Header.Set("User-Agent", defaultUserAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	slog.Debug("HTTP request",
		"method", req.Method,
		"host", req.URL.Host,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Host)
	}

	return body, nil
}
