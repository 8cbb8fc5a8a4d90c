package hig

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultUserAgent matches a desktop browser; the data endpoints reject
// obviously robotic agents.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"

// DefaultTimeout bounds a single endpoint request.
const DefaultTimeout = 45 * time.Second

// maxResponseBytes caps a single response body read. Page JSON runs to a
// few hundred KB; anything larger is not a HIG page.
const maxResponseBytes = 32 << 20

// Client fetches JSON and HTML documents from the Apple endpoints.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a client with the given timeout and User-Agent.
// Zero values fall back to the package defaults.
func NewClient(timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// GetJSON fetches url and returns the raw body after verifying it decodes
// as a JSON object. The raw bytes are kept so the local mirror preserves
// the document exactly as served.
func (c *Client) GetJSON(ctx context.Context, url string) ([]byte, error) {
	body, err := c.get(ctx, url, "application/json")
	if err != nil {
		return nil, err
	}

	var probe any
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	if _, ok := probe.(map[string]any); !ok {
		return nil, fmt.Errorf("decode %s: not a JSON object", url)
	}

	return body, nil
}

// GetHTML fetches url and returns the raw HTML body.
func (c *Client) GetHTML(ctx context.Context, url string) ([]byte, error) {
	return c.get(ctx, url, "text/html")
}

func (c *Client) get(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}

	return body, nil
}
