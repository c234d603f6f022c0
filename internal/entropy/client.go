// Package entropy supplies the random bytes that drive sentence generation.
// Bytes come from a remote quantum RNG service when it is reachable; once the
// retry budget for a fetch is spent, a seeded local generator covers the
// request so callers never see an error and never block on network health.
package entropy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultEndpoint is the ANU QRNG JSON API.
const DefaultEndpoint = "https://qrng.anu.edu.au/API/jsonI.php"

// DefaultTimeout bounds a single request to the QRNG service.
const DefaultTimeout = 10 * time.Second

// Client fetches raw bytes from the remote QRNG HTTP endpoint.
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a QRNG client. Empty endpoint and non-positive timeout
// select the defaults.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// qrngResponse is the service's JSON envelope: a success flag plus one
// integer in [0,255] per requested byte.
type qrngResponse struct {
	Success bool  `json:"success"`
	Data    []int `json:"data"`
}

// FetchBytes requests exactly n uint8 values from the QRNG service. Any
// transport error, non-200 status, success=false, or length mismatch is
// returned as an error; the caller decides whether to retry.
func (c *Client) FetchBytes(ctx context.Context, n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("byte count must be positive, got %d", n)
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid qrng endpoint: %w", err)
	}
	q := u.Query()
	q.Set("length", strconv.Itoa(n))
	q.Set("type", "uint8")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("qrng request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("qrng returned status %d: %s", resp.StatusCode, string(body))
	}

	var out qrngResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode qrng response: %w", err)
	}

	if !out.Success {
		return nil, fmt.Errorf("qrng service reported failure")
	}
	if len(out.Data) != n {
		return nil, fmt.Errorf("qrng returned %d values, want %d", len(out.Data), n)
	}

	buf := make([]byte, n)
	for i, v := range out.Data {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("qrng value %d at index %d outside byte range", v, i)
		}
		buf[i] = byte(v)
	}

	return buf, nil
}
