package httpx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Statuses worth another attempt; anything else fails immediately.
var retryableStatus = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Client is a GET-only fetch helper with bounded retries on transient
// status codes and quadratic backoff between attempts.
type Client struct {
	hc         *http.Client
	maxRetries int
	backoff    time.Duration
}

func New(timeout time.Duration, maxRetries int) *Client {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Client{
		hc:         &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		backoff:    time.Second,
	}
}

// Fetch GETs url and returns the response body. Transient statuses and
// transport errors are retried up to the configured attempt count;
// non-retryable statuses fail at once.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt*attempt) * c.backoff
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")
		req.Header.Set("Accept-Language", "en-IN,en;q=0.9")

		resp, err := c.hc.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			if readErr != nil {
				lastErr = readErr
				continue
			}
			return body, nil
		}
		lastErr = fmt.Errorf("unexpected status %d", resp.StatusCode)
		if !retryableStatus[resp.StatusCode] {
			return nil, lastErr
		}
	}
	return nil, fmt.Errorf("all %d attempts failed: %w", c.maxRetries, lastErr)
}

// SetBackoff overrides the base backoff, mainly to keep tests fast.
func (c *Client) SetBackoff(d time.Duration) { c.backoff = d }
