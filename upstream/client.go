// Package upstream fetches raw upstream payloads (GTFS zips, GTFS-RT protobuf,
// InfoPoint JSON) over HTTP or from local files.
//
// Every remote host gets its own circuit breaker, so a dead upstream fails fast
// instead of tying up the refresh loop until its timeout on every tick.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"
)

// DefaultUserAgent is sent with every HTTP request.
const DefaultUserAgent = "detour-board/1.0"

// StatusError is returned for non-2xx HTTP responses.
type StatusError struct {
	URL        string
	Status     string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// Temporary reports whether the status is worth retrying on the next tick.
func (e *StatusError) Temporary() bool {
	switch e.StatusCode {
	case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// Client fetches upstream payloads.
type Client struct {
	httpClient *http.Client
	userAgent  string

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[[]byte]
}

// NewClient creates a client. A nil httpClient uses http.DefaultClient.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		userAgent:  DefaultUserAgent,
		breakers:   map[string]*gobreaker.CircuitBreaker[[]byte]{},
	}
}

// Fetch returns the body behind urlOrPath. Anything that is not an http(s) URL
// is read from the local filesystem.
func (c *Client) Fetch(ctx context.Context, urlOrPath string) ([]byte, error) {
	if urlOrPath == "" {
		return nil, fmt.Errorf("empty upstream location")
	}
	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return os.ReadFile(urlOrPath)
	}

	u, err := url.Parse(urlOrPath)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream url %q: %w", urlOrPath, err)
	}
	return c.breaker(u.Host).Execute(func() ([]byte, error) {
		return c.get(ctx, u.String())
	})
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: req.URL.Redacted(), Status: resp.Status, StatusCode: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) breaker(host string) *gobreaker.CircuitBreaker[[]byte] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cb, ok := c.breakers[host]; ok {
		return cb
	}
	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        host,
		MaxRequests: 1,
		Interval:    0,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})
	c.breakers[host] = cb
	return cb
}

// BreakerState reports the circuit breaker state for host, "closed" when the
// host was never contacted.
func (c *Client) BreakerState(host string) string {
	c.mu.Lock()
	cb, ok := c.breakers[host]
	c.mu.Unlock()
	if !ok {
		return gobreaker.StateClosed.String()
	}
	return cb.State().String()
}

// GetJSON fetches urlOrPath and decodes the body as JSON into a T.
func GetJSON[T any](ctx context.Context, c *Client, urlOrPath string) (T, error) {
	var out T
	body, err := c.Fetch(ctx, urlOrPath)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", urlOrPath, err)
	}
	return out, nil
}
