package arr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const defaultTimeout = 30 * time.Second

// Client performs authenticated requests against a Sonarr/Radarr instance.
// Failures are logged and reported as "no data"; nothing is retried.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	timeout    time.Duration
	limiter    *rate.Limiter
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout. A client passed with
// WithHTTPClient is copied rather than modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRateLimit paces requests to at most rps per second. Zero disables pacing.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "arr")
	}
}

// New creates a client for the instance at baseURL.
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		log: slog.Default().With("component", "arr"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 && c.httpClient.Timeout != c.timeout {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// BuildURL returns the full v3 API URL for endpoint with the API key attached.
// The key is joined with "&" when endpoint already carries a query string and
// introduced with "?" otherwise. Extra query parameters follow the key.
func (c *Client) BuildURL(endpoint, query string) string {
	base := c.baseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	u := base + "api/v3/" + endpoint + sep + "apikey=" + url.QueryEscape(c.apiKey)
	if query != "" {
		u += "&" + query
	}
	return u
}

// FetchJSON GETs endpoint and decodes the body into out.
// It returns false, after logging a warning, when the request fails,
// the status is not 2xx, or the body cannot be decoded.
func (c *Client) FetchJSON(ctx context.Context, endpoint, query string, out any) bool {
	body, ok := c.get(ctx, c.BuildURL(endpoint, query), endpoint)
	if !ok {
		return false
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.log.Warn("unable to decode response", "endpoint", endpoint, "error", err)
		return false
	}
	return true
}

// FetchString GETs an absolute URL and returns the body as text.
// Failures are logged as warnings and reported with ok=false.
func (c *Client) FetchString(ctx context.Context, rawURL string) (string, bool) {
	body, ok := c.get(ctx, rawURL, rawURL)
	if !ok {
		return "", false
	}
	return string(body), true
}

// DeleteJSON issues a DELETE against endpoint and returns the raw status code.
// The status is not interpreted; callers decide whether it matters.
func (c *Client) DeleteJSON(ctx context.Context, endpoint string) (int, error) {
	if err := c.wait(ctx); err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.BuildURL(endpoint, ""), nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("execute request: %w", stripURL(err))
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	c.log.Debug("delete complete", "endpoint", endpoint, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())
	return resp.StatusCode, nil
}

// get performs a GET and returns the body of a 2xx response.
// label identifies the request in logs without leaking the API key.
func (c *Client) get(ctx context.Context, rawURL, label string) ([]byte, bool) {
	if err := c.wait(ctx); err != nil {
		c.log.Warn("unable to fetch", "endpoint", label, "error", err)
		return nil, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		c.log.Warn("unable to fetch", "endpoint", label, "error", err)
		return nil, false
	}
	req.Header.Set("Accept", "application/json, text/html;q=0.9")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("unable to fetch", "endpoint", label, "error", stripURL(err))
		return nil, false
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn("unable to read response", "endpoint", label, "error", err)
		return nil, false
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("unable to fetch", "endpoint", label, "status", resp.StatusCode, "body", string(body))
		return nil, false
	}

	c.log.Debug("fetch complete", "endpoint", label, "bytes", len(body), "duration_ms", time.Since(start).Milliseconds())
	return body, true
}

// stripURL drops the request URL, which carries the API key, from transport errors.
func stripURL(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("%s: %w", ue.Op, ue.Err)
	}
	return err
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}
