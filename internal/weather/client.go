// Package weather talks to the National Weather Service API.
//
// The client is fail-soft: transport errors, non-2xx responses and
// malformed JSON never reach the caller as errors. fetch reports them as a
// missing result and the operations turn that into an explanatory message,
// so the assistant always receives text.
package weather

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public NWS API endpoint.
	DefaultBaseURL = "https://api.weather.gov"

	// DefaultUserAgent identifies this server to the NWS API, which
	// rejects requests without one.
	DefaultUserAgent = "memory-app/1.0"

	// DefaultTimeout bounds every outbound request.
	DefaultTimeout = 30 * time.Second

	// maxAlerts caps how many alert features are rendered.
	maxAlerts = 20

	// maxBodyBytes guards against unbounded responses.
	maxBodyBytes = 10 << 20
)

// Config holds the weather client settings.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// RateLimit is the maximum number of requests per second.
	// Zero or negative disables limiting.
	RateLimit float64
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultTimeout,
		RateLimit: 5,
	}
}

// Client issues GET requests against the weather API.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
}

// NewClient creates a Client. Zero-valued fields in cfg fall back to the
// defaults.
func NewClient(cfg Config) *Client {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}

	limit := rate.Inf
	burst := 1
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
		burst = max(1, int(cfg.RateLimit))
	}

	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(limit, burst),
	}
}

// fetch performs one GET and returns the parsed JSON body. The boolean is
// false when no usable data came back, whatever the reason.
func (c *Client) fetch(ctx context.Context, url string) (gjson.Result, bool) {
	if err := c.limiter.Wait(ctx); err != nil {
		return gjson.Result{}, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return gjson.Result{}, false
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil || !gjson.ValidBytes(body) {
		return gjson.Result{}, false
	}

	result := gjson.ParseBytes(body)
	// A JSON null or empty object carries no data either.
	if result.Type == gjson.Null || (result.IsObject() && len(result.Map()) == 0) {
		return gjson.Result{}, false
	}
	return result, true
}
