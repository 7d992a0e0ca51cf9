package tmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org"
	defaultLanguage = "en-US"
)

// Client is a TMDB API client.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      Cache
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLanguage sets the language parameter sent with every request.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = lang
	}
}

// WithCache enables response caching.
func WithCache(cache Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithRateLimit throttles outbound requests. A zero limit disables throttling.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		if limit <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "tmdb")
	}
}

// New creates a new TMDB client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		baseURL:  defaultBaseURL,
		language: defaultLanguage,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(10, 20),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get fetches endpoint (relative to /3) and returns the raw body.
// Bodies are served from and written to the cache when ttl is non-zero.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, ttl time.Duration) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	if c.language != "" && params.Get("language") == "" {
		params.Set("language", c.language)
	}

	key := cacheKey(endpoint, params)
	if ttl > 0 && c.cache != nil {
		if body, ok := c.cache.Get(ctx, key); ok {
			if c.log != nil {
				c.log.Debug("cache hit", "endpoint", endpoint)
			}
			return body, nil
		}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("api_key", c.apiKey)
	reqURL := c.baseURL + "/3/" + endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if c.log != nil {
		c.log.Debug("tmdb request",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}

	if err := checkResponse(resp, endpoint); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%s: %w", endpoint, ErrMalformed)
	}

	if ttl > 0 && c.cache != nil {
		if err := c.cache.Set(ctx, key, body, ttl); err != nil && c.log != nil {
			c.log.Warn("cache write failed", "endpoint", endpoint, "error", err)
		}
	}
	return body, nil
}

// getJSON fetches endpoint and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, ttl time.Duration, out any) error {
	body, err := c.get(ctx, endpoint, params, ttl)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w: %v", endpoint, ErrMalformed, err)
	}
	return nil
}

type resultsEnvelope struct {
	Results json.RawMessage `json:"results"`
}

// decodeResults extracts the "results" array from a list body.
// A missing or non-array field yields ErrNoResults.
func decodeResults[T any](endpoint string, body []byte) ([]T, error) {
	var env resultsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %v", endpoint, ErrMalformed, err)
	}
	raw := bytes.TrimSpace(env.Results)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%s: %w", endpoint, ErrNoResults)
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s results: %w: %v", endpoint, ErrMalformed, err)
	}
	return out, nil
}

// list fetches a paged list endpoint and tags each record with kind.
func (c *Client) list(ctx context.Context, endpoint string, params url.Values, page int, kind Kind, ttl time.Duration) ([]MediaRecord, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("page", strconv.Itoa(normalizePage(page)))

	body, err := c.get(ctx, endpoint, params, ttl)
	if err != nil {
		return nil, err
	}
	records, err := decodeResults[MediaRecord](endpoint, body)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Kind = kind
	}
	return records, nil
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
