package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"octofit/internal/metrics"
	"octofit/internal/record"
	"octofit/internal/resource"
	"octofit/pkg/logging"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const subsystem = "API"

// Client reads resource collections. All methods are safe for concurrent use.
type Client interface {
	// FetchCollection issues one GET for def and returns its normalized records.
	FetchCollection(ctx context.Context, def resource.Definition) ([]record.Record, error)
	// Endpoint returns the URL FetchCollection requests for def.
	Endpoint(def resource.Definition) string
	// BaseURL returns the API root the client was built with.
	BaseURL() string
}

type httpClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	timeout time.Duration
}

// ClientOption is a functional option for configuring the HTTP client.
type ClientOption func(*httpClient)

// WithRateLimiter sets a client-side rate limiter. rps <= 0 disables it.
func WithRateLimiter(rps float64) ClientOption {
	return func(c *httpClient) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), int(math.Max(1, rps)))
		}
	}
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *httpClient) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *httpClient) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient creates a client rooted at baseURL.
func NewClient(baseURL string, opts ...ClientOption) Client {
	c := &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *httpClient) BaseURL() string { return c.baseURL }

func (c *httpClient) Endpoint(def resource.Definition) string {
	return def.Endpoint(c.baseURL)
}

func (c *httpClient) FetchCollection(ctx context.Context, def resource.Definition) ([]record.Record, error) {
	requestID := uuid.NewString()
	fail := func(kind ErrorKind, status int, err error) error {
		metrics.Metrics.APIErrorsTotal.WithLabelValues(def.Name, string(kind)).Inc()
		fe := &FetchError{Resource: def.Name, Kind: kind, StatusCode: status, RequestID: requestID, Err: err}
		logging.Error(subsystem, fe, "request %s for %s failed", requestID, def.Name)
		return fe
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fail(KindNetwork, 0, fmt.Errorf("rate limiter wait: %w", err))
		}
	}

	endpoint := c.Endpoint(def)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fail(KindNetwork, 0, fmt.Errorf("creating GET request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	logging.Debug(subsystem, "request %s: GET %s", requestID, endpoint)

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.Metrics.APIRequestsTotal.WithLabelValues(def.Name).Inc()
	metrics.Metrics.APILatency.WithLabelValues(def.Name).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fail(KindNetwork, 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fail(KindNetwork, resp.StatusCode, fmt.Errorf("reading response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fail(KindStatus, resp.StatusCode, fmt.Errorf("%s", truncateBody(body)))
	}

	records, err := record.ParseCollection(body)
	if err != nil {
		kind := KindShape
		if errors.Is(err, record.ErrNotJSON) {
			kind = KindDecode
		}
		return nil, fail(kind, resp.StatusCode, err)
	}

	metrics.Metrics.APIRecordsTotal.WithLabelValues(def.Name).Add(float64(len(records)))
	logging.Debug(subsystem, "request %s: %d %s in %s", requestID, len(records), def.Name, time.Since(start).Round(time.Millisecond))
	return records, nil
}

// truncateBody returns the first 200 bytes of a response body for error text.
func truncateBody(body []byte) string {
	if len(body) > 200 {
		return string(body[:200]) + "..."
	}
	return string(body)
}
