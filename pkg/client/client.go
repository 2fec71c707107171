// Package client provides the core Bonusly HTTP client: a generic
// request pipeline that unwraps the uniform response envelope into a
// typed value or a classified error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Defaults matching the Bonusly API.
const (
	// DefaultBaseURL is the production Bonusly API endpoint.
	DefaultBaseURL = "https://bonus.ly/api/v1"

	// DefaultTimeout bounds every request issued through the client.
	DefaultTimeout = 5 * time.Second

	// DefaultPageSize is the page size used by collection endpoints
	// unless the caller chooses another one.
	DefaultPageSize = 20
)

// Prometheus metrics for Bonusly client operations.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bonusly_requests_total",
		Help: "Total Bonusly API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bonusly_request_duration_seconds",
		Help:    "Bonusly API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"endpoint"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bonusly_errors_total",
		Help: "Total Bonusly client errors by kind",
	}, []string{"kind"})
)

// Client is the Bonusly API client. Its configuration is immutable
// after construction and a single instance is safe for any number of
// concurrent requests.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// Token is the Bonusly API access token. Required. It is attached
	// as a bearer credential and never written to logs or error text.
	Token string

	// BaseURL is the API root. Defaults to DefaultBaseURL.
	BaseURL string

	// Timeout bounds each request including body read. Defaults to
	// DefaultTimeout.
	Timeout time.Duration

	// EnableCompression requests gzip-encoded responses. On by default
	// via DefaultConfig.
	EnableCompression bool
}

// DefaultConfig returns the standard configuration for a given access
// token.
func DefaultConfig(token string) Config {
	return Config{
		Token:             token,
		BaseURL:           DefaultBaseURL,
		Timeout:           DefaultTimeout,
		EnableCompression: true,
	}
}

// New creates a new Bonusly client.
func New(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, NewConfigurationError("access token is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil || !base.IsAbs() {
		return nil, NewConfigurationError(fmt.Sprintf("invalid base URL %q", cfg.BaseURL))
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableCompression = !cfg.EnableCompression

	logger := log.With().Str("component", "bonusly-client").Logger()

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		config: cfg,
		logger: logger,
	}, nil
}

// Get performs a GET request against path and decodes the envelope
// result into T. Query may be nil.
func Get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	return do[T](ctx, c, http.MethodGet, path, query, nil)
}

// Post performs a POST request with a JSON body.
func Post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](ctx, c, http.MethodPost, path, nil, body)
}

// Put performs a PUT request with a JSON body.
func Put[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](ctx, c, http.MethodPut, path, nil, body)
}

// Delete performs a DELETE request with no body.
func Delete[T any](ctx context.Context, c *Client, path string) (T, error) {
	return do[T](ctx, c, http.MethodDelete, path, nil, nil)
}

// do is the core request pipeline. Every call runs the same steps:
// build the request, execute it, reject non-2xx statuses before the
// body is touched, decode the envelope, unwrap it.
func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var zero T
	endpoint := path

	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			errorsTotal.WithLabelValues(string(KindConfiguration)).Inc()
			return zero, NewConfigurationError(fmt.Sprintf("encode request body: %v", err))
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reqBody)
	if err != nil {
		errorsTotal.WithLabelValues(string(KindConfiguration)).Inc()
		return zero, NewConfigurationError(fmt.Sprintf("create request: %v", err))
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("method", method).
		Msg("Executing Bonusly request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("HTTP request failed")
		errorsTotal.WithLabelValues(string(KindTransport)).Inc()
		requestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return zero, newTransportError(err)
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	// Status errors take precedence over envelope errors: the body is
	// discarded without any decode attempt.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Msg("Bonusly request error")
		errorsTotal.WithLabelValues(string(KindHTTPStatus)).Inc()
		return zero, newStatusError(resp.StatusCode, resp.Status)
	}

	var env envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Response decode failed")
		errorsTotal.WithLabelValues(string(KindDecode)).Inc()
		return zero, newDecodeError(err, "")
	}

	value, err := env.unwrap()
	if err != nil {
		errorsTotal.WithLabelValues(string(KindOf(err))).Inc()
		c.logger.Debug().
			Str("endpoint", endpoint).
			Str("kind", string(KindOf(err))).
			Msg("Envelope reported failure")
		return zero, err
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("method", method).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Bonusly request complete")

	return value, nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
