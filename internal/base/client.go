// Package base provides shared HTTP client infrastructure for the WriteFreely API client.
package base

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/olgasafonova/writefreely-mcp-server/internal/infra"
	"github.com/olgasafonova/writefreely-mcp-server/metrics"
)

// DefaultUserAgent identifies the client to WriteFreely instances
const DefaultUserAgent = "writefreely-mcp-server/1.0"

// Client holds the transport-level pieces shared by every API call: the HTTP
// client, the logger, and an optional circuit breaker. It performs exactly one
// attempt per request.
type Client struct {
	HTTPClient     *http.Client
	Logger         *slog.Logger
	CircuitBreaker *infra.CircuitBreaker // nil disables fail-fast
	UserAgent      string
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.HTTPClient = c
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.Logger = l
	}
}

// WithCircuitBreaker enables fail-fast behaviour backed by cb
func WithCircuitBreaker(cb *infra.CircuitBreaker) ClientOption {
	return func(client *Client) {
		client.CircuitBreaker = cb
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) ClientOption {
	return func(client *Client) {
		client.UserAgent = ua
	}
}

// NewClient creates a new base client. The default HTTP client carries no
// timeout of its own; deadlines come from the caller's context.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		HTTPClient: &http.Client{},
		Logger:     slog.Default(),
		UserAgent:  DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// CircuitBreakerStats returns the current circuit breaker state, or a closed
// state when no breaker is configured
func (c *Client) CircuitBreakerStats() infra.CircuitBreakerStats {
	if c.CircuitBreaker == nil {
		return infra.CircuitBreakerStats{State: infra.CircuitClosed.String()}
	}
	return c.CircuitBreaker.Stats()
}

// CheckCircuitBreaker returns nil if requests are allowed, or an error if the circuit is open
func (c *Client) CheckCircuitBreaker(host string) error {
	if c.CircuitBreaker == nil || c.CircuitBreaker.Allow() {
		return nil
	}
	stats := c.CircuitBreaker.Stats()
	metrics.CircuitOpenRejections.Inc()
	return &infra.ErrCircuitOpen{
		Host:     host,
		RetryAt:  stats.RetryAt,
		Failures: stats.ConsecutiveFails,
	}
}

// RequestConfig configures a single HTTP request
type RequestConfig struct {
	Method string
	URL    string
	Body   []byte      // nil sends no body
	Header http.Header // applied after the default headers
}

// DoRequest performs one HTTP round trip and returns the response body and
// status code. Transport errors from the HTTP client are returned unchanged;
// status handling is left to the caller.
func (c *Client) DoRequest(ctx context.Context, cfg RequestConfig) ([]byte, int, error) {
	method := cfg.Method
	if method == "" {
		method = http.MethodGet
	}

	if err := c.CheckCircuitBreaker(hostOf(cfg.URL)); err != nil {
		return nil, 0, err
	}

	var body io.Reader
	if cfg.Body != nil {
		body = bytes.NewReader(cfg.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, cfg.URL, body)
	if err != nil {
		// Allow may have handed out a half-open slot
		c.recordOutcome(false)
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)
	for key, values := range cfg.Header {
		for i, v := range values {
			if i == 0 {
				req.Header.Set(key, v)
			} else {
				req.Header.Add(key, v)
			}
		}
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		metrics.RecordAPICall(method, 0, time.Since(start).Seconds())
		c.recordOutcome(false)
		c.Logger.Warn("WriteFreely API request failed",
			"method", method,
			"url", cfg.URL,
			"error", err)
		return nil, 0, err
	}

	respBody, err := readAndClose(resp)
	duration := time.Since(start)
	metrics.RecordAPICall(method, resp.StatusCode, duration.Seconds())
	if err != nil {
		c.recordOutcome(false)
		return nil, resp.StatusCode, err
	}

	// 4xx means the instance is healthy and said no.
	c.recordOutcome(resp.StatusCode < http.StatusInternalServerError)

	c.Logger.Debug("WriteFreely API request",
		"method", method,
		"url", cfg.URL,
		"status", resp.StatusCode,
		"duration", duration,
		"bytes", len(respBody))
	if resp.StatusCode >= http.StatusBadRequest {
		c.Logger.Debug("WriteFreely API error body",
			"status", resp.StatusCode,
			"body", truncate(string(respBody), 200))
	}

	return respBody, resp.StatusCode, nil
}

func (c *Client) recordOutcome(ok bool) {
	if c.CircuitBreaker == nil {
		return
	}
	if ok {
		c.CircuitBreaker.RecordSuccess()
	} else {
		c.CircuitBreaker.RecordFailure()
	}
}

// readAndClose reads the response body and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Scheme + "://" + u.Host
}
