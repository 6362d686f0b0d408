package writefreely

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/olgasafonova/writefreely-mcp-server/internal/base"
	"github.com/olgasafonova/writefreely-mcp-server/internal/infra"
	"github.com/olgasafonova/writefreely-mcp-server/metrics"
	"github.com/olgasafonova/writefreely-mcp-server/tracing"
	"go.opentelemetry.io/otel/codes"
)

// DefaultHost is the hosted Write.as instance
const DefaultHost = "https://write.as"

// Client talks to one WriteFreely instance. It holds the normalized host and,
// once authenticated, an access token.
type Client struct {
	*base.Client

	host     string
	policies map[Operation]AuthPolicy

	mu    sync.RWMutex
	token string
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		if c != nil {
			client.HTTPClient = c
		}
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		if l != nil {
			client.Logger = l
		}
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) ClientOption {
	return func(client *Client) {
		if ua != "" {
			client.UserAgent = ua
		}
	}
}

// WithCircuitBreaker makes the client fail fast after repeated transport or
// server failures. Off by default.
func WithCircuitBreaker(cb *infra.CircuitBreaker) ClientOption {
	return func(client *Client) {
		client.CircuitBreaker = cb
	}
}

// WithToken starts the client authenticated with an existing access token
func WithToken(token string) ClientOption {
	return func(client *Client) {
		client.token = token
	}
}

// WithAuthPolicy overrides the auth policy of one operation for this client
func WithAuthPolicy(op Operation, policy AuthPolicy) ClientOption {
	return func(client *Client) {
		client.policies[op] = policy
	}
}

// NewClient creates a client for host without any network I/O. An empty host
// means DefaultHost.
func NewClient(host string, opts ...ClientOption) *Client {
	policies := make(map[Operation]AuthPolicy, len(defaultPolicies))
	for op, p := range defaultPolicies {
		policies[op] = p
	}

	c := &Client{
		Client:   base.NewClient(),
		host:     NormalizeHost(host),
		policies: policies,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect creates a client from cfg. A configured token is used as is;
// otherwise, when both username and password are set, it logs in before
// returning. Anything else yields an anonymous client.
func Connect(ctx context.Context, cfg *Config, opts ...ClientOption) (*Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	all := append(cfg.clientOptions(), opts...)
	c := NewClient(cfg.Host, all...)

	switch {
	case cfg.Token != "":
		c.setToken(cfg.Token)
	case cfg.HasCredentials():
		if _, err := c.Login(ctx, cfg.Username, cfg.Password); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// NormalizeHost strips trailing slashes and defaults the scheme to https.
func NormalizeHost(host string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		return DefaultHost
	}
	host = strings.TrimRight(host, "/")
	lower := strings.ToLower(host)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		host = "https://" + host
	}
	return host
}

// Host returns the normalized base URL
func (c *Client) Host() string {
	return c.host
}

// Token returns the current access token, or "" when anonymous
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// IsAuthenticated reports whether the client holds an access token. It makes
// no request; whether the token is still valid is up to the instance.
func (c *Client) IsAuthenticated() bool {
	return c.Token() != ""
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Policy returns the auth policy this client applies to op
func (c *Client) Policy(op Operation) AuthPolicy {
	if p, ok := c.policies[op]; ok {
		return p
	}
	return AuthRequired
}

// Do sends one request to the instance and returns the unwrapped "data" value.
// An empty success body yields nil data and a nil error. Typed operations are
// built on it; it is exported for endpoints this package does not cover.
func (c *Client) Do(ctx context.Context, method, path string, policy AuthPolicy, payload any) (json.RawMessage, error) {
	return c.do(ctx, Operation(method+" "+path), policy, method, path, payload)
}

// call runs op with the policy this client holds for it
func (c *Client) call(ctx context.Context, op Operation, method, path string, payload any) (json.RawMessage, error) {
	return c.do(ctx, op, c.Policy(op), method, path, payload)
}

func (c *Client) do(ctx context.Context, op Operation, policy AuthPolicy, method, path string, payload any) (json.RawMessage, error) {
	ctx, span := tracing.StartSpan(ctx, "writefreely."+string(op))
	defer span.End()
	tracing.AddAPIAttributes(span, method, path, policy.String())

	header := http.Header{}
	header.Set("Content-Type", "application/json")

	token := c.Token()
	switch policy {
	case AuthRequired:
		if token == "" {
			metrics.RecordAuthFailure(metrics.AuthReasonMissingToken)
			err := &AuthenticationRequiredError{Operation: string(op)}
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		header.Set("Authorization", "Token "+token)
	case AuthOptional:
		if token != "" {
			header.Set("Authorization", "Token "+token)
		}
	}

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", op, err)
		}
	}

	start := time.Now()
	respBody, status, err := c.DoRequest(ctx, base.RequestConfig{
		Method: method,
		URL:    c.host + path,
		Body:   body,
		Header: header,
	})
	if err != nil {
		tracing.RecordError(span, err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if status >= http.StatusBadRequest {
		if status == http.StatusUnauthorized {
			metrics.RecordAuthFailure(metrics.AuthReasonRejected)
		}
		httpErr := &HTTPError{Method: method, Path: path, StatusCode: status, Body: respBody}
		span.SetStatus(codes.Error, httpErr.Error())
		return nil, httpErr
	}

	data, err := unwrapEnvelope(path, respBody)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	c.Logger.Debug("WriteFreely operation completed",
		"operation", op,
		"status", status,
		"authenticated", token != "" && policy != AuthNone,
		"duration", time.Since(start))
	span.SetStatus(codes.Ok, "")
	return data, nil
}

// unwrapEnvelope extracts "data" from a {"data": ...} success body
func unwrapEnvelope(path string, body []byte) (json.RawMessage, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &MalformedResponseError{Path: path, Reason: "body is not a JSON object", Err: err}
	}
	data, ok := envelope["data"]
	if !ok {
		return nil, &MalformedResponseError{Path: path, Reason: `missing "data" field`}
	}
	return data, nil
}

// decodeData decodes the unwrapped data into dest. Operations that expect a
// payload treat an empty body as malformed, and a null record as missing. A
// null list decodes to an empty one.
func decodeData(path string, data json.RawMessage, dest any) error {
	if data == nil {
		return &MalformedResponseError{Path: path, Reason: "empty response body"}
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) && isRecord(dest) {
		return &MalformedResponseError{Path: path, Reason: `"data" is null`}
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return &MalformedResponseError{Path: path, Reason: "unexpected data shape", Err: err}
	}
	return nil
}

func isRecord(dest any) bool {
	t := reflect.TypeOf(dest)
	return t != nil && t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct
}

// first returns the first element of a batch response
func first[T any](path string, items []T) (*T, error) {
	if len(items) == 0 {
		return nil, &MalformedResponseError{Path: path, Reason: "empty batch result"}
	}
	return &items[0], nil
}
