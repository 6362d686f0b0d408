package writefreely

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/olgasafonova/writefreely-mcp-server/internal/infra"
)

// Config holds WriteFreely connection settings
type Config struct {
	// Host is the instance base URL (e.g., https://write.as or blog.example.com)
	Host string

	// Token is a previously issued access token (optional)
	Token string

	// Username and Password are used to log in when no token is set (optional)
	Username string
	Password string

	// Timeout bounds each request. Zero leaves deadlines to the caller's context.
	Timeout time.Duration

	// UserAgent identifies the client to the instance
	UserAgent string

	// CircuitBreaker enables fail-fast after repeated failures
	CircuitBreaker bool
}

// LoadConfig loads configuration from environment variables. Every variable is
// optional; with none set the result targets DefaultHost anonymously.
func LoadConfig() *Config {
	timeout := 30 * time.Second
	if t := os.Getenv("WRITEFREELY_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d >= 0 {
			timeout = d
		}
	}

	var breaker bool
	if v := os.Getenv("WRITEFREELY_CIRCUIT_BREAKER"); v != "" {
		breaker, _ = strconv.ParseBool(v)
	}

	host := os.Getenv("WRITEFREELY_HOST")
	if host == "" {
		host = DefaultHost
	}

	return &Config{
		Host:           host,
		Token:          os.Getenv("WRITEFREELY_TOKEN"),
		Username:       os.Getenv("WRITEFREELY_USERNAME"),
		Password:       os.Getenv("WRITEFREELY_PASSWORD"),
		Timeout:        timeout,
		UserAgent:      os.Getenv("WRITEFREELY_USER_AGENT"),
		CircuitBreaker: breaker,
	}
}

// HasCredentials returns true if both username and password are configured
func (c *Config) HasCredentials() bool {
	return c.Username != "" && c.Password != ""
}

func (c *Config) clientOptions() []ClientOption {
	var opts []ClientOption
	if c.Timeout > 0 {
		opts = append(opts, WithHTTPClient(&http.Client{Timeout: c.Timeout}))
	}
	if c.UserAgent != "" {
		opts = append(opts, WithUserAgent(c.UserAgent))
	}
	if c.CircuitBreaker {
		opts = append(opts, WithCircuitBreaker(infra.NewCircuitBreaker()))
	}
	return opts
}
