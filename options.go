package sidemail

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultHost = "https://api.sidemail.io"

	envAPIKey = "SIDEMAIL_API_KEY"
	envHost   = "SIDEMAIL_HOST"
)

// Config is the struct form of the client configuration, accepted by Configure.
type Config struct {
	// APIKey is your Sidemail project API key. Required.
	APIKey string
	// Host overrides the API host. Defaults to https://api.sidemail.io.
	Host string
	// HTTPClient overrides the HTTP client used for all requests.
	HTTPClient *http.Client
	// Timeout sets http.Client.Timeout. Zero means no client-level timeout.
	Timeout time.Duration
	// Logger receives per-request debug logs. The zero Logger disables logging.
	Logger zerolog.Logger
}

// clientConfig holds configuration for the client.
type clientConfig struct {
	host       string
	httpClient *http.Client
	timeout    time.Duration
	logger     zerolog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithHost sets the API host, e.g. "https://api.sidemail.io".
// The versioned base path is appended automatically.
func WithHost(host string) Option {
	return func(c *clientConfig) {
		c.host = host
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
// Without it, requests are bounded only by the context passed to each call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger used for request debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// requestConfig holds per-call request settings.
type requestConfig struct {
	method string
}

// RequestOption configures a single call to Client.Do.
type RequestOption func(*requestConfig)

// WithMethod sets the HTTP method. The default is POST.
func WithMethod(method string) RequestOption {
	return func(c *requestConfig) {
		c.method = method
	}
}

// ListContactsParams holds the optional parameters for listing contacts.
type ListContactsParams struct {
	// PaginationCursorNext is the cursor returned by the previous page.
	PaginationCursorNext string
}
