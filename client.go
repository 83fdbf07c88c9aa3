package sidemail

import (
	"context"
	"net/http"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sidemail/sidemail-go/internal/api"
)

// requestFunc is the request executor shared by the resource method groups.
type requestFunc func(ctx context.Context, path string, payload any, opts ...RequestOption) (Response, error)

// Client is the Sidemail API client.
// A Client is immutable after construction and safe for concurrent use.
type Client struct {
	apiClient *api.Client

	// Contacts manages the project's contact list.
	Contacts *ContactMethods
	// Email sends, searches and manages individual emails.
	Email *EmailMethods
	// Project manages the project settings.
	Project *ProjectMethods
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	httpClient := cfg.httpClient
	if cfg.timeout > 0 {
		if httpClient == nil {
			httpClient = &http.Client{}
		} else {
			copied := *httpClient
			httpClient = &copied
		}
		httpClient.Timeout = cfg.timeout
	}

	return api.NewClient(api.Config{
		APIKey:     apiKey,
		Host:       cfg.host,
		HTTPClient: httpClient,
		Logger:     cfg.logger,
	})
}

// New creates a new Sidemail client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if err := requirePresent(apiKey, validation.Required, ErrMissingAPIKey,
		"apiKey missing: a Sidemail API key is required to create a client"); err != nil {
		return nil, err
	}

	cfg := &clientConfig{
		host: defaultHost,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, wrapError(err) //coverage:ignore
	}

	c := &Client{apiClient: apiClient}
	c.Contacts = &ContactMethods{do: c.Do}
	c.Email = &EmailMethods{do: c.Do}
	c.Project = &ProjectMethods{do: c.Do}

	return c, nil
}

// Configure creates a new Sidemail client from a Config.
func Configure(cfg Config) (*Client, error) {
	var opts []Option
	if cfg.Host != "" {
		opts = append(opts, WithHost(cfg.Host))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, WithHTTPClient(cfg.HTTPClient))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, WithTimeout(cfg.Timeout))
	}
	opts = append(opts, WithLogger(cfg.Logger))
	return New(cfg.APIKey, opts...)
}

// NewFromEnv creates a client from the SIDEMAIL_API_KEY and SIDEMAIL_HOST
// environment variables. Explicit options take precedence over the environment.
func NewFromEnv(opts ...Option) (*Client, error) {
	var envOpts []Option
	if host := os.Getenv(envHost); host != "" {
		envOpts = append(envOpts, WithHost(host))
	}
	return New(os.Getenv(envAPIKey), append(envOpts, opts...)...)
}

// Host returns the API host the client sends requests to.
func (c *Client) Host() string {
	return c.apiClient.Host()
}

// APIURL returns the absolute URL for an API path, e.g. "email/send".
func (c *Client) APIURL(path string) string {
	return c.apiClient.URL(path)
}

// Do performs an authenticated request against path and returns the decoded
// JSON response. The payload, when non-nil, is sent as the JSON body.
// The method defaults to POST; use WithMethod to change it.
//
// Errors are a *LocalError when the response is not JSON, an *APIError when
// the API responds with a non-2xx status, or a wrapped transport or decode error.
func (c *Client) Do(ctx context.Context, path string, payload any, opts ...RequestOption) (Response, error) {
	cfg := &requestConfig{method: http.MethodPost}
	for _, opt := range opts {
		opt(cfg)
	}

	body, err := c.apiClient.Do(ctx, cfg.method, path, payload)
	if err != nil {
		return Response{}, wrapError(err)
	}
	return Response{body: body}, nil
}

// SendEmail sends an email. data is typically an *EmailRequest but may be any
// value that encodes to the JSON expected by the email/send endpoint.
func (c *Client) SendEmail(ctx context.Context, data any) (Response, error) {
	return c.Do(ctx, "email/send", data)
}

// SendMail sends an email.
//
// Deprecated: Use SendEmail instead.
func (c *Client) SendMail(ctx context.Context, data any) (Response, error) {
	return c.SendEmail(ctx, data)
}
