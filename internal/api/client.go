package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultHost is the production Sidemail API host.
	DefaultHost = "https://api.sidemail.io"
	// BasePath is the versioned prefix placed between the host and every request path.
	BasePath = "/v1/"
)

// Client is the HTTP API client.
type Client struct {
	host       string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Config holds the configuration for creating a new Client.
type Config struct {
	// APIKey is sent as a bearer token on every request. Required.
	APIKey string
	// Host is the API host without the version prefix. Defaults to DefaultHost.
	Host string
	// HTTPClient is used for all requests. Defaults to a client on
	// http.DefaultTransport, which keeps connections alive.
	HTTPClient *http.Client
	// Logger receives debug output for each request. The zero Logger is silent.
	Logger zerolog.Logger
}

// NewClient creates a new API client from cfg.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		host:       cfg.Host,
		apiKey:     cfg.APIKey,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}
	if c.host == "" {
		c.host = DefaultHost
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}

	return c, nil
}

// Host returns the configured API host.
func (c *Client) Host() string {
	return c.host
}

// URL returns the absolute URL for path. The path is not validated.
func (c *Client) URL(path string) string {
	return c.host + BasePath + path
}

// Do performs an authenticated request and returns the decoded JSON body,
// which may be any JSON value.
//
// A nil payload, including a typed nil pointer or map, sends no body. A
// response whose Content-Type is not JSON is rejected with a *ContentTypeError
// before the body is read. A non-2xx response is always returned as an *Error.
func (c *Client) Do(ctx context.Context, method, path string, payload any) (any, error) {
	var bodyReader io.Reader
	if !isNil(payload) {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	url := c.URL(path)
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("method", method).
			Str("url", url).
			Msg("Sidemail API request failed")
		return nil, &NetworkError{Err: err, URL: url}
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Sidemail API request")

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return nil, &ContentTypeError{StatusCode: resp.StatusCode, ContentType: contentType}
	}

	var body any
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr != nil {
			body = nil
		}
		return nil, parseErrorBody(resp.StatusCode, body)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	return body, nil
}

// parseErrorBody copies the error fields out of an already decoded body.
// Missing or non-string fields, or a body that is not an object, leave them empty.
func parseErrorBody(statusCode int, body any) *Error {
	apiErr := &Error{StatusCode: statusCode}
	fields, ok := body.(map[string]any)
	if !ok {
		return apiErr
	}
	apiErr.DeveloperMessage, _ = fields["developerMessage"].(string)
	apiErr.ErrorCode, _ = fields["errorCode"].(string)
	apiErr.MoreInfo, _ = fields["moreInfo"].(string)
	return apiErr
}

// isNil reports whether payload is nil or a nil pointer, map, slice or interface.
func isNil(payload any) bool {
	if payload == nil {
		return true
	}
	v := reflect.ValueOf(payload)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}
