package api

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned by NewClient when no API key is configured.
var ErrMissingAPIKey = errors.New("API key is required")

// Error represents a non-2xx response from the Sidemail API.
// The message fields are copied verbatim from the JSON error body.
type Error struct {
	StatusCode       int
	DeveloperMessage string
	ErrorCode        string
	MoreInfo         string
}

func (e *Error) Error() string {
	if e.DeveloperMessage != "" {
		return e.DeveloperMessage
	}
	return fmt.Sprintf("API error: %d", e.StatusCode)
}

// ContentTypeError is returned when the API responds with something other than JSON.
type ContentTypeError struct {
	StatusCode  int
	ContentType string
}

func (e *ContentTypeError) Error() string {
	return fmt.Sprintf("unexpected content type %q (status %d)", e.ContentType, e.StatusCode)
}

// NetworkError represents a transport-level failure.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
