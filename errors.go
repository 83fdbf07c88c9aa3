package sidemail

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sidemail/sidemail-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingContactData is returned when CreateOrUpdate is called without contact data.
	ErrMissingContactData = errors.New("contact data is required")

	// ErrMissingEmailAddress is returned when a contact operation is called without an email address.
	ErrMissingEmailAddress = errors.New("email address is required")

	// ErrUnexpectedContentType is returned when the API responds with a non-JSON body.
	ErrUnexpectedContentType = errors.New("unexpected content type")

	// ErrUnauthorized is matched by API errors with status 401.
	ErrUnauthorized = errors.New("invalid API key")

	// ErrNotFound is matched by API errors with status 404.
	ErrNotFound = errors.New("resource not found")
)

// SidemailError is implemented by all errors classified by the SDK.
type SidemailError interface {
	error
	SidemailError() // marker method
}

// LocalError reports a problem detected on the client side: a missing
// required argument or a response the client cannot interpret.
// Retrying the same call will not help.
type LocalError struct {
	Message string
	Err     error
}

func (e *LocalError) Error() string {
	return e.Message
}

// Unwrap returns the sentinel describing the failure.
func (e *LocalError) Unwrap() error {
	return e.Err
}

// SidemailError implements the SidemailError interface.
func (e *LocalError) SidemailError() {}

// APIError represents a non-success response from the Sidemail API.
// DeveloperMessage, ErrorCode and MoreInfo are echoed verbatim from the
// response body and are empty when the body did not contain them.
type APIError struct {
	StatusCode       int
	DeveloperMessage string
	ErrorCode        string
	MoreInfo         string
}

func (e *APIError) Error() string {
	if e.DeveloperMessage != "" {
		return e.DeveloperMessage
	}
	return fmt.Sprintf("Sidemail API error %d", e.StatusCode)
}

// SidemailError implements the SidemailError interface.
func (e *APIError) SidemailError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return target == ErrUnauthorized
	case http.StatusNotFound:
		return target == ErrNotFound
	}
	return false
}

// requirePresent returns a *LocalError wrapping cause when value fails rule.
// Only the rule runs; a Validate method on value itself is never called.
func requirePresent(value any, rule validation.Rule, cause error, message string) error {
	if err := rule.Validate(value); err != nil {
		return &LocalError{Message: message, Err: cause}
	}
	return nil
}

// wrapError converts internal API errors to public errors.
// This ensures that errors.As() and errors.Is() work with the public types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode:       apiErr.StatusCode,
			DeveloperMessage: apiErr.DeveloperMessage,
			ErrorCode:        apiErr.ErrorCode,
			MoreInfo:         apiErr.MoreInfo,
		}
	}

	var ctErr *api.ContentTypeError
	if errors.As(err, &ctErr) {
		return &LocalError{
			Message: "Sidemail API responded with unexpected content type " + strconv.Quote(ctErr.ContentType),
			Err:     ErrUnexpectedContentType,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return fmt.Errorf("request to %s failed: %w", netErr.URL, netErr.Err)
	}

	return err
}
