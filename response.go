package sidemail

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Response is the decoded JSON body of a successful API call.
// Its shape is defined by the API; the client passes it through unchanged.
// Sidemail responds with objects, but arrays and scalars are kept as well.
type Response struct {
	body any
}

// Value returns the decoded body: a map[string]any for JSON objects,
// []any for arrays, or a string, float64, bool or nil for scalars.
func (r Response) Value() any {
	return r.body
}

// Get returns the top-level field key, or nil when the body is not an
// object or has no such field.
func (r Response) Get(key string) any {
	fields, _ := r.body.(map[string]any)
	return fields[key]
}

// Decode maps the response onto out, which must be a pointer.
// Struct fields are matched by their json tag; RFC 3339 strings decode into time.Time.
func (r Response) Decode(out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339),
		TagName:    "json",
		Result:     out,
	})
	if err != nil {
		return fmt.Errorf("create decoder: %w", err)
	}
	if err := decoder.Decode(r.body); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
