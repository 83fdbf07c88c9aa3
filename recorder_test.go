package sidemail

import (
	"context"
	"net/http"
)

// recordedCall is a single invocation of the request executor.
type recordedCall struct {
	Path    string
	Payload any
	Method  string
}

// recorder is a fake request executor that records calls instead of
// performing them.
type recorder struct {
	calls []recordedCall
	resp  Response
	err   error
}

func newRecorder() *recorder {
	return &recorder{resp: Response{body: map[string]any{"is": "ok"}}}
}

func (r *recorder) do(_ context.Context, path string, payload any, opts ...RequestOption) (Response, error) {
	cfg := &requestConfig{method: http.MethodPost}
	for _, opt := range opts {
		opt(cfg)
	}
	r.calls = append(r.calls, recordedCall{Path: path, Payload: payload, Method: cfg.method})
	return r.resp, r.err
}
