package sidemail

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailMethods(t *testing.T) {
	payload := map[string]any{"fromAddress": "marry@lightning.com"}

	tests := []struct {
		name string
		call func(context.Context, *EmailMethods) (Response, error)
		want recordedCall
	}{
		{
			name: "Send",
			call: func(ctx context.Context, m *EmailMethods) (Response, error) { return m.Send(ctx, payload) },
			want: recordedCall{Path: "email/send", Payload: payload, Method: http.MethodPost},
		},
		{
			name: "Search",
			call: func(ctx context.Context, m *EmailMethods) (Response, error) { return m.Search(ctx, payload) },
			want: recordedCall{Path: "email/search", Payload: payload, Method: http.MethodPost},
		},
		{
			name: "Get",
			call: func(ctx context.Context, m *EmailMethods) (Response, error) { return m.Get(ctx, "123") },
			want: recordedCall{Path: "email/123", Method: http.MethodGet},
		},
		{
			name: "Delete",
			call: func(ctx context.Context, m *EmailMethods) (Response, error) { return m.Delete(ctx, "123") },
			want: recordedCall{Path: "email/123", Method: http.MethodDelete},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder()
			resp, err := tt.call(context.Background(), &EmailMethods{do: rec.do})
			require.NoError(t, err)
			assert.Equal(t, "ok", resp.Get("is"))

			require.Len(t, rec.calls, 1)
			assert.Equal(t, tt.want, rec.calls[0])
		})
	}
}

func TestEmailMethods_PropagatesError(t *testing.T) {
	rec := newRecorder()
	rec.resp = Response{}
	rec.err = &APIError{StatusCode: http.StatusNotFound, DeveloperMessage: "Email not found."}

	_, err := (&EmailMethods{do: rec.do}).Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestEmailRequest_OmitsEmptyFields(t *testing.T) {
	client, requests := newTestServer(t, http.StatusOK, map[string]string{"id": "abc"})

	_, err := client.Email.Send(context.Background(), &EmailRequest{
		ToAddress:   "marry@lightning.com",
		FromAddress: "you@example.com",
		Subject:     "Hi",
		Text:        "Hello",
		Attachments: []Attachment{{Name: "a.txt", Content: "aGVsbG8="}},
	})
	require.NoError(t, err)

	got := requests()
	require.Len(t, got, 1)
	assert.JSONEq(t, `{
		"toAddress": "marry@lightning.com",
		"fromAddress": "you@example.com",
		"subject": "Hi",
		"text": "Hello",
		"attachments": [{"name": "a.txt", "content": "aGVsbG8="}]
	}`, string(got[0].Body))
}
