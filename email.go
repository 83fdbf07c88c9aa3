package sidemail

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// EmailRequest is the payload for sending an email.
// Either TemplateName/TemplateID or one of HTML, Text and Markdown is expected.
type EmailRequest struct {
	ToAddress     string            `json:"toAddress"`
	FromAddress   string            `json:"fromAddress"`
	FromName      string            `json:"fromName,omitempty"`
	Subject       string            `json:"subject,omitempty"`
	TemplateName  string            `json:"templateName,omitempty"`
	TemplateID    string            `json:"templateId,omitempty"`
	TemplateProps map[string]any    `json:"templateProps,omitempty"`
	HTML          string            `json:"html,omitempty"`
	Text          string            `json:"text,omitempty"`
	Markdown      string            `json:"markdown,omitempty"`
	ScheduledAt   *time.Time        `json:"scheduledAt,omitempty"`
	Attachments   []Attachment      `json:"attachments,omitempty"`
	Headers       map[string]string `json:"headers,omitempty"`
}

// Attachment is a file attached to an outgoing email.
// Content is the base64-encoded file content.
type Attachment struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// EmailMethods groups the email operations.
type EmailMethods struct {
	do requestFunc
}

// Send sends an email.
func (m *EmailMethods) Send(ctx context.Context, data any) (Response, error) {
	return m.do(ctx, "email/send", data, WithMethod(http.MethodPost))
}

// Search searches sent emails. data holds the query, e.g. {"query": {...}}.
func (m *EmailMethods) Search(ctx context.Context, data any) (Response, error) {
	return m.do(ctx, "email/search", data, WithMethod(http.MethodPost))
}

// Get returns the email with the given ID.
func (m *EmailMethods) Get(ctx context.Context, id string) (Response, error) {
	return m.do(ctx, "email/"+url.PathEscape(id), nil, WithMethod(http.MethodGet))
}

// Delete deletes the email with the given ID.
func (m *EmailMethods) Delete(ctx context.Context, id string) (Response, error) {
	return m.do(ctx, "email/"+url.PathEscape(id), nil, WithMethod(http.MethodDelete))
}
