package sidemail

import (
	"context"
	"net/http"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Contact is a contact record as accepted by Contacts.CreateOrUpdate.
// Any other JSON-encodable value works too; Contact only covers the common fields.
type Contact struct {
	EmailAddress string         `json:"emailAddress"`
	Identifier   string         `json:"identifier,omitempty"`
	IsSubscribed *bool          `json:"isSubscribed,omitempty"`
	Groups       []string       `json:"groups,omitempty"`
	Timezone     string         `json:"timezone,omitempty"`
	CustomProps  map[string]any `json:"customProps,omitempty"`
}

// ContactMethods groups the contact operations.
type ContactMethods struct {
	do requestFunc
}

// CreateOrUpdate creates a contact, or updates it when one with the same
// email address already exists.
func (m *ContactMethods) CreateOrUpdate(ctx context.Context, contactData any) (Response, error) {
	if err := requirePresent(contactData, validation.NotNil, ErrMissingContactData,
		"missing contact data: CreateOrUpdate requires the contact to create or update"); err != nil {
		return Response{}, err
	}
	return m.do(ctx, "contacts", contactData)
}

// Find returns the contact with the given email address.
func (m *ContactMethods) Find(ctx context.Context, emailAddress string) (Response, error) {
	if err := requireEmailAddress(emailAddress, "find"); err != nil {
		return Response{}, err
	}
	return m.do(ctx, "contacts/"+url.PathEscape(emailAddress), nil, WithMethod(http.MethodGet))
}

// List returns a page of contacts. Pass the paginationCursorNext value from
// the previous response to fetch the next page.
func (m *ContactMethods) List(ctx context.Context, params ...ListContactsParams) (Response, error) {
	query := url.Values{}
	for _, p := range params {
		if p.PaginationCursorNext != "" {
			query.Set("paginationCursorNext", p.PaginationCursorNext)
		}
	}
	return m.do(ctx, "contacts?"+query.Encode(), nil, WithMethod(http.MethodGet))
}

// Delete removes the contact with the given email address.
func (m *ContactMethods) Delete(ctx context.Context, emailAddress string) (Response, error) {
	if err := requireEmailAddress(emailAddress, "delete"); err != nil {
		return Response{}, err
	}
	return m.do(ctx, "contacts/"+url.PathEscape(emailAddress), nil, WithMethod(http.MethodDelete))
}

func requireEmailAddress(emailAddress, action string) error {
	return requirePresent(emailAddress, validation.Required, ErrMissingEmailAddress,
		"missing emailAddress: provide the email address of the contact you wish to "+action)
}
