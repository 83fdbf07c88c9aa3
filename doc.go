// Package sidemail provides a Go client SDK for Sidemail, a hosted
// transactional email and contact management API.
//
// Basic usage:
//
//	client, err := sidemail.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.SendEmail(ctx, &sidemail.EmailRequest{
//	    ToAddress:     "user@example.com",
//	    FromAddress:   "you@example.com",
//	    FromName:      "Your App",
//	    TemplateName:  "Welcome",
//	    TemplateProps: map[string]any{"firstName": "Patrik"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Email ID:", resp.Get("id"))
//
// Contacts, emails and the project are managed through the resource groups
// on the client:
//
//	contact, err := client.Contacts.Find(ctx, "user@example.com")
//	page, err := client.Contacts.List(ctx, sidemail.ListContactsParams{PaginationCursorNext: cursor})
//	project, err := client.Project.Get(ctx)
//
// Errors detected locally (missing arguments, a non-JSON response) are
// returned as *LocalError; error responses from the API are returned as
// *APIError with the developer message, error code and documentation link
// from the response body:
//
//	var apiErr *sidemail.APIError
//	if errors.As(err, &apiErr) {
//	    log.Printf("%s (%s): %s", apiErr.ErrorCode, apiErr.MoreInfo, apiErr.DeveloperMessage)
//	}
//
// The client does not retry, cache or paginate on its own. Cancellation and
// deadlines come from the context passed to each call.
package sidemail
