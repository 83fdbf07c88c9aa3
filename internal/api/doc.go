// Package api provides the HTTP request executor for the Sidemail API.
// It handles authentication, request/response serialization and response
// classification. It does not retry.
//
// # Requests
//
// Every request targets <host>/v1/<path> and carries these headers:
//
//   - Accept: application/json
//   - Authorization: Bearer <api key>
//   - Content-Type: application/json
//
// The body is the JSON encoding of the payload, or empty when the payload is nil.
//
// # Responses
//
// Responses are classified in this order:
//
//   - A Content-Type without application/json yields a [ContentTypeError];
//     the body is not read.
//   - A body that is not valid JSON yields a wrapped decode error.
//   - A non-2xx status yields an [Error] carrying developerMessage,
//     errorCode and moreInfo from the body.
//   - Otherwise the decoded body is returned unchanged.
//
// Transport failures are returned as a [NetworkError] that unwraps to the
// underlying cause, so errors.Is(err, context.Canceled) keeps working.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. It holds no mutable state;
// connection reuse is left to the configured http.Client's transport.
package api
