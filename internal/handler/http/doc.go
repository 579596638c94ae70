// Package http implements the HTTP transport of the relay.
//
// A message posted to /api/messages is handed to the dispatcher on behalf of
// the authenticated user and every reply it produces is returned in the
// response body. Authentication, request tracing, access logging and
// response compression are handled here before a request reaches the
// dispatcher.
package http
