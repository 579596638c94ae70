// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the authentication middleware and request decoding.
// Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when a token is required and
	// the request has no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserID is returned when no sign key is configured and the
	// request carries no X-User-ID header.
	ErrNoUserID = errors.New("no user id provided")

	// ErrInvalidMessage is returned for a message the validator rejects,
	// such as one that is not valid UTF-8 or is too long.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrDecodingRequest is returned when the request body is not valid JSON.
	ErrDecodingRequest = errors.New("error decoding request body")
)
