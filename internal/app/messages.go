// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// relay's service, dispatcher and HTTP handlers.
//
// Msg* constants are written to users as chat replies; HTTP-level Msg*
// constants end up in response bodies. Keeping them in one place ensures
// consistent wording.
package app

import "strings"

// Chat replies.
const (
	// MsgSelectProvider opens the registration flow; the provider names are
	// shown as a keyboard next to it.
	MsgSelectProvider = "Please select an LLM Provider"

	// MsgProvideCredentialFormat asks for the credential of the picked
	// provider. The verb is the provider name.
	MsgProvideCredentialFormat = "Please provide an API key for %s."

	// MsgInvalidProvider is sent when the text after /connect is not an exact
	// provider name. Registration is cancelled.
	MsgInvalidProvider = "Invalid response, canceling."

	// MsgConnected confirms a completed registration.
	MsgConnected = "Success! You can start chatting now."

	// MsgAlreadyConnected is sent on /connect while a backend is attached.
	MsgAlreadyConnected = "You are already connected to an LLM. Please /disconnect first."

	// MsgCancelled confirms /cancel.
	MsgCancelled = "Okay, action was canceled."

	// MsgNothingToCancel is sent on /cancel outside the registration flow.
	MsgNothingToCancel = "There is nothing to cancel."

	// MsgDisconnected confirms /disconnect.
	MsgDisconnected = "All user data deleted from my memory."

	// MsgNotConnected is sent when free text arrives without an attached
	// backend.
	MsgNotConnected = "You are not connected to an LLM. Please /connect first."

	// MsgRegistrationInProgress is sent while a credential is being checked.
	MsgRegistrationInProgress = "Still checking your API key, please wait."

	// MsgRegistrationSuperseded is sent when a credential check finished
	// after the user cancelled or disconnected.
	MsgRegistrationSuperseded = "Registration was canceled before it finished."

	// MsgConstructionFailedFormat reports a rejected credential. The verbs
	// are the provider name and the cause.
	MsgConstructionFailedFormat = "Could not connect to %s: %v"

	// MsgTransportFailedFormat reports a failed chat turn. The verbs are the
	// provider name and the cause.
	MsgTransportFailedFormat = "%s did not answer: %v"

	// MsgPersistenceFailed is sent when a connected session could not be
	// stored or removed.
	MsgPersistenceFailed = "Sorry, I could not update my memory. Please try again."

	// MsgUnexpectedError is sent when handling a message failed for a
	// reason the user cannot act on.
	MsgUnexpectedError = "Something went wrong, please try again later."
)

// MsgHelp lists the commands a user can send.
var MsgHelp = strings.Join([]string{
	"Hello!",
	"These commands will help you get started:",
	"/start - shows this message",
	"/connect - connects an LLM",
	"/disconnect - disconnects an LLM",
}, "\n")

// HTTP response bodies.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when neither a token nor the
	// X-User-ID header identifies the user.
	MsgNoUserIDProvided = "no user id provided"
)
