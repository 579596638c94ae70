// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageRequest is the body of an inbound message sent to the relay over
// HTTP. Commands are sent as text starting with a slash ("/connect").
type MessageRequest struct {
	Text string `json:"text"`
}

// MessageResponse carries every reply produced while handling one inbound
// message, in the order they were emitted.
type MessageResponse struct {
	Replies []Reply `json:"replies"`
}

// ProvidersResponse lists the provider names a user can pick from.
type ProvidersResponse struct {
	Providers []string `json:"providers"`
}
