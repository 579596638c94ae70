// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChatAction is a transient status a transport may show to the user while a
// reply is being prepared.
type ChatAction string

// ActionTyping tells the transport that a backend call is in progress.
const ActionTyping ChatAction = "typing"

// Reply is one outbound message to a user.
//
// A non-nil Keyboard asks the transport to show the options as quick replies;
// RemoveKeyboard asks it to hide a previously shown keyboard. Markdown marks
// text produced by a backend, which is usually formatted.
type Reply struct {
	Text           string     `json:"text,omitempty"`
	Keyboard       []string   `json:"keyboard,omitempty"`
	RemoveKeyboard bool       `json:"remove_keyboard,omitempty"`
	Markdown       bool       `json:"markdown,omitempty"`
	Action         ChatAction `json:"action,omitempty"`
}

// Prompt is what the registration flow asks the user next.
type Prompt struct {
	Text    string
	Options []string
}

// Step is the outcome of feeding one text into the registration flow.
// Completed is true once the session reached [StateConnected].
type Step struct {
	Prompt    Prompt
	Completed bool
}
