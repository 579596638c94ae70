// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegistrationState is the position of a user inside the registration flow.
type RegistrationState int

const (
	// StateIdle is the initial state: no backend is attached and no
	// registration is in progress.
	StateIdle RegistrationState = iota

	// StateAwaitingProvider means the user was shown the provider list and
	// the next text is interpreted as a provider name.
	StateAwaitingProvider

	// StateAwaitingCredential means a provider was picked and the next text
	// is taken verbatim as the credential.
	StateAwaitingCredential

	// StateConnected means a live client is attached to the session.
	// Only a disconnect leaves this state.
	StateConnected
)

// String returns a stable lowercase name of the state for logs and JSON.
func (s RegistrationState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingProvider:
		return "awaiting_provider"
	case StateAwaitingCredential:
		return "awaiting_credential"
	case StateConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// Registering reports whether text sent in this state belongs to the
// registration flow rather than to the chat path.
func (s RegistrationState) Registering() bool {
	return s == StateAwaitingProvider || s == StateAwaitingCredential
}

// Session is the in-memory, per-user view of the registration state.
//
// ProviderName and Credential are set together and only while the session is
// [StateConnected]. The provider picked during registration is kept in
// PendingProvider until the credential arrives; it is never persisted.
type Session struct {
	UserID          string
	State           RegistrationState
	ProviderName    string
	Credential      string
	PendingProvider string
}

// Record returns the durable projection of a connected session.
func (s Session) Record() PersistedRecord {
	return PersistedRecord{
		UserID:       s.UserID,
		ProviderName: s.ProviderName,
		Credential:   s.Credential,
	}
}

// PersistedRecord is what survives a restart: the provider a user picked and
// the credential they supplied for it.
type PersistedRecord struct {
	UserID       string `json:"user_id" db:"user_id"`
	ProviderName string `json:"provider_name" db:"provider_name"`
	Credential   string `json:"credential" db:"credential"`
}

// TableName returns the name of the database table
// associated with the PersistedRecord model.
func (r PersistedRecord) TableName() string {
	return "sessions"
}
