package service

import (
	"errors"
	"fmt"
)

// ErrRejected marks an action that is invalid in the user's current state.
// The concrete rejections below wrap it.
var ErrRejected = errors.New("rejected")

var (
	ErrAlreadyConnected       = fmt.Errorf("%w: already connected", ErrRejected)
	ErrRegistrationInProgress = fmt.Errorf("%w: registration in progress", ErrRejected)
	ErrNothingToCancel        = fmt.Errorf("%w: nothing to cancel", ErrRejected)
	ErrNotRegistering         = fmt.Errorf("%w: no registration in progress", ErrRejected)
)

var (
	// ErrCancelled is returned to a registration whose backend check
	// finished after the user cancelled or disconnected.
	ErrCancelled = errors.New("registration cancelled")

	// ErrInvalidInput is returned for a provider name that is not an exact
	// match. The session is back in Idle when it is returned.
	ErrInvalidInput = errors.New("invalid provider name")

	// ErrNotConnected is returned by GetClient for a user without a live
	// client.
	ErrNotConnected = errors.New("not connected")

	// ErrPersisting wraps a session store failure during a state change.
	ErrPersisting = errors.New("error persisting session")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
