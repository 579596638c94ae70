package provider

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownProvider = errors.New("unknown provider")
	ErrEmptyCompletion = errors.New("backend returned no text")
)

// ConstructionError reports that a backend rejected a credential or could
// not be reached while building a client.
type ConstructionError struct {
	Provider string
	Err      error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("error constructing %s client: %v", e.Provider, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// TransportError reports a failed round-trip to a backend.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error sending message to %s: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
