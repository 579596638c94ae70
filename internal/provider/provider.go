package provider

import (
	"context"
)

// Client is a live, authenticated handle to one backend. Implementations
// that hold connections also implement io.Closer.
//
//go:generate mockgen -source=provider.go -destination=../mock/provider_client.go -package=mock
type Client interface {
	// Provider returns the display name of the backend the client talks to.
	Provider() string
	// Complete sends a single user turn and returns the backend's answer.
	Complete(ctx context.Context, text string) (string, error)
}

// ConstructFunc builds a Client from a raw credential. It may perform
// network I/O to validate the credential.
type ConstructFunc func(ctx context.Context, credential string) (Client, error)

// Provider is one entry of the closed backend set.
type Provider struct {
	Name      string
	Construct ConstructFunc
}
