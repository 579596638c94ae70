package service

import (
	"context"

	"github.com/MKhiriev/go-llm-relay/internal/provider"
)

// ClientRegistry builds, caches, and releases live backend clients.
// *provider.Registry implements it.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/client_registry_mock.go -package=mock
type ClientRegistry interface {
	Names() []string
	Has(name string) bool
	ConstructFor(ctx context.Context, userID, providerName, credential string) (client provider.Client, shared bool, err error)
	Bind(userID string, client provider.Client)
	Evict(userID string)
	Discard(userID string, client provider.Client)
}
