package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-llm-relay/internal/logger"
	"golang.org/x/sync/singleflight"
)

var errNilClient = errors.New("constructor returned no client")

// Registry owns the provider table and the per-user cache of live clients.
// It is safe for concurrent use.
type Registry struct {
	providers map[string]Provider
	names     []string

	mu      sync.Mutex
	clients map[string]Client

	group singleflight.Group

	logger *logger.Logger
}

// NewRegistry builds a Registry over providers. The order of providers is
// kept for Names. A later provider with a duplicate name replaces an
// earlier one.
func NewRegistry(providers []Provider, log *logger.Logger) *Registry {
	r := &Registry{
		providers: make(map[string]Provider, len(providers)),
		clients:   make(map[string]Client),
		logger:    log,
	}

	for _, p := range providers {
		if _, ok := r.providers[p.Name]; !ok {
			r.names = append(r.names, p.Name)
		}
		r.providers[p.Name] = p
	}

	return r
}

// Names returns provider names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Has reports whether name is an exact, case-sensitive provider name.
func (r *Registry) Has(name string) bool {
	_, ok := r.providers[name]
	return ok
}

// Construct builds a client for providerName. It performs no retry.
func (r *Registry) Construct(ctx context.Context, providerName, credential string) (Client, error) {
	p, ok := r.providers[providerName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, providerName)
	}

	client, err := p.Construct(ctx, credential)
	if err != nil {
		var constructionErr *ConstructionError
		if errors.As(err, &constructionErr) {
			return nil, err
		}
		return nil, &ConstructionError{Provider: providerName, Err: err}
	}
	if client == nil {
		return nil, &ConstructionError{Provider: providerName, Err: errNilClient}
	}

	return client, nil
}

// ConstructFor is Construct collapsed per (user, provider, credential):
// concurrent callers with the same key share one construction. shared
// reports whether the returned client was handed to more than one caller.
func (r *Registry) ConstructFor(ctx context.Context, userID, providerName, credential string) (client Client, shared bool, err error) {
	key := userID + "\x00" + providerName + "\x00" + credential

	v, err, shared := r.group.Do(key, func() (any, error) {
		return r.Construct(ctx, providerName, credential)
	})
	if err != nil {
		return nil, shared, err
	}

	return v.(Client), shared, nil
}

// Send forwards text to client. Failures are wrapped as *TransportError.
func (r *Registry) Send(ctx context.Context, client Client, text string) (string, error) {
	if client == nil {
		return "", &TransportError{Err: errNilClient}
	}

	answer, err := client.Complete(ctx, text)
	if err != nil {
		return "", &TransportError{Provider: client.Provider(), Err: err}
	}

	return answer, nil
}

// Bind caches client as the live handle of userID. A previously bound,
// different client is closed.
func (r *Registry) Bind(userID string, client Client) {
	r.mu.Lock()
	old, ok := r.clients[userID]
	r.clients[userID] = client
	r.mu.Unlock()

	if ok && old != client {
		r.close(userID, old)
	}
}

// Evict drops and closes the cached client of userID. It never fails.
func (r *Registry) Evict(userID string) {
	r.mu.Lock()
	client, ok := r.clients[userID]
	delete(r.clients, userID)
	r.mu.Unlock()

	if ok {
		r.close(userID, client)
	}
}

// Discard closes client unless it is the handle currently bound to userID.
// Used for clients whose construction finished after the user moved on.
func (r *Registry) Discard(userID string, client Client) {
	if client == nil {
		return
	}

	r.mu.Lock()
	bound, ok := r.clients[userID]
	r.mu.Unlock()

	if ok && bound == client {
		return
	}
	r.close(userID, client)
}

// bound returns the cached client of userID, if any.
func (r *Registry) bound(userID string) (Client, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.clients[userID]
	return client, ok
}

func (r *Registry) close(userID string, client Client) {
	closer, ok := client.(io.Closer)
	if !ok {
		return
	}

	if err := closer.Close(); err != nil {
		r.logger.Warn().Err(err).
			Str("user_id", userID).
			Str("provider", client.Provider()).
			Msg("error closing backend client")
	}
}
