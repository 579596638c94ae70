package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-llm-relay/internal/app"
	"github.com/MKhiriev/go-llm-relay/internal/logger"
	"github.com/MKhiriev/go-llm-relay/internal/provider"
	"github.com/MKhiriev/go-llm-relay/internal/store"
	"github.com/MKhiriev/go-llm-relay/models"
)

// userEntry serializes every transition of one user.
//
// generation is bumped by cancel and disconnect; a backend check started
// under an older generation must not commit. pending is set while such a
// check is in flight.
type userEntry struct {
	mu         sync.Mutex
	session    models.Session
	client     provider.Client
	generation uint64
	pending    bool
}

// SessionManager owns the in-memory session of every user and drives the
// registration flow. Different users proceed concurrently; one user's
// transitions are applied one at a time. Backend construction runs without
// the user's lock held.
type SessionManager struct {
	registry ClientRegistry
	store    store.SessionStore
	flow     RegistrationFlow

	mu      sync.RWMutex
	entries map[string]*userEntry

	logger *logger.Logger
}

// NewSessionManager constructs a SessionManager. Every session starts Idle;
// persisted sessions are brought back by the Rehydrator.
func NewSessionManager(registry ClientRegistry, sessionStore store.SessionStore, log *logger.Logger) *SessionManager {
	return &SessionManager{
		registry: registry,
		store:    sessionStore,
		flow:     NewRegistrationFlow(registry.Has),
		entries:  make(map[string]*userEntry),
		logger:   log,
	}
}

// entry returns the entry of userID, creating an Idle one on first use.
func (m *SessionManager) entry(userID string) *userEntry {
	m.mu.RLock()
	e, ok := m.entries[userID]
	m.mu.RUnlock()
	if ok {
		return e
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok = m.entries[userID]; !ok {
		e = &userEntry{session: idle(userID)}
		m.entries[userID] = e
	}
	return e
}

// lookup returns the entry of userID without creating one.
func (m *SessionManager) lookup(userID string) (*userEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[userID]
	return e, ok
}

// StartRegistration moves the user to AwaitingProvider and returns the
// provider list to show.
func (m *SessionManager) StartRegistration(ctx context.Context, userID string) (models.Prompt, error) {
	e := m.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pending {
		return models.Prompt{}, ErrRegistrationInProgress
	}

	next, err := m.flow.Start(e.session)
	if err != nil {
		return models.Prompt{}, err
	}
	e.session = next

	logger.FromContext(ctx).Debug().Str("user_id", userID).Msg("registration started")

	return models.Prompt{Text: app.MsgSelectProvider, Options: m.registry.Names()}, nil
}

// HandleRegistrationInput feeds text into the registration flow. When text
// completes it, a client is built and the session is persisted; only then
// does the user become Connected.
//
// Errors:
//   - ErrInvalidInput: unknown provider name, the user is Idle again;
//   - *provider.ConstructionError (or ErrUnknownProvider): the credential was
//     not accepted, the user is Idle again and nothing is persisted;
//   - ErrCancelled: the user cancelled or disconnected while the credential
//     was being checked;
//   - ErrPersisting: the session could not be stored, the user is Idle;
//   - ErrRejected variants for input that does not belong to the flow.
func (m *SessionManager) HandleRegistrationInput(ctx context.Context, userID, text string) (models.Step, error) {
	log := logger.FromContext(ctx).ForUser(userID)

	e := m.entry(userID)
	e.mu.Lock()

	if e.pending {
		e.mu.Unlock()
		return models.Step{}, ErrRegistrationInProgress
	}

	next, completed, err := m.flow.Input(e.session, text)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			e.session = next
		}
		e.mu.Unlock()
		return models.Step{}, err
	}

	if !completed {
		e.session = next
		e.mu.Unlock()
		return models.Step{Prompt: models.Prompt{
			Text: fmt.Sprintf(app.MsgProvideCredentialFormat, next.PendingProvider),
		}}, nil
	}

	e.pending = true
	generation := e.generation
	e.mu.Unlock()

	client, shared, err := m.registry.ConstructFor(ctx, userID, next.ProviderName, next.Credential)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.generation != generation {
		if err == nil && !shared {
			m.registry.Discard(userID, client)
		}
		log.Debug().Msg("discarding backend client of a cancelled registration")
		return models.Step{}, ErrCancelled
	}
	e.pending = false

	if err != nil {
		e.session = idle(userID)
		log.Info().Err(err).Str("provider", next.ProviderName).Msg("backend rejected credential")
		return models.Step{}, err
	}

	if err = m.store.Save(ctx, next.Record()); err != nil {
		if !shared {
			m.registry.Discard(userID, client)
		}
		e.session = idle(userID)
		log.Err(err).Msg("error saving session")
		return models.Step{}, fmt.Errorf("%w: %w", ErrPersisting, err)
	}

	m.registry.Bind(userID, client)
	e.client = client
	e.session = next

	log.Info().Str("provider", next.ProviderName).Msg("user connected")

	return models.Step{Prompt: models.Prompt{Text: app.MsgConnected}, Completed: true}, nil
}

// CancelRegistration aborts a registration in progress, including one whose
// backend check is still running.
func (m *SessionManager) CancelRegistration(ctx context.Context, userID string) error {
	e, ok := m.lookup(userID)
	if !ok {
		return ErrNothingToCancel
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next, err := m.flow.Cancel(e.session)
	if err != nil {
		return err
	}

	e.session = next
	e.pending = false
	e.generation++

	logger.FromContext(ctx).Debug().Str("user_id", userID).Msg("registration cancelled")

	return nil
}

// Disconnect returns the user to Idle from any state, releases the live
// client and deletes the persisted record. Calling it again is a no-op. The
// in-memory session is Idle even when the record could not be deleted.
func (m *SessionManager) Disconnect(ctx context.Context, userID string) error {
	e := m.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.session = m.flow.Disconnect(e.session)
	e.client = nil
	e.pending = false
	e.generation++

	m.registry.Evict(userID)

	if err := m.store.Delete(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrPersisting, err)
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Msg("user disconnected")

	return nil
}

// GetClient returns the live client of a Connected user. It never creates
// a session.
func (m *SessionManager) GetClient(userID string) (provider.Client, error) {
	e, ok := m.lookup(userID)
	if !ok {
		return nil, ErrNotConnected
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session.State != models.StateConnected || e.client == nil {
		return nil, ErrNotConnected
	}
	return e.client, nil
}

// State returns the registration state of userID; unknown users are Idle.
func (m *SessionManager) State(userID string) models.RegistrationState {
	e, ok := m.lookup(userID)
	if !ok {
		return models.StateIdle
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.session.State
}

// session returns a copy of the session of userID.
func (m *SessionManager) session(userID string) models.Session {
	e, ok := m.lookup(userID)
	if !ok {
		return idle(userID)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.session
}

// generation returns the current generation of userID. The rehydrator takes
// it before building a client and hands it back to install.
func (m *SessionManager) generation(userID string) uint64 {
	e := m.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.generation
}

// install attaches a rehydrated client, bypassing the flow. It only applies
// to a user that is still Idle with nothing in flight and that has not
// cancelled or disconnected since generation was taken.
func (m *SessionManager) install(record models.PersistedRecord, client provider.Client, generation uint64) bool {
	e := m.entry(record.UserID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.generation != generation || e.session.State != models.StateIdle || e.pending {
		return false
	}

	m.registry.Bind(record.UserID, client)
	e.client = client
	e.session = models.Session{
		UserID:       record.UserID,
		State:        models.StateConnected,
		ProviderName: record.ProviderName,
		Credential:   record.Credential,
	}

	return true
}
