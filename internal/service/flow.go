package service

import (
	"github.com/MKhiriev/go-llm-relay/models"
)

// RegistrationFlow is the pure transition function of the registration
// state machine. It never performs I/O; callers commit the returned session.
//
//	Idle|AwaitingProvider|AwaitingCredential --start--> AwaitingProvider
//	Connected --start--> rejected
//	AwaitingProvider --known provider--> AwaitingCredential
//	AwaitingProvider --anything else--> Idle (ErrInvalidInput)
//	AwaitingCredential --any text--> completed
//	AwaitingProvider|AwaitingCredential --cancel--> Idle
//	any --disconnect--> Idle
type RegistrationFlow struct {
	isProvider func(name string) bool
}

// NewRegistrationFlow returns a flow that accepts the provider names for
// which isProvider reports true.
func NewRegistrationFlow(isProvider func(name string) bool) RegistrationFlow {
	return RegistrationFlow{isProvider: isProvider}
}

// Start opens (or restarts) the flow.
func (f RegistrationFlow) Start(s models.Session) (models.Session, error) {
	if s.State == models.StateConnected {
		return s, ErrAlreadyConnected
	}

	return models.Session{UserID: s.UserID, State: models.StateAwaitingProvider}, nil
}

// Input feeds one text into the flow. completed is true when text was the
// credential; the returned session is then the Connected session to commit
// once a client has been built for it.
func (f RegistrationFlow) Input(s models.Session, text string) (next models.Session, completed bool, err error) {
	switch s.State {
	case models.StateAwaitingProvider:
		if !f.isProvider(text) {
			return idle(s.UserID), false, ErrInvalidInput
		}
		return models.Session{
			UserID:          s.UserID,
			State:           models.StateAwaitingCredential,
			PendingProvider: text,
		}, false, nil

	case models.StateAwaitingCredential:
		return models.Session{
			UserID:       s.UserID,
			State:        models.StateConnected,
			ProviderName: s.PendingProvider,
			Credential:   text,
		}, true, nil

	default:
		return s, false, ErrNotRegistering
	}
}

// Cancel aborts the flow.
func (f RegistrationFlow) Cancel(s models.Session) (models.Session, error) {
	if !s.State.Registering() {
		return s, ErrNothingToCancel
	}
	return idle(s.UserID), nil
}

// Disconnect wipes the session from any state.
func (f RegistrationFlow) Disconnect(s models.Session) models.Session {
	return idle(s.UserID)
}

func idle(userID string) models.Session {
	return models.Session{UserID: userID, State: models.StateIdle}
}
