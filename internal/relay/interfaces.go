package relay

import (
	"context"

	"github.com/MKhiriev/go-llm-relay/internal/provider"
	"github.com/MKhiriev/go-llm-relay/models"
)

// Replier delivers one reply to a user.
type Replier interface {
	Reply(ctx context.Context, userID string, reply models.Reply) error
}

// Sessions is the part of the session manager the dispatcher drives.
type Sessions interface {
	StartRegistration(ctx context.Context, userID string) (models.Prompt, error)
	HandleRegistrationInput(ctx context.Context, userID, text string) (models.Step, error)
	CancelRegistration(ctx context.Context, userID string) error
	Disconnect(ctx context.Context, userID string) error
	GetClient(userID string) (provider.Client, error)
	State(userID string) models.RegistrationState
}

// Sender performs one chat turn against a live client.
type Sender interface {
	Send(ctx context.Context, client provider.Client, text string) (string, error)
}
