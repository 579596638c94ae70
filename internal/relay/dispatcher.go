package relay

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-llm-relay/internal/app"
	"github.com/MKhiriev/go-llm-relay/internal/logger"
	"github.com/MKhiriev/go-llm-relay/internal/provider"
	"github.com/MKhiriev/go-llm-relay/internal/service"
	"github.com/MKhiriev/go-llm-relay/internal/validators"
	"github.com/MKhiriev/go-llm-relay/models"
)

// Chat commands.
const (
	CommandStart      = "/start"
	CommandConnect    = "/connect"
	CommandCancel     = "/cancel"
	CommandDisconnect = "/disconnect"
)

// Dispatcher handles one inbound message at a time per call; calls for
// different users may run concurrently.
type Dispatcher struct {
	sessions  Sessions
	sender    Sender
	validator validators.Validator

	logger *logger.Logger
}

func NewDispatcher(sessions Sessions, sender Sender, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		sessions:  sessions,
		sender:    sender,
		validator: validators.NewRelayValidator(),
		logger:    log,
	}
}

// Dispatch handles text sent by userID and writes every reply to replier.
// The returned error is [ErrBlankText] or a delivery failure of replier;
// failures of the relay itself are reported to the user as replies.
func (d *Dispatcher) Dispatch(ctx context.Context, userID, text string, replier Replier) error {
	reply := func(r models.Reply) error {
		return replier.Reply(ctx, userID, r)
	}

	switch command(text) {
	case CommandStart:
		return reply(models.Reply{Text: app.MsgHelp})
	case CommandConnect:
		return d.connect(ctx, userID, reply)
	case CommandCancel:
		return d.cancel(ctx, userID, reply)
	case CommandDisconnect:
		return d.disconnect(ctx, userID, reply)
	}

	state := d.sessions.State(userID)
	if err := d.checkText(ctx, state, text); err != nil {
		return err
	}

	if state.Registering() {
		return d.registrationInput(ctx, userID, text, reply)
	}
	return d.chat(ctx, userID, text, reply)
}

// checkText rejects blank text. A credential is taken verbatim, so in that
// step only the empty string is blank.
func (d *Dispatcher) checkText(ctx context.Context, state models.RegistrationState, text string) error {
	if state == models.StateAwaitingCredential {
		if text == "" {
			return ErrBlankText
		}
		return nil
	}

	if err := d.validator.Validate(ctx, models.MessageRequest{Text: text}, validators.FieldText); err != nil {
		return fmt.Errorf("%w: %w", ErrBlankText, err)
	}
	return nil
}

// command returns the command text starts with, or "" for free text.
// Only the commands above are recognized.
func command(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}

	switch name, _, _ := strings.Cut(fields[0], "@"); name {
	case CommandStart, CommandConnect, CommandCancel, CommandDisconnect:
		return name
	default:
		return ""
	}
}

func (d *Dispatcher) connect(ctx context.Context, userID string, reply func(models.Reply) error) error {
	prompt, err := d.sessions.StartRegistration(ctx, userID)
	if err != nil {
		return reply(d.replyForError(err))
	}

	return reply(models.Reply{Text: prompt.Text, Keyboard: prompt.Options})
}

func (d *Dispatcher) registrationInput(ctx context.Context, userID, text string, reply func(models.Reply) error) error {
	step, err := d.sessions.HandleRegistrationInput(ctx, userID, text)
	if err != nil {
		return reply(d.replyForError(err))
	}

	return reply(models.Reply{Text: step.Prompt.Text, Keyboard: step.Prompt.Options, RemoveKeyboard: len(step.Prompt.Options) == 0})
}

func (d *Dispatcher) cancel(ctx context.Context, userID string, reply func(models.Reply) error) error {
	if err := d.sessions.CancelRegistration(ctx, userID); err != nil {
		return reply(d.replyForError(err))
	}

	return reply(models.Reply{Text: app.MsgCancelled, RemoveKeyboard: true})
}

func (d *Dispatcher) disconnect(ctx context.Context, userID string, reply func(models.Reply) error) error {
	if err := d.sessions.Disconnect(ctx, userID); err != nil {
		return reply(d.replyForError(err))
	}

	return reply(models.Reply{Text: app.MsgDisconnected, RemoveKeyboard: true})
}

func (d *Dispatcher) chat(ctx context.Context, userID, text string, reply func(models.Reply) error) error {
	client, err := d.sessions.GetClient(userID)
	if err != nil {
		return reply(d.replyForError(err))
	}

	if err = reply(models.Reply{Action: models.ActionTyping}); err != nil {
		return err
	}

	answer, err := d.sender.Send(ctx, client, text)
	if err != nil {
		return reply(d.replyForError(err))
	}

	return reply(models.Reply{Text: answer, Markdown: true})
}

// replyForError turns a core error into the message shown to the user.
func (d *Dispatcher) replyForError(err error) models.Reply {
	var (
		constructionErr *provider.ConstructionError
		transportErr    *provider.TransportError
	)

	switch {
	case errors.Is(err, service.ErrAlreadyConnected):
		return models.Reply{Text: app.MsgAlreadyConnected}
	case errors.Is(err, service.ErrRegistrationInProgress):
		return models.Reply{Text: app.MsgRegistrationInProgress}
	case errors.Is(err, service.ErrNothingToCancel):
		return models.Reply{Text: app.MsgNothingToCancel, RemoveKeyboard: true}
	case errors.Is(err, service.ErrNotRegistering), errors.Is(err, service.ErrNotConnected):
		return models.Reply{Text: app.MsgNotConnected}
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, provider.ErrUnknownProvider):
		return models.Reply{Text: app.MsgInvalidProvider, RemoveKeyboard: true}
	case errors.Is(err, service.ErrCancelled):
		return models.Reply{Text: app.MsgRegistrationSuperseded, RemoveKeyboard: true}
	case errors.As(err, &constructionErr):
		return models.Reply{Text: fmt.Sprintf(app.MsgConstructionFailedFormat, constructionErr.Provider, constructionErr.Err), RemoveKeyboard: true}
	case errors.As(err, &transportErr):
		return models.Reply{Text: fmt.Sprintf(app.MsgTransportFailedFormat, transportErr.Provider, transportErr.Err)}
	case errors.Is(err, service.ErrPersisting):
		return models.Reply{Text: app.MsgPersistenceFailed, RemoveKeyboard: true}
	case errors.Is(err, service.ErrRejected):
		return models.Reply{Text: app.MsgUnexpectedError}
	}

	d.logger.Err(err).Msg("unexpected error handling message")
	return models.Reply{Text: app.MsgUnexpectedError}
}
