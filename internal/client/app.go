package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-llm-relay/internal/adapter"
	"github.com/MKhiriev/go-llm-relay/internal/logger"
)

const discoverTimeout = 5 * time.Second

// Chat is the interactive front end run by [App].
type Chat interface {
	Run(ctx context.Context) error
}

type App struct {
	adapter adapter.RelayAdapter
	chat    Chat

	logger *logger.Logger
}

func NewApp(relayAdapter adapter.RelayAdapter, chat Chat, logger *logger.Logger) *App {
	return &App{adapter: relayAdapter, chat: chat, logger: logger}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.discover(ctx)

	if err := a.chat.Run(ctx); err != nil {
		return fmt.Errorf("chat: %w", err)
	}
	return nil
}

// discover logs which backends the relay offers. An unreachable relay is not
// fatal: the chat reports failures per message.
func (a *App) discover(ctx context.Context) {
	discoverCtx, cancel := context.WithTimeout(ctx, discoverTimeout)
	defer cancel()

	names, err := a.adapter.Providers(discoverCtx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("relay is not reachable yet")
		return
	}
	a.logger.Info().Strs("providers", names).Msg("relay is reachable")
}
