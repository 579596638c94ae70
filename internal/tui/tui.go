// Package tui is the terminal chat client of the relay.
//
// It is a single bubbletea program: a scrollable transcript, an input line
// and, while the relay offers a keyboard (the provider list after
// /connect), the options to pick from with tab.
package tui

import (
	"context"

	"github.com/MKhiriev/go-llm-relay/internal/adapter"
	"github.com/MKhiriev/go-llm-relay/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	adapter adapter.RelayAdapter

	logger *logger.Logger
}

func New(relayAdapter adapter.RelayAdapter, logger *logger.Logger) *TUI {
	return &TUI{adapter: relayAdapter, logger: logger}
}

// Run blocks until the user quits the chat.
func (t *TUI) Run(ctx context.Context) error {
	t.logger.Info().Msg("starting chat")
	if _, err := tea.NewProgram(newChatModel(ctx, t.adapter), tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Err(err).Msg("chat program failed")
		return err
	}
	t.logger.Info().Msg("chat closed")
	return nil
}
