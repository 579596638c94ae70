package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-llm-relay/internal/adapter"
	"github.com/MKhiriev/go-llm-relay/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// lines taken by everything around the transcript
const chromeHeight = 10

const helpLine = "enter: send • tab: pick option • ctrl+y: copy last reply • pgup/pgdown: scroll • ctrl+c: quit"

type speaker int

const (
	speakerUser speaker = iota
	speakerRelay
)

type chatLine struct {
	from speaker
	text string
}

type chatModel struct {
	ctx     context.Context
	adapter adapter.RelayAdapter

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	lines     []chatLine
	options   []string
	optionIdx int
	lastReply string
	waiting   bool
	buildInfo models.AppBuildInfo
	status    string

	showError    bool
	errorOverlay errorOverlayModel

	width  int
	height int
	ready  bool
}

func newChatModel(ctx context.Context, relayAdapter adapter.RelayAdapter) chatModel {
	input := textinput.New()
	input.Placeholder = "Type /connect to attach a provider"
	input.CharLimit = 4096
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	return chatModel{
		ctx:      ctx,
		adapter:  relayAdapter,
		input:    input,
		viewport: viewport.New(0, 0),
		spinner:  s,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.cmdLoadVersion())
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 3)
		m.input.Width = max(msg.Width-6, 10)
		m.ready = true
		m.refreshTranscript()
		return m, nil
	case repliesMsg:
		m.waiting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.applyReplies(msg.replies)
		return m, nil
	case versionMsg:
		if msg.err == nil {
			m.buildInfo = msg.info
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(fmt.Sprintf("Copy failed: %v", msg.err))
			return m, nil
		}
		m.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.send) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.send):
		return m.send()
	case key.Matches(msg, keys.option):
		if len(m.options) == 0 {
			return m, nil
		}
		m.input.SetValue(m.options[m.optionIdx])
		m.input.CursorEnd()
		m.optionIdx = (m.optionIdx + 1) % len(m.options)
		return m, nil
	case key.Matches(msg, keys.copy):
		if m.lastReply == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.lastReply)
	case key.Matches(msg, keys.pageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
		return m, nil
	case key.Matches(msg, keys.pageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) send() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	if m.waiting || strings.TrimSpace(text) == "" {
		return m, nil
	}

	m.lines = append(m.lines, chatLine{from: speakerUser, text: text})
	m.input.Reset()
	m.waiting = true
	m.refreshTranscript()
	return m, tea.Batch(m.cmdSend(text), m.spinner.Tick)
}

// applyReplies renders reply texts and follows keyboard changes. Chat actions
// are covered by the spinner and are not shown.
func (m *chatModel) applyReplies(replies []models.Reply) {
	for _, reply := range replies {
		if reply.Action != "" {
			continue
		}
		if reply.RemoveKeyboard {
			m.options = nil
			m.optionIdx = 0
		}
		if len(reply.Keyboard) > 0 {
			m.options = append([]string(nil), reply.Keyboard...)
			m.optionIdx = 0
		}
		if reply.Text != "" {
			m.lines = append(m.lines, chatLine{from: speakerRelay, text: reply.Text})
			m.lastReply = reply.Text
		}
	}
	m.refreshTranscript()
}

func (m *chatModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *chatModel) refreshTranscript() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m chatModel) renderTranscript() string {
	var b strings.Builder
	for i, line := range m.lines {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch line.from {
		case speakerUser:
			b.WriteString(userStyle.Render("you"))
		case speakerRelay:
			b.WriteString(relayStyle.Render("relay"))
		}
		b.WriteString("\n")
		b.WriteString(line.text)
	}
	return b.String()
}

func (m chatModel) View() string {
	if m.showError {
		return appStyle.Render(m.errorOverlay.View())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("go-llm-relay"))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(renderBuildInfo(m.buildInfo)))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.renderTranscript())
	}
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	if options := renderOptions(m.options, m.optionIdx); options != "" {
		b.WriteString(options)
		b.WriteString("\n")
	}
	if m.waiting {
		b.WriteString(m.spinner.View())
		b.WriteString(" waiting for the relay...\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(helpLine))
	return appStyle.Render(b.String())
}

func (m chatModel) cmdSend(text string) tea.Cmd {
	ctx := m.ctx
	relayAdapter := m.adapter
	return func() tea.Msg {
		replies, err := relayAdapter.SendMessage(ctx, text)
		return repliesMsg{replies: replies, err: err}
	}
}

func (m chatModel) cmdLoadVersion() tea.Cmd {
	ctx := m.ctx
	relayAdapter := m.adapter
	return func() tea.Msg {
		info, err := relayAdapter.Version(ctx)
		return versionMsg{info: info, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
