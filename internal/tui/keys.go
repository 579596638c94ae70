package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	send     key.Binding
	option   key.Binding
	copy     key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	esc      key.Binding
	quit     key.Binding
}

var keys = keyMap{
	send:     key.NewBinding(key.WithKeys("enter")),
	option:   key.NewBinding(key.WithKeys("tab")),
	copy:     key.NewBinding(key.WithKeys("ctrl+y")),
	pageUp:   key.NewBinding(key.WithKeys("pgup")),
	pageDown: key.NewBinding(key.WithKeys("pgdown")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
}
