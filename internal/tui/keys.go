package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Execute  key.Binding
	Prettify key.Binding
	NextPane key.Binding
	PrevPane key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Execute: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("^e", "execute"),
	),
	Prettify: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("^p", "prettify"),
	),
	NextPane: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next pane"),
	),
	PrevPane: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous pane"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "ctrl+q"),
		key.WithHelp("^q", "quit"),
	),
}
