package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bowling/internal/core"
)

// KeyMap defines the key bindings of the game screen.
// Roll digits and symbols go to the text input, so no binding may use them.
type KeyMap struct {
	Submit      key.Binding
	NewGame     key.Binding
	ToggleTable key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.ToggleTable, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.NewGame},
		{k.ToggleTable, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "roll"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "new game"),
		),
		ToggleTable: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "frame table"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Keys without a binding map to ActionNone and belong to the text input.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Submit):
		return core.ActionSubmit
	case key.Matches(msg, k.NewGame):
		return core.ActionNewGame
	case key.Matches(msg, k.ToggleTable):
		return core.ActionToggleTable
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}
