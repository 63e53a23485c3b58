package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the TUI
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Search     key.Binding
	Kill       key.Binding
	SortPID    key.Binding
	SortName   key.Binding
	SortMemory key.Binding
	Refresh    key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding

	// Search mode
	SearchConfirm key.Binding
	SearchCancel  key.Binding
	SearchDelete  key.Binding

	// Kill confirmation; every other key cancels
	Confirm key.Binding
}

// keys is the default set of key bindings
var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "bottom"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Kill: key.NewBinding(
		key.WithKeys("x", "delete"),
		key.WithHelp("x", "kill"),
	),
	SortPID: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "sort pid"),
	),
	SortName: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "sort name"),
	),
	SortMemory: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "sort memory"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
	SearchConfirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	SearchCancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	SearchDelete: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("backspace", "delete"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "confirm"),
	),
}

// ShortHelp implements help.KeyMap for normal mode
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Search, k.Kill, k.SortPID, k.SortName, k.SortMemory, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap for normal mode
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.SortPID, k.SortName, k.SortMemory},
		{k.Search, k.Kill, k.Refresh},
		{k.Help, k.Quit},
	}
}

// searchKeys is the help shown while typing a search query
type searchKeys struct{ keyMap }

func (k searchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.SearchConfirm, k.SearchCancel, k.SearchDelete}
}

func (k searchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
