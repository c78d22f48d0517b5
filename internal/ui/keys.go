package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the components react to. Leaves and the root
// share it so the help line matches behavior.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	NewNote key.Binding
	Reload  key.Binding
	Focus   key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open channel")),
	NewNote: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new note")),
	Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.NewNote, k.Focus, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.NewNote, k.Reload},
		{k.Focus, k.Quit},
	}
}
