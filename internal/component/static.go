package component

import (
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"
)

// Never is the empty message set. No type implements it, so a component
// over Never can never be sent a message.
type Never interface {
	never()
}

// Static renders fixed text and has no messages.
type Static struct {
	Text  string
	Style lipgloss.Style
}

// Ensure Static implements Component.
var _ Component[Never] = (*Static)(nil)

// NewStatic returns a Static rendering text with style.
func NewStatic(text string, style lipgloss.Style) *Static {
	return &Static{Text: text, Style: style}
}

// Update is unreachable: Never has no values.
func (s *Static) Update(Never) tea.Cmd {
	panic("component: Static.Update called with a value of the empty message set")
}

// View implements Component.
func (s *Static) View() string {
	return s.Style.Render(s.Text)
}

// Preview implements Previewer.
func (s *Static) Preview() tea.Cmd {
	if s.Text == "" {
		s.Text = "Static component"
	}
	return nil
}
