package component

import tea "github.com/charmbracelet/bubbletea"

// Ensure Model satisfies tea.Model.
var _ tea.Model = (*Model[Never])(nil)

// Model adapts a single component to tea.Model so it can be handed to
// tea.NewProgram. Only values of M reach the component's Update.
type Model[M any] struct {
	component Component[M]
	init      tea.Cmd
	title     string
}

// NewModel wraps c. init is the task returned alongside the initial state;
// title, when set, becomes the terminal window title.
func NewModel[M any](c Component[M], init tea.Cmd, title string) *Model[M] {
	return &Model[M]{component: c, init: init, title: title}
}

// Component returns the wrapped component.
func (m *Model[M]) Component() Component[M] {
	return m.component
}

// Title returns the window title.
func (m *Model[M]) Title() string {
	return m.title
}

// Init implements tea.Model.
func (m *Model[M]) Init() tea.Cmd {
	if m.title == "" {
		return m.init
	}
	return tea.Batch(tea.SetWindowTitle(m.title), m.init)
}

// Update implements tea.Model.
func (m *Model[M]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if own, ok := msg.(M); ok {
		return m, m.component.Update(own)
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if h, ok := m.component.(EventHandler[M]); ok {
		if own, ok := h.HandleEvent(msg); ok {
			return m, m.component.Update(own)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model[M]) View() string {
	return m.component.View()
}
