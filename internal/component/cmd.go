package component

import tea "github.com/charmbracelet/bubbletea"

// MapCmd retags the messages produced by a child's task. Messages of type M
// are passed to wrap; batches are mapped element-wise; anything else (quit,
// window title and other runtime messages) passes through untouched.
func MapCmd[M any](cmd tea.Cmd, wrap func(M) tea.Msg) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		return mapMsg(cmd(), wrap)
	}
}

func mapMsg[M any](msg tea.Msg, wrap func(M) tea.Msg) tea.Msg {
	if own, ok := msg.(M); ok {
		return wrap(own)
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		mapped := make(tea.BatchMsg, len(batch))
		for i, c := range batch {
			mapped[i] = MapCmd(c, wrap)
		}
		return mapped
	}
	return msg
}

// Emit returns a task that yields msg immediately.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
