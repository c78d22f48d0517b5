package preview

import (
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestPicker_EnterChoosesHighlighted(t *testing.T) {
	p := newPicker("pick", []string{"x.A", "x.B", "x.C"})

	p.Update(keyMsg("j"))
	_, cmd := p.Update(keyMsg("enter"))

	assert.Equal(t, "x.B", p.chosen)
	assert.False(t, p.canceled)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestPicker_DownArrow(t *testing.T) {
	p := newPicker("pick", []string{"x.A", "x.B"})
	p.Update(keyMsg("down"))
	p.Update(keyMsg("enter"))
	assert.Equal(t, "x.B", p.chosen)
}

func TestPicker_EscCancels(t *testing.T) {
	for _, k := range []string{"esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			p := newPicker("pick", []string{"x.A"})
			_, cmd := p.Update(keyMsg(k))
			assert.True(t, p.canceled)
			assert.Empty(t, p.chosen)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestPicker_CtrlCCancelsWhileFiltering(t *testing.T) {
	p := newPicker("pick", []string{"x.A", "x.B"})
	p.Update(keyMsg("/"))
	p.Update(keyMsg("x"))
	require.Equal(t, list.Filtering, p.list.FilterState())

	_, cmd := p.Update(keyMsg("ctrl+c"))
	assert.True(t, p.canceled)
	assert.Empty(t, p.chosen)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestPicker_ViewListsOptions(t *testing.T) {
	p := newPicker("Select a target to execute:", []string{"x.A", "x.B"})
	view := p.View()
	assert.Contains(t, view, "Select a target to execute:")
	assert.Contains(t, view, "x.A")
	assert.Contains(t, view, "x.B")
	assert.Contains(t, view, "esc: cancel")
}

func TestPicker_ViewEmptyAfterChoice(t *testing.T) {
	p := newPicker("pick", []string{"x.A"})
	p.Update(keyMsg("enter"))
	assert.Empty(t, p.View())
}
