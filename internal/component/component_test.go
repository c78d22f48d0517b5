package component

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterMsg interface{ isCounterMsg() }

type incMsg struct{ By int }
type resetMsg struct{}

func (incMsg) isCounterMsg()   {}
func (resetMsg) isCounterMsg() {}

type counter struct {
	n       int
	updates int
}

func (c *counter) Update(msg counterMsg) tea.Cmd {
	c.updates++
	switch msg := msg.(type) {
	case incMsg:
		c.n += msg.By
		if c.n > 10 {
			return Emit(resetMsg{})
		}
	case resetMsg:
		c.n = 0
	}
	return nil
}

func (c *counter) View() string {
	return "count " + string(rune('0'+c.n))
}

func (c *counter) HandleEvent(msg tea.Msg) (counterMsg, bool) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "+" {
		return incMsg{By: 1}, true
	}
	return nil, false
}

// bare has no Preview method.
type bare struct{}

func (bare) Update(counterMsg) tea.Cmd { return nil }
func (bare) View() string              { return "bare" }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_RoutesOwnMessages(t *testing.T) {
	c := &counter{}
	m := NewModel[counterMsg](c, nil, "")

	_, cmd := m.Update(incMsg{By: 2})
	assert.Nil(t, cmd)
	assert.Equal(t, 2, c.n)
	assert.Equal(t, "count 2", m.View())
}

func TestModel_FollowUpTaskReentersLoop(t *testing.T) {
	c := &counter{n: 9}
	m := NewModel[counterMsg](c, nil, "")

	_, cmd := m.Update(incMsg{By: 5})
	require.NotNil(t, cmd)
	follow := cmd()
	assert.Equal(t, resetMsg{}, follow)

	m.Update(follow)
	assert.Equal(t, 0, c.n)
}

func TestModel_ForeignMessagesNeverReachUpdate(t *testing.T) {
	c := &counter{}
	m := NewModel[counterMsg](c, nil, "")

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(runes("x"))
	m.Update(struct{}{})
	assert.Zero(t, c.updates)
}

func TestModel_EventHandlerTranslatesKeys(t *testing.T) {
	c := &counter{}
	m := NewModel[counterMsg](c, nil, "")

	m.Update(runes("+"))
	m.Update(runes("+"))
	assert.Equal(t, 2, c.n)
}

func TestModel_CtrlCQuits(t *testing.T) {
	m := NewModel[counterMsg](&counter{}, nil, "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_InitWithoutTitle(t *testing.T) {
	m := NewModel[counterMsg](&counter{}, Emit(incMsg{By: 1}), "")
	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.Equal(t, incMsg{By: 1}, cmd())
}

func TestModel_InitBatchesTitleAndTask(t *testing.T) {
	m := NewModel[counterMsg](&counter{}, Emit(incMsg{By: 1}), "Previewing counter")
	assert.Equal(t, "Previewing counter", m.Title())

	cmd := m.Init()
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok, "expected a batch of title + initial task")
	assert.Len(t, batch, 2)
}

func TestStatic_UpdateIsUnreachableThroughModel(t *testing.T) {
	s := NewStatic("hello", lipgloss.NewStyle())
	m := NewModel[Never](s, nil, "")

	assert.NotPanics(t, func() {
		for _, msg := range []tea.Msg{
			runes("q"),
			tea.WindowSizeMsg{Width: 10, Height: 10},
			incMsg{By: 1},
			nil,
		} {
			m.Update(msg)
			_ = m.View()
		}
	})
	assert.Equal(t, "hello", m.View())
	assert.Panics(t, func() { s.Update(nil) })
}

func TestBoot_NotSupported(t *testing.T) {
	_, err := Boot[counterMsg](bare{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPreviewNotSupported)
	assert.Contains(t, err.Error(), "component.bare")
}

func TestBoot_Previewer(t *testing.T) {
	s := &Static{}
	cmd, err := Boot[Never](s)
	require.NoError(t, err)
	assert.Nil(t, cmd)
	assert.Equal(t, "Static component", s.Text)
}
