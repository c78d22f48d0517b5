package ui

import (
	"context"
	"errors"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"noted/internal/schema"
)

// keyMsg creates a tea.KeyMsg for testing.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// drain runs cmd and every task nested in batches, returning the leaf
// messages in order.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

var (
	errBoom  = errors.New("boom")
	testTime = time.Date(2024, time.May, 4, 12, 0, 0, 0, time.UTC)
)

// fakeNotebook is an in-memory Notebook.
type fakeNotebook struct {
	mu     sync.Mutex
	groups []schema.ChannelGroup
	notes  map[uuid.UUID][]schema.Note
	err    error
}

func newFakeNotebook() *fakeNotebook {
	return &fakeNotebook{
		groups: schema.DefaultChannels(),
		notes:  map[uuid.UUID][]schema.Note{},
	}
}

func (f *fakeNotebook) channel(name string) schema.Channel {
	for _, g := range f.groups {
		for _, c := range g.Channels {
			if c.Name == name {
				return c
			}
		}
	}
	panic("no channel " + name)
}

func (f *fakeNotebook) ChannelGroups(context.Context) ([]schema.ChannelGroup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.groups, nil
}

func (f *fakeNotebook) Notes(_ context.Context, channelID uuid.UUID) ([]schema.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]schema.Note(nil), f.notes[channelID]...), nil
}

func (f *fakeNotebook) CreateNote(_ context.Context, channelID uuid.UUID) (schema.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return schema.Note{}, f.err
	}
	n := schema.NewNote(channelID, testTime)
	f.notes[channelID] = append(f.notes[channelID], n)
	return n, nil
}
