package ui

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noted/internal/schema"
)

func TestContentView_Placeholder(t *testing.T) {
	v := NewContentView(newFakeNotebook())
	view := v.View()
	assert.Contains(t, view, "Content Area")
	assert.Contains(t, view, "This is where the content will be displayed.")
	_, ok := v.Channel()
	assert.False(t, ok)
}

func TestContentView_ShowChannelLoadsNotes(t *testing.T) {
	nb := newFakeNotebook()
	journal := nb.channel("journal")
	_, err := nb.CreateNote(t.Context(), journal.ID)
	require.NoError(t, err)

	v := NewContentView(nb)
	msgs := drain(v.Update(ShowChannelMsg{Channel: journal}))
	assert.Contains(t, v.View(), "Loading")

	require.Len(t, msgs, 1)
	loaded, ok := msgs[0].(NotesLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, journal.ID, loaded.ChannelID)

	v.Update(loaded)
	require.Len(t, v.Notes(), 1)
	view := v.View()
	assert.Contains(t, view, "# journal")
	assert.Contains(t, view, v.Notes()[0].ContentID.String()[:8])
}

func TestContentView_EmptyChannelHint(t *testing.T) {
	nb := newFakeNotebook()
	v := NewContentView(nb)
	msgs := drain(v.Update(ShowChannelMsg{Channel: nb.channel("ideas")}))
	require.Len(t, msgs, 1)
	v.Update(msgs[0].(ContentMsg))
	assert.Contains(t, v.View(), "No notes yet")
}

func TestContentView_DropsStaleNotes(t *testing.T) {
	nb := newFakeNotebook()
	v := NewContentView(nb)
	v.Update(ShowChannelMsg{Channel: nb.channel("ideas")})

	stale := NotesLoadedMsg{
		ChannelID: nb.channel("journal").ID,
		Notes:     []schema.Note{schema.NewNote(uuid.New(), testTime)},
	}
	v.Update(stale)
	assert.Empty(t, v.Notes())
}

func TestContentView_NewNote(t *testing.T) {
	nb := newFakeNotebook()
	v := NewContentView(nb)

	assert.Nil(t, v.Update(NewNoteMsg{}), "no channel shown yet")

	inbox := nb.channel("inbox")
	for _, m := range drain(v.Update(ShowChannelMsg{Channel: inbox})) {
		v.Update(m.(ContentMsg))
	}

	msgs := drain(v.Update(NewNoteMsg{}))
	require.Len(t, msgs, 1)
	created, ok := msgs[0].(NoteCreatedMsg)
	require.True(t, ok)
	assert.Equal(t, inbox.ID, created.Note.ChannelID)

	v.Update(created)
	assert.Len(t, v.Notes(), 1)
	assert.Len(t, nb.notes[inbox.ID], 1)
}

func TestContentView_Failure(t *testing.T) {
	nb := newFakeNotebook()
	v := NewContentView(nb)
	inbox := nb.channel("inbox")
	nb.err = errBoom

	msgs := drain(v.Update(ShowChannelMsg{Channel: inbox}))
	require.Len(t, msgs, 1)
	failed, ok := msgs[0].(ContentLoadFailedMsg)
	require.True(t, ok)

	v.Update(failed)
	assert.ErrorIs(t, v.Err(), errBoom)
	assert.Contains(t, v.View(), "Error: load notes: boom")
}

func TestContentView_HandleEvent(t *testing.T) {
	v := NewContentView(nil)

	got, ok := v.HandleEvent(keyMsg("n"))
	require.True(t, ok)
	assert.Equal(t, NewNoteMsg{}, got)

	got, ok = v.HandleEvent(keyMsg("j"))
	require.True(t, ok)
	assert.Equal(t, ScrollContentMsg{Lines: 1}, got)

	_, ok = v.HandleEvent(keyMsg("enter"))
	assert.False(t, ok)
}

func TestContentView_Preview(t *testing.T) {
	v := &ContentView{}
	assert.Nil(t, v.Preview())
	ch, ok := v.Channel()
	require.True(t, ok)
	assert.Equal(t, "journal", ch.Name)
	assert.Len(t, v.Notes(), 5)

	// Without a source, creating a note does nothing.
	assert.Nil(t, v.Update(NewNoteMsg{}))
}
