// Package schema defines the records persisted in the document store.
//
// Referential integrity between notes and channels is the application's
// responsibility; the store does not enforce it.
package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	// ChannelsCollection holds ChannelGroup documents.
	ChannelsCollection = "channels"
	// NotesCollection holds Note documents.
	NotesCollection = "notes"
)

// Channel is a named stream of notes.
type Channel struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ChannelGroup is an ordered grouping of channels, optionally named.
type ChannelGroup struct {
	ID       uuid.UUID `json:"id"`
	Name     *string   `json:"name,omitempty"`
	Channels []Channel `json:"channels"`
}

// DocumentID implements store.Document.
func (g ChannelGroup) DocumentID() uuid.UUID { return g.ID }

// Title returns the group name, or "" for an unnamed group.
func (g ChannelGroup) Title() string {
	if g.Name == nil {
		return ""
	}
	return *g.Name
}

// Note references its owning channel and a content body stored elsewhere.
type Note struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ChannelID uuid.UUID `json:"channel_id"`
	ContentID uuid.UUID `json:"content_id"`
}

// DocumentID implements store.Document.
func (n Note) DocumentID() uuid.UUID { return n.ID }

// NewChannel returns a channel with a fresh random ID.
func NewChannel(name string) Channel {
	return Channel{ID: uuid.New(), Name: name}
}

// NewChannelGroup returns a group with a fresh random ID. An empty name
// produces an unnamed group.
func NewChannelGroup(name string, channels ...Channel) ChannelGroup {
	g := ChannelGroup{ID: uuid.New(), Channels: channels}
	if name != "" {
		g.Name = &name
	}
	if g.Channels == nil {
		g.Channels = []Channel{}
	}
	return g
}

// NewNote returns a note in channelID created at now, with fresh note and
// content IDs.
func NewNote(channelID uuid.UUID, now time.Time) Note {
	return Note{
		ID:        uuid.New(),
		CreatedAt: now.UTC(),
		ChannelID: channelID,
		ContentID: uuid.New(),
	}
}

// DefaultChannels is the seed written on first run.
func DefaultChannels() []ChannelGroup {
	return []ChannelGroup{
		NewChannelGroup("", NewChannel("inbox")),
		NewChannelGroup("Personal", NewChannel("journal"), NewChannel("ideas")),
	}
}
