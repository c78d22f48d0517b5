package store

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"noted/internal/schema"
)

// Notebook is the application's view of the store: channel groups and the
// notes filed under their channels.
type Notebook struct {
	groups *Collection[schema.ChannelGroup]
	notes  *Collection[schema.Note]
	now    func() time.Time
}

// NewNotebook returns a Notebook over db.
func NewNotebook(db *DB) *Notebook {
	return &Notebook{
		groups: NewCollection[schema.ChannelGroup](db, schema.ChannelsCollection),
		notes:  NewCollection[schema.Note](db, schema.NotesCollection),
		now:    time.Now,
	}
}

// ChannelGroups returns all channel groups in creation order.
func (n *Notebook) ChannelGroups(ctx context.Context) ([]schema.ChannelGroup, error) {
	return n.groups.List(ctx)
}

// SaveChannelGroup inserts or replaces g.
func (n *Notebook) SaveChannelGroup(ctx context.Context, g schema.ChannelGroup) error {
	return n.groups.Put(ctx, g)
}

// EnsureDefaults seeds schema.DefaultChannels when no group exists yet.
// Reports whether anything was written.
func (n *Notebook) EnsureDefaults(ctx context.Context) (bool, error) {
	count, err := n.groups.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	for _, g := range schema.DefaultChannels() {
		if err := n.groups.Insert(ctx, g); err != nil {
			return false, fmt.Errorf("seed channel group %q: %w", g.Title(), err)
		}
	}
	slog.Debug("seeded default channel groups")
	return true, nil
}

// Notes returns the notes of a channel, oldest first.
func (n *Notebook) Notes(ctx context.Context, channelID uuid.UUID) ([]schema.Note, error) {
	notes, err := n.notes.Find(ctx, "channel_id", channelID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt.Before(notes[j].CreatedAt)
	})
	return notes, nil
}

// CreateNote files a new, empty note under channelID.
func (n *Notebook) CreateNote(ctx context.Context, channelID uuid.UUID) (schema.Note, error) {
	note := schema.NewNote(channelID, n.now())
	if err := n.notes.Insert(ctx, note); err != nil {
		return schema.Note{}, err
	}
	return note, nil
}

// DeleteNote removes a note by ID.
func (n *Notebook) DeleteNote(ctx context.Context, id uuid.UUID) error {
	return n.notes.Delete(ctx, id)
}
