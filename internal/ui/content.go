package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"noted/internal/component"
	"noted/internal/schema"
	"noted/internal/ui/textutil"
)

const (
	contentTitle       = "Content Area"
	contentPlaceholder = "This is where the content will be displayed."
	noNotesHint        = "No notes yet. Press n to create one."

	defaultContentWidth  = 60
	defaultContentHeight = 20
)

// ContentMsg is the closed message set of ContentView.
type ContentMsg interface {
	isContentMsg()
}

// ShowChannelMsg switches the pane to Channel and loads its notes.
type ShowChannelMsg struct {
	Channel schema.Channel
}

// NotesLoadedMsg carries the notes of ChannelID. Results for a channel that
// is no longer shown are dropped.
type NotesLoadedMsg struct {
	ChannelID uuid.UUID
	Notes     []schema.Note
}

// ContentLoadFailedMsg reports a failed read or write.
type ContentLoadFailedMsg struct {
	Err error
}

// NewNoteMsg creates a note in the shown channel.
type NewNoteMsg struct{}

// NoteCreatedMsg carries a freshly stored note.
type NoteCreatedMsg struct {
	Note schema.Note
}

// ScrollContentMsg scrolls the pane by Lines, negative is up.
type ScrollContentMsg struct {
	Lines int
}

// ResizeContentMsg sets the pane size.
type ResizeContentMsg struct {
	Width  int
	Height int
}

func (ShowChannelMsg) isContentMsg()       {}
func (NotesLoadedMsg) isContentMsg()       {}
func (ContentLoadFailedMsg) isContentMsg() {}
func (NewNoteMsg) isContentMsg()           {}
func (NoteCreatedMsg) isContentMsg()       {}
func (ScrollContentMsg) isContentMsg()     {}
func (ResizeContentMsg) isContentMsg()     {}

// NoteSource reads and writes the notes of a channel.
type NoteSource interface {
	Notes(ctx context.Context, channelID uuid.UUID) ([]schema.Note, error)
	CreateNote(ctx context.Context, channelID uuid.UUID) (schema.Note, error)
}

// Ensure ContentView implements the component interfaces.
var (
	_ component.Component[ContentMsg]    = (*ContentView)(nil)
	_ component.EventHandler[ContentMsg] = (*ContentView)(nil)
	_ component.Previewer                = (*ContentView)(nil)
)

// ContentView is the main area to the right of the channel list.
type ContentView struct {
	source  NoteSource
	channel *schema.Channel
	notes   []schema.Note
	loading bool
	err     error

	viewport viewport.Model
}

// NewContentView returns an empty content pane.
func NewContentView(src NoteSource) *ContentView {
	v := &ContentView{
		source:   src,
		viewport: viewport.New(defaultContentWidth, defaultContentHeight),
	}
	v.sync()
	return v
}

// Preview implements component.Previewer. It shows a channel with a few
// notes and no backing store.
func (v *ContentView) Preview() tea.Cmd {
	ch := schema.NewChannel("journal")
	start := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	notes := make([]schema.Note, 5)
	for i := range notes {
		notes[i] = schema.NewNote(ch.ID, start.Add(time.Duration(i)*26*time.Hour))
	}
	*v = ContentView{
		channel:  &ch,
		notes:    notes,
		viewport: viewport.New(defaultContentWidth, defaultContentHeight),
	}
	v.sync()
	return nil
}

// Channel returns the shown channel, if any.
func (v *ContentView) Channel() (schema.Channel, bool) {
	if v.channel == nil {
		return schema.Channel{}, false
	}
	return *v.channel, true
}

// Notes returns the notes currently shown.
func (v *ContentView) Notes() []schema.Note {
	return v.notes
}

// Err returns the last read or write error.
func (v *ContentView) Err() error {
	return v.err
}

// Update implements component.Component.
func (v *ContentView) Update(msg ContentMsg) tea.Cmd {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case ShowChannelMsg:
		ch := msg.Channel
		v.channel = &ch
		v.notes = nil
		v.err = nil
		v.loading = v.source != nil
		v.viewport.GotoTop()
		cmd = v.loadNotes(ch.ID)
	case NotesLoadedMsg:
		if v.channel == nil || v.channel.ID != msg.ChannelID {
			slog.Debug("dropping notes of a channel no longer shown", "channel", msg.ChannelID)
			break
		}
		v.notes = msg.Notes
		v.loading = false
	case ContentLoadFailedMsg:
		slog.Error("content pane operation failed", "err", msg.Err)
		v.loading = false
		v.err = msg.Err
	case NewNoteMsg:
		cmd = v.createNote()
	case NoteCreatedMsg:
		if v.channel != nil && v.channel.ID == msg.Note.ChannelID {
			v.notes = append(v.notes, msg.Note)
			v.viewport.GotoBottom()
		}
	case ScrollContentMsg:
		v.viewport.SetYOffset(v.viewport.YOffset + msg.Lines)
	case ResizeContentMsg:
		v.viewport.Width = max(msg.Width, 0)
		v.viewport.Height = max(msg.Height-2, 0)
	}
	v.sync()
	return cmd
}

// HandleEvent implements component.EventHandler.
func (v *ContentView) HandleEvent(msg tea.Msg) (ContentMsg, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			return ScrollContentMsg{Lines: -1}, true
		case key.Matches(msg, keys.Down):
			return ScrollContentMsg{Lines: 1}, true
		case key.Matches(msg, keys.NewNote):
			return NewNoteMsg{}, true
		}
	case tea.WindowSizeMsg:
		return ResizeContentMsg{Width: msg.Width, Height: msg.Height}, true
	}
	return nil, false
}

// View implements component.Component.
func (v *ContentView) View() string {
	return Styles.Title.Render(contentTitle) + "\n\n" + v.viewport.View()
}

func (v *ContentView) loadNotes(channelID uuid.UUID) tea.Cmd {
	src := v.source
	if src == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		notes, err := src.Notes(ctx, channelID)
		if err != nil {
			return ContentLoadFailedMsg{Err: fmt.Errorf("load notes: %w", err)}
		}
		return NotesLoadedMsg{ChannelID: channelID, Notes: notes}
	}
}

func (v *ContentView) createNote() tea.Cmd {
	src := v.source
	if src == nil || v.channel == nil {
		return nil
	}
	channelID := v.channel.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		note, err := src.CreateNote(ctx, channelID)
		if err != nil {
			return ContentLoadFailedMsg{Err: fmt.Errorf("create note: %w", err)}
		}
		return NoteCreatedMsg{Note: note}
	}
}

func (v *ContentView) sync() {
	v.viewport.SetContent(strings.Join(v.render(), "\n"))
}

func (v *ContentView) render() []string {
	width := v.viewport.Width
	if v.channel == nil {
		return []string{Styles.Normal.Render(contentPlaceholder)}
	}

	lines := []string{Styles.Group.Render(textutil.Truncate("# "+v.channel.Name, width)), ""}
	switch {
	case v.err != nil:
		lines = append(lines, Styles.Error.Render(textutil.Truncate("Error: "+v.err.Error(), width)))
	case v.loading:
		lines = append(lines, Styles.Muted.Render("Loading…"))
	case len(v.notes) == 0:
		lines = append(lines, Styles.Empty.Render(noNotesHint))
	default:
		for _, n := range v.notes {
			stamp := n.CreatedAt.Local().Format("2006-01-02 15:04")
			line := fmt.Sprintf("• %s  %s", stamp, n.ContentID.String()[:8])
			lines = append(lines, Styles.Normal.Render(textutil.Truncate(line, width)))
		}
	}
	return lines
}
