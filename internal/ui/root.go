package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"noted/internal/component"
	"noted/internal/config"
	"noted/internal/store"
)

// AppTitle is the window title of the application.
const AppTitle = "Noted"

const maxChannelsWidth = 32

// RootMsg is the closed message set of RootView. Leaf messages travel
// inside ChannelsEnvelope and ContentEnvelope.
type RootMsg interface {
	isRootMsg()
}

// ExitMsg closes the application.
type ExitMsg struct{}

// FocusNextMsg moves keyboard focus to the other pane.
type FocusNextMsg struct{}

// ResizeMsg carries the terminal size.
type ResizeMsg struct {
	Width  int
	Height int
}

// ChannelsEnvelope carries a message for the channel list.
type ChannelsEnvelope struct {
	Msg ChannelsMsg
}

// ContentEnvelope carries a message for the content pane.
type ContentEnvelope struct {
	Msg ContentMsg
}

func (ExitMsg) isRootMsg()          {}
func (FocusNextMsg) isRootMsg()     {}
func (ResizeMsg) isRootMsg()        {}
func (ChannelsEnvelope) isRootMsg() {}
func (ContentEnvelope) isRootMsg()  {}

// WrapChannels tags a channel list message for the root.
func WrapChannels(msg ChannelsMsg) tea.Msg { return ChannelsEnvelope{Msg: msg} }

// WrapContent tags a content pane message for the root.
func WrapContent(msg ContentMsg) tea.Msg { return ContentEnvelope{Msg: msg} }

// Pane identifies which child has keyboard focus.
type Pane int

const (
	ChannelsPane Pane = iota
	ContentPane
)

// Notebook is everything the root needs from storage.
type Notebook interface {
	ChannelSource
	NoteSource
}

// Ensure RootView implements the component interfaces.
var (
	_ component.Component[RootMsg]    = (*RootView)(nil)
	_ component.EventHandler[RootMsg] = (*RootView)(nil)
	_ component.Previewer             = (*RootView)(nil)
)

// RootView lays the channel list and the content pane side by side.
type RootView struct {
	Header   *component.Static
	Channels *ChannelsView
	Content  *ContentView

	focus  Pane
	help   help.Model
	width  int
	height int
}

// NewRootView builds the application tree over nb. The returned task loads
// the channel list.
func NewRootView(cfg config.AppConfig, nb Notebook) (*RootView, tea.Cmd) {
	channels, loadChannels := NewChannelsView(nb)
	r := &RootView{
		Header:   component.NewStatic(AppTitle+"  "+config.DatabasePath(cfg), Styles.Header),
		Channels: channels,
		Content:  NewContentView(nb),
		help:     help.New(),
	}
	return r, component.MapCmd(loadChannels, WrapChannels)
}

// Preview implements component.Previewer. It runs against a seeded
// in-memory store.
func (r *RootView) Preview() tea.Cmd {
	nb, err := previewNotebook()
	if err != nil {
		slog.Error("preview store unavailable, falling back to static data", "err", err)
		r.Header = component.NewStatic(AppTitle+"  (preview)", Styles.Header)
		r.Channels = &ChannelsView{}
		r.Channels.Preview()
		r.Content = &ContentView{}
		r.Content.Preview()
		r.help = help.New()
		return nil
	}
	root, cmd := NewRootView(config.Default(), nb)
	root.Header.Text = AppTitle + "  (in-memory preview)"
	*r = *root
	return cmd
}

func previewNotebook() (*store.Notebook, error) {
	db, err := store.OpenMemory()
	if err != nil {
		return nil, err
	}
	nb := store.NewNotebook(db)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := nb.EnsureDefaults(ctx); err != nil {
		return nil, err
	}
	groups, err := nb.ChannelGroups(ctx)
	if err != nil {
		return nil, err
	}
	if len(groups) > 0 && len(groups[0].Channels) > 0 {
		for range 3 {
			if _, err := nb.CreateNote(ctx, groups[0].Channels[0].ID); err != nil {
				return nil, err
			}
		}
	}
	return nb, nil
}

// Focus returns the focused pane.
func (r *RootView) Focus() Pane {
	return r.focus
}

// Update implements component.Component.
func (r *RootView) Update(msg RootMsg) tea.Cmd {
	switch msg := msg.(type) {
	case ExitMsg:
		return tea.Quit
	case FocusNextMsg:
		if r.focus == ChannelsPane {
			r.focus = ContentPane
		} else {
			r.focus = ChannelsPane
		}
		return nil
	case ResizeMsg:
		return r.resize(msg.Width, msg.Height)
	case ChannelsEnvelope:
		cmd := component.MapCmd(r.Channels.Update(msg.Msg), WrapChannels)
		if selected, ok := msg.Msg.(ChannelSelectedMsg); ok {
			show := r.Content.Update(ShowChannelMsg{Channel: selected.Channel})
			cmd = tea.Batch(cmd, component.MapCmd(show, WrapContent))
		}
		return cmd
	case ContentEnvelope:
		return component.MapCmd(r.Content.Update(msg.Msg), WrapContent)
	}
	return nil
}

func (r *RootView) resize(width, height int) tea.Cmd {
	r.width, r.height = width, height
	r.help.Width = width

	paneHeight := max(height-2, 0)
	channelsWidth := min(maxChannelsWidth, width/3)
	contentWidth := max(width-channelsWidth-3, 0)

	return tea.Batch(
		component.MapCmd(r.Channels.Update(ResizeChannelsMsg{Width: channelsWidth, Height: paneHeight}), WrapChannels),
		component.MapCmd(r.Content.Update(ResizeContentMsg{Width: contentWidth, Height: paneHeight}), WrapContent),
	)
}

// HandleEvent implements component.EventHandler. Keys other than quit and
// focus go to the focused pane.
func (r *RootView) HandleEvent(msg tea.Msg) (RootMsg, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return ResizeMsg{Width: msg.Width, Height: msg.Height}, true
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return ExitMsg{}, true
		case key.Matches(msg, keys.Focus):
			return FocusNextMsg{}, true
		}
		if r.focus == ChannelsPane {
			if m, ok := r.Channels.HandleEvent(msg); ok {
				return ChannelsEnvelope{Msg: m}, true
			}
			return nil, false
		}
		if m, ok := r.Content.HandleEvent(msg); ok {
			return ContentEnvelope{Msg: m}, true
		}
	}
	return nil, false
}

// View implements component.Component.
func (r *RootView) View() string {
	separator := Styles.PaneBlurred
	if r.focus == ChannelsPane {
		separator = Styles.PaneFocused
	}
	channels := separator.PaddingRight(1).Render(r.Channels.View())
	content := lipgloss.NewStyle().PaddingLeft(1).Render(r.Content.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		r.Header.View(),
		lipgloss.JoinHorizontal(lipgloss.Top, channels, content),
		r.help.View(keys),
	)
}
