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
	defaultChannelsWidth  = 28
	defaultChannelsHeight = 20
	loadTimeout           = 5 * time.Second
)

// ChannelsMsg is the closed message set of ChannelsView.
type ChannelsMsg interface {
	isChannelsMsg()
}

// ChannelGroupsLoadedMsg carries the result of a successful load.
type ChannelGroupsLoadedMsg struct {
	Groups []schema.ChannelGroup
}

// ChannelsLoadFailedMsg reports a failed load.
type ChannelsLoadFailedMsg struct {
	Err error
}

// MoveChannelCursorMsg moves the cursor by Delta channels, clamped to the list.
type MoveChannelCursorMsg struct {
	Delta int
}

// SelectChannelMsg selects the channel under the cursor.
type SelectChannelMsg struct{}

// ChannelSelectedMsg announces that Channel became the active channel.
// ChannelsView ignores it; parents react to it.
type ChannelSelectedMsg struct {
	Channel schema.Channel
}

// ResizeChannelsMsg sets the pane size.
type ResizeChannelsMsg struct {
	Width  int
	Height int
}

// ReloadChannelsMsg re-reads channel groups from the source.
type ReloadChannelsMsg struct{}

func (ChannelGroupsLoadedMsg) isChannelsMsg() {}
func (ChannelsLoadFailedMsg) isChannelsMsg()  {}
func (MoveChannelCursorMsg) isChannelsMsg()   {}
func (SelectChannelMsg) isChannelsMsg()       {}
func (ChannelSelectedMsg) isChannelsMsg()     {}
func (ResizeChannelsMsg) isChannelsMsg()      {}
func (ReloadChannelsMsg) isChannelsMsg()      {}

// ChannelSource provides the channel groups to list.
type ChannelSource interface {
	ChannelGroups(ctx context.Context) ([]schema.ChannelGroup, error)
}

// Ensure ChannelsView implements the component interfaces.
var (
	_ component.Component[ChannelsMsg]    = (*ChannelsView)(nil)
	_ component.EventHandler[ChannelsMsg] = (*ChannelsView)(nil)
	_ component.Previewer                 = (*ChannelsView)(nil)
)

// ChannelsView is the vertically scrollable channel list on the left.
type ChannelsView struct {
	Groups []schema.ChannelGroup

	source   ChannelSource
	cursor   int
	selected uuid.UUID
	loading  bool
	err      error

	viewport viewport.Model
}

// NewChannelsView returns the view and the task loading its groups.
func NewChannelsView(src ChannelSource) (*ChannelsView, tea.Cmd) {
	v := &ChannelsView{
		source:   src,
		loading:  true,
		viewport: viewport.New(defaultChannelsWidth, defaultChannelsHeight),
	}
	cmd := v.load()
	v.sync()
	return v, cmd
}

// Preview implements component.Previewer. It lists a single group of
// numbered channels, enough to scroll.
func (v *ChannelsView) Preview() tea.Cmd {
	channels := make([]schema.Channel, 20)
	for i := range channels {
		channels[i] = schema.NewChannel(fmt.Sprintf("%d vertical scrollable", i+1))
	}
	*v = ChannelsView{
		Groups:   []schema.ChannelGroup{schema.NewChannelGroup("Preview", channels...)},
		viewport: viewport.New(defaultChannelsWidth, defaultChannelsHeight),
	}
	v.sync()
	return nil
}

// Channels returns every channel in display order.
func (v *ChannelsView) Channels() []schema.Channel {
	var out []schema.Channel
	for _, g := range v.Groups {
		out = append(out, g.Channels...)
	}
	return out
}

// Cursor returns the index of the highlighted channel in Channels.
func (v *ChannelsView) Cursor() int {
	return v.cursor
}

// Selected returns the active channel, if any.
func (v *ChannelsView) Selected() (schema.Channel, bool) {
	for _, c := range v.Channels() {
		if c.ID == v.selected {
			return c, true
		}
	}
	return schema.Channel{}, false
}

// Err returns the last load error.
func (v *ChannelsView) Err() error {
	return v.err
}

// Update implements component.Component.
func (v *ChannelsView) Update(msg ChannelsMsg) tea.Cmd {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case ChannelGroupsLoadedMsg:
		v.Groups = msg.Groups
		v.loading = false
		v.err = nil
		v.cursor = clamp(v.cursor, 0, len(v.Channels())-1)
	case ChannelsLoadFailedMsg:
		slog.Error("failed to load channels", "err", msg.Err)
		v.loading = false
		v.err = msg.Err
	case MoveChannelCursorMsg:
		v.cursor = clamp(v.cursor+msg.Delta, 0, len(v.Channels())-1)
	case SelectChannelMsg:
		channels := v.Channels()
		if len(channels) == 0 {
			return nil
		}
		ch := channels[v.cursor]
		v.selected = ch.ID
		cmd = component.Emit(ChannelSelectedMsg{Channel: ch})
	case ChannelSelectedMsg:
		// Parents handle this.
	case ResizeChannelsMsg:
		v.viewport.Width = max(msg.Width, 0)
		v.viewport.Height = max(msg.Height, 0)
	case ReloadChannelsMsg:
		v.loading = true
		cmd = v.load()
	}
	v.sync()
	return cmd
}

// HandleEvent implements component.EventHandler.
func (v *ChannelsView) HandleEvent(msg tea.Msg) (ChannelsMsg, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			return MoveChannelCursorMsg{Delta: -1}, true
		case key.Matches(msg, keys.Down):
			return MoveChannelCursorMsg{Delta: 1}, true
		case key.Matches(msg, keys.Select):
			return SelectChannelMsg{}, true
		case key.Matches(msg, keys.Reload):
			return ReloadChannelsMsg{}, true
		}
	case tea.WindowSizeMsg:
		return ResizeChannelsMsg{Width: msg.Width, Height: msg.Height}, true
	}
	return nil, false
}

// View implements component.Component.
func (v *ChannelsView) View() string {
	return v.viewport.View()
}

func (v *ChannelsView) load() tea.Cmd {
	src := v.source
	if src == nil {
		v.loading = false
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		groups, err := src.ChannelGroups(ctx)
		if err != nil {
			return ChannelsLoadFailedMsg{Err: err}
		}
		return ChannelGroupsLoadedMsg{Groups: groups}
	}
}

// sync renders the list into the viewport and keeps the cursor in view.
func (v *ChannelsView) sync() {
	lines, cursorLine := v.render()
	v.viewport.SetContent(strings.Join(lines, "\n"))
	if v.cursor == 0 {
		// Keep the headings above the first channel in view.
		cursorLine = 0
	}

	if v.viewport.Height <= 0 {
		return
	}
	switch {
	case cursorLine < v.viewport.YOffset:
		v.viewport.SetYOffset(cursorLine)
	case cursorLine >= v.viewport.YOffset+v.viewport.Height:
		v.viewport.SetYOffset(cursorLine - v.viewport.Height + 1)
	}
}

func (v *ChannelsView) render() (lines []string, cursorLine int) {
	width := v.viewport.Width
	lines = append(lines, Styles.Title.Render("Channels"))

	switch {
	case v.err != nil:
		lines = append(lines, Styles.Error.Render(textutil.Truncate("Error: "+v.err.Error(), width)))
		return lines, 0
	case v.loading:
		lines = append(lines, Styles.Muted.Render("Loading…"))
		return lines, 0
	case len(v.Channels()) == 0:
		lines = append(lines, Styles.Empty.Render("No channels"))
		return lines, 0
	}

	i := 0
	for _, g := range v.Groups {
		if g.Name != nil {
			lines = append(lines, "", Styles.Group.Render(textutil.Truncate(*g.Name, width)))
		}
		for _, c := range g.Channels {
			prefix := "  "
			style := Styles.Normal
			if c.ID == v.selected {
				style = Styles.Active
			}
			if i == v.cursor {
				prefix = "> "
				style = Styles.Selected
				cursorLine = len(lines)
			}
			lines = append(lines, style.Render(prefix+textutil.Truncate("# "+c.Name, width-2)))
			i++
		}
	}
	return lines, cursorLine
}

func clamp(n, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(n, lo), hi)
}
