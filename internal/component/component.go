package component

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrPreviewNotSupported is returned when a component without a Preview
// method is launched stand-alone.
var ErrPreviewNotSupported = errors.New("preview not supported")

// Component is the unit of composition. M is the component's message set,
// normally a sealed interface implemented by a handful of message structs.
type Component[M any] interface {
	Update(msg M) tea.Cmd
	View() string
}

// Previewer is implemented by components that can run outside the full
// application tree. Preview sets the receiver to its stand-alone initial
// state and returns the initial task.
type Previewer interface {
	Preview() tea.Cmd
}

// EventHandler translates runtime events (keys, resizes) into the
// component's own messages. Components without one only react to messages
// produced by their own tasks.
type EventHandler[M any] interface {
	HandleEvent(msg tea.Msg) (M, bool)
}

// Boot puts c into its preview state. Components that never defined one fail
// loudly rather than running half-initialized.
func Boot[M any](c Component[M]) (tea.Cmd, error) {
	p, ok := c.(Previewer)
	if !ok {
		return nil, fmt.Errorf("%w: implement Preview() on %T so it can be previewed", ErrPreviewNotSupported, c)
	}
	return p.Preview(), nil
}
