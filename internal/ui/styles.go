package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "238" // Dark gray - for unfocused borders
)

// Styles contains shared style definitions used across components.
var Styles = struct {
	Title    lipgloss.Style // Bold accent color - for pane titles
	Header   lipgloss.Style // Application header bar
	Group    lipgloss.Style // Channel group headings
	Selected lipgloss.Style // Highlighted/selected items
	Active   lipgloss.Style // The channel shown in the content pane
	Normal   lipgloss.Style // Normal text
	Muted    lipgloss.Style // Dimmed text
	Empty    lipgloss.Style // Empty state text (muted, italic)
	Error    lipgloss.Style // Load failures

	PaneFocused lipgloss.Style // Separator of the focused pane
	PaneBlurred lipgloss.Style // Separator of an unfocused pane
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		PaddingLeft(1),
	Group: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Active: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	PaneFocused: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(ColorHighlight)),
	PaneBlurred: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(ColorDim)),
}
