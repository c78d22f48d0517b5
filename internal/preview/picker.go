package preview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	pickerBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(0, 1)
	pickerTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	pickerHint  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pickerItem  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pickerFocus = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

var pickerKeys = struct {
	Choose key.Binding
	Cancel key.Binding
}{
	Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

type targetItem string

func (t targetItem) FilterValue() string { return string(t) }
func (t targetItem) Title() string       { return string(t) }
func (t targetItem) Description() string { return "" }

// picker is a single-choice list.
type picker struct {
	list     list.Model
	chosen   string
	canceled bool
}

func newPicker(prompt string, options []string) *picker {
	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = targetItem(o)
	}
	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	delegate.ShowDescription = false
	delegate.Styles.SelectedTitle = pickerFocus
	delegate.Styles.NormalTitle = pickerItem

	height := len(options) + 6
	if height > 20 {
		height = 20
	}
	l := list.New(items, delegate, 72, height)
	l.Title = prompt
	l.Styles.Title = pickerTitle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	return &picker{list: l}
}

func (p *picker) Init() tea.Cmd { return nil }

func (p *picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.list.SetWidth(msg.Width - 4)
		return p, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			p.canceled = true
			return p, tea.Quit
		}
		if p.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, pickerKeys.Cancel):
			p.canceled = true
			return p, tea.Quit
		case key.Matches(msg, pickerKeys.Choose):
			if sel, ok := p.list.SelectedItem().(targetItem); ok {
				p.chosen = string(sel)
				return p, tea.Quit
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

func (p *picker) View() string {
	if p.chosen != "" || p.canceled {
		return ""
	}
	return pickerBox.Render(p.list.View() + "\n" + pickerHint.Render("enter: select  /: filter  esc: cancel"))
}

// ListSelector is the interactive Selector: a filterable list rendered on
// Output (stderr by default).
type ListSelector struct {
	Input  io.Reader
	Output io.Writer
}

// Select implements Selector. Dismissing the list returns ErrCanceled.
func (s ListSelector) Select(ctx context.Context, prompt string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errors.New("nothing to select")
	}
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(orWriter(s.Output, os.Stderr))}
	if s.Input != nil {
		opts = append(opts, tea.WithInput(s.Input))
	}
	final, err := tea.NewProgram(newPicker(prompt, options), opts...).Run()
	if err != nil {
		return "", fmt.Errorf("target picker: %w", err)
	}
	p := final.(*picker)
	if p.canceled || p.chosen == "" {
		return "", ErrCanceled
	}
	return p.chosen, nil
}
