package preview

import (
	"context"
	"fmt"
	"reflect"

	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/component"
)

// RunFunc boots a stand-alone program and blocks until it exits.
type RunFunc func(ctx context.Context) error

// Entry is one previewable component.
type Entry struct {
	// Name is the component's qualified name, "<package path>.<type>".
	Name string
	Run  RunFunc
}

// For builds the Entry for c. Running it boots a program containing only c,
// in the state c.Preview sets up, and returns the run loop's error as is.
// opts are appended to the default program options.
func For[M any](c component.Component[M], opts ...tea.ProgramOption) Entry {
	name := QualifiedName(c)
	return Entry{
		Name: name,
		Run: func(ctx context.Context) error {
			init, err := component.Boot(c)
			if err != nil {
				return err
			}
			model := component.NewModel(c, init, Title(name))
			options := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
			_, err = tea.NewProgram(model, options...).Run()
			return err
		},
	}
}

// QualifiedName returns "<package path>.<type name>" for v, looking through
// pointers. Two types with the same name in different packages get
// different names.
func QualifiedName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// Title is the window title of a preview.
func Title(name string) string {
	return fmt.Sprintf("Previewing `%s`", name)
}
