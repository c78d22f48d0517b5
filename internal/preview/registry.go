package preview

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrTargetNotFound is returned when no entry has the requested name.
	ErrTargetNotFound = errors.New("target not found")
	// ErrCanceled is returned when the user dismisses the target picker.
	ErrCanceled = errors.New("operation canceled")
	// ErrDuplicateName is returned when two entries share a name.
	ErrDuplicateName = errors.New("duplicate preview name")
)

// Registry is the table of previewable components. It is built once by
// NewRegistry and never modified, so concurrent reads need no locking.
type Registry struct {
	entries map[string]Entry
	names   []string
}

// NewRegistry builds a registry from the manifest. Names must be non-empty
// and unique, and every entry needs a Run func.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("preview: entry without a name")
		}
		if e.Run == nil {
			return nil, fmt.Errorf("preview: entry %q has no run func", e.Name)
		}
		if _, ok := r.entries[e.Name]; ok {
			return nil, fmt.Errorf("preview: %w: %s", ErrDuplicateName, e.Name)
		}
		r.entries[e.Name] = e
		r.names = append(r.names, e.Name)
	}
	sort.Strings(r.names)
	return r, nil
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.names)
}

// Names returns all entry names, sorted.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Lookup finds an entry by exact name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Exec runs the named entry in this process.
func (r *Registry) Exec(ctx context.Context, name string) error {
	e, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrTargetNotFound, name)
	}
	return e.Run(ctx)
}
