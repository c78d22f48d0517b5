// Package preview runs single UI components outside the full application
// tree for visual iteration.
//
// Previewable components are listed in an explicit manifest (see
// ui.Previews) and turned into a Registry once at startup. The Launcher picks
// a target, by name or interactively, and runs it in a fresh
// `go run -tags preview` process; that child resolves the same name in its
// own Registry and calls Registry.Exec.
package preview
