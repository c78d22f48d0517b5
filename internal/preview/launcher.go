package preview

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

const (
	defaultGoTool  = "go"
	defaultPackage = "noted/cmd/preview"
	defaultTags    = "preview"

	// ExecCommand is the subcommand the child process runs.
	ExecCommand = "exec"

	selectPrompt = "Select a target to execute:"
)

// Runner starts a process and waits for it.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// Selector asks the user to choose one of options.
type Selector interface {
	Select(ctx context.Context, prompt string, options []string) (string, error)
}

// ExecRunner runs processes with os/exec, attached to the given streams
// (the current process's by default).
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner. A non-zero exit is returned as *exec.ExitError.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = orReader(r.Stdin, os.Stdin)
	cmd.Stdout = orWriter(r.Stdout, os.Stdout)
	cmd.Stderr = orWriter(r.Stderr, os.Stderr)
	return cmd.Run()
}

// Launcher resolves a preview target and runs it in a fresh process.
type Launcher struct {
	Registry *Registry
	Selector Selector
	Runner   Runner
	// Out receives user-facing notices. Defaults to stdout.
	Out io.Writer

	// GoTool, Package and Tags make up the child command line:
	// <GoTool> run -tags <Tags> <Package> exec <target>.
	GoTool  string
	Package string
	Tags    string
}

// Command returns the command line that previews target.
func (l *Launcher) Command(target string) (string, []string) {
	tool := l.GoTool
	if tool == "" {
		tool = defaultGoTool
	}
	pkg := l.Package
	if pkg == "" {
		pkg = defaultPackage
	}
	tags := l.Tags
	if tags == "" {
		tags = defaultTags
	}
	return tool, []string{"run", "-tags", tags, pkg, ExecCommand, target}
}

// Resolve picks the target from args (at most one name) or, without args,
// from the selector. ok is false when there is nothing to choose from.
func (l *Launcher) Resolve(ctx context.Context, args []string) (target string, ok bool, err error) {
	switch {
	case len(args) > 1:
		return "", false, fmt.Errorf("expected at most one target, got %d", len(args))
	case len(args) == 1:
		if _, found := l.Registry.Lookup(args[0]); !found {
			return "", false, fmt.Errorf("%w: %q", ErrTargetNotFound, args[0])
		}
		return args[0], true, nil
	case l.Registry.Len() == 0:
		return "", false, nil
	}

	if l.Selector == nil {
		return "", false, fmt.Errorf("no target given and no selector configured")
	}
	target, err = l.Selector.Select(ctx, selectPrompt, l.Registry.Names())
	if err != nil {
		return "", false, err
	}
	if _, found := l.Registry.Lookup(target); !found {
		return "", false, fmt.Errorf("%w: %q", ErrTargetNotFound, target)
	}
	return target, true, nil
}

// Launch resolves a target and previews it in a child process, waiting for
// it to exit. An empty registry without args is reported and is not an
// error.
func (l *Launcher) Launch(ctx context.Context, args []string) error {
	target, ok, err := l.Resolve(ctx, args)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(orWriter(l.Out, os.Stdout), "No targets available.")
		return nil
	}

	name, argv := l.Command(target)
	slog.Info("launching preview", slog.String("target", target), slog.Any("argv", append([]string{name}, argv...)))

	runner := l.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	if err := runner.Run(ctx, name, argv...); err != nil {
		return fmt.Errorf("failed previewing %s: %w", target, err)
	}
	return nil
}

func orWriter(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}

func orReader(r, fallback io.Reader) io.Reader {
	if r == nil {
		return fallback
	}
	return r
}
