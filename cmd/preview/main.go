// Command preview launches a single UI component stand-alone.
//
//	preview            pick a component interactively
//	preview <name>     preview the named component
//
// Each preview runs in a fresh `go run -tags preview noted/cmd/preview exec
// <name>` process so it gets a clean terminal and program state. The
// package is given by import path so this works from any directory of the
// module.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"noted/internal/logging"
	"noted/internal/preview"
	"noted/internal/ui"
)

func newCommand(reg *preview.Registry, launcher *preview.Launcher, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "preview",
		Usage:     "Run one UI component on its own",
		ArgsUsage: "[target]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "package",
				Usage: "Package that contains this command, passed to go run",
				Value: "noted/cmd/preview",
			},
			&cli.StringFlag{
				Name:    "go",
				Usage:   "Go tool used to start previews",
				Value:   "go",
				Sources: cli.EnvVars("NOTED_GO"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			launcher.Package = cmd.String("package")
			launcher.GoTool = cmd.String("go")
			return report(stderr, launcher.Launch(ctx, cmd.Args().Slice()))
		},
		Commands: []*cli.Command{
			{
				Name:      preview.ExecCommand,
				Usage:     "Run a preview in this process",
				ArgsUsage: "<target>",
				Hidden:    true,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return fmt.Errorf("%s takes exactly one target", preview.ExecCommand)
					}
					return report(stderr, execTarget(ctx, reg, cmd.Args().First()))
				},
			},
		},
	}
}

// report prints user-facing resolution failures and passes err on so the
// process exits non-zero.
func report(w io.Writer, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, preview.ErrCanceled):
		fmt.Fprintln(w, "Operation canceled.")
	case errors.Is(err, preview.ErrTargetNotFound):
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return err
}

func main() {
	logging.Setup()

	reg, err := preview.NewRegistry(ui.Previews()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	launcher := &preview.Launcher{
		Registry: reg,
		Selector: preview.ListSelector{},
		Runner:   preview.ExecRunner{},
	}

	if err := newCommand(reg, launcher, os.Stderr).Run(context.Background(), os.Args); err != nil {
		slog.Error("preview failed", slog.String("error", err.Error()))
		if !errors.Is(err, preview.ErrCanceled) && !errors.Is(err, preview.ErrTargetNotFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
