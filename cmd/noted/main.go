package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"noted/internal/component"
	"noted/internal/config"
	"noted/internal/logging"
	"noted/internal/store"
	"noted/internal/telemetry"
	"noted/internal/ui"
)

func run(ctx context.Context, cmd *cli.Command) error {
	logging.Setup()

	if shutdown, err := telemetry.Setup(ctx); err != nil {
		slog.Warn("tracing disabled", "err", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				slog.Warn("tracing shutdown", "err", err)
			}
		}()
	}

	cfg := config.Load(cmd.String("config"))
	db, err := store.Open(config.DatabasePath(cfg))
	if err != nil {
		return describeOpenError(err)
	}
	defer db.Close()

	nb := store.NewNotebook(db)
	if _, err := nb.EnsureDefaults(ctx); err != nil {
		return fmt.Errorf("seed default channels: %w", err)
	}

	root, init := ui.NewRootView(cfg, nb)
	model := component.NewModel[ui.RootMsg](root, init, ui.AppTitle)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// describeOpenError adds a hint on how to recover from a failed store open.
func describeOpenError(err error) error {
	switch {
	case errors.Is(err, store.ErrCreateDir):
		return fmt.Errorf("%w (check storage.path in the config file)", err)
	case errors.Is(err, store.ErrCorrupt):
		return fmt.Errorf("%w (move the file aside to start fresh)", err)
	default:
		return err
	}
}

func main() {
	cmd := &cli.Command{
		Name:   "noted",
		Usage:  "Terminal notebook organized in channels",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.DefaultPath(),
				Sources: cli.EnvVars(config.PathEnv),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
