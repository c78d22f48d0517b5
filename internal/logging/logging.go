// Package logging owns the process-wide slog logger.
//
// Setup must run before any other subsystem; it is safe to call more than
// once and every call returns the logger built by the first one. Records go
// to a log file because the terminal belongs to the UI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const (
	// FilterEnv holds the filter expression, e.g. "noted=debug,warn".
	FilterEnv = "NOTED_LOG"
	// FileEnv overrides the log file path. "-" logs to stderr.
	FileEnv = "NOTED_LOG_FILE"

	target = "noted"
)

var (
	once   sync.Once
	logger *slog.Logger
)

// Setup initializes the process-wide logger and installs it as the slog
// default.
func Setup() *slog.Logger {
	once.Do(func() {
		level := ParseFilter(os.Getenv(FilterEnv), DefaultLevel)
		logger = slog.New(slog.NewTextHandler(output(), &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		logger.Debug("logger initialized", slog.String("level", level.String()))
	})
	return logger
}

// ParseFilter reads a comma-separated filter expression. A term is either a
// bare level or target=level; a term for the "noted" target wins over a bare
// level. Unparseable terms and other targets are ignored, and fallback is
// returned when nothing applies.
func ParseFilter(expr string, fallback slog.Level) slog.Level {
	var bare *slog.Level
	for _, term := range strings.Split(expr, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		name, value, scoped := strings.Cut(term, "=")
		if !scoped {
			value = name
		} else if strings.TrimSpace(name) != target {
			continue
		}
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
			continue
		}
		if scoped {
			return lvl
		}
		if bare == nil {
			bare = &lvl
		}
	}
	if bare != nil {
		return *bare
	}
	return fallback
}

func output() io.Writer {
	path := os.Getenv(FileEnv)
	if path == "-" {
		return os.Stderr
	}
	if path == "" {
		path = filepath.Join(xdg.StateHome, target, target+".log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return os.Stderr
	}
	return f
}
