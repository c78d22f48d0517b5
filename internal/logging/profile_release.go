//go:build !preview && !debug

package logging

import "log/slog"

// DefaultLevel applies when NOTED_LOG does not set one.
const DefaultLevel = slog.LevelInfo
