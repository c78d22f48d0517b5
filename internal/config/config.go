// Package config loads the application configuration from a TOML file.
//
// Loading never fails: a missing file is created from the bundled example, a
// partial file is completed from the defaults, and an unreadable or invalid
// file is replaced by the defaults with a logged warning.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// PathEnv overrides the config file location.
	PathEnv = "NOTED_CONFIG"

	appDir         = "noted"
	configFileName = "config.toml"
	dbFileName     = "noted.db"
)

//go:embed config.example.toml
var exampleConfig []byte

// AppConfig is the root of the configuration file.
type AppConfig struct {
	Storage Storage `toml:"storage"`
}

// Storage configures where the document store lives.
type Storage struct {
	// Path overrides the directory holding the database file.
	Path *string `toml:"path"`
}

// Default returns the compiled-in configuration.
func Default() AppConfig {
	return AppConfig{
		Storage: Storage{Path: nil},
	}
}

// Validate validates the configuration.
func (c *AppConfig) Validate() error {
	return c.Storage.Validate()
}

// Validate validates the storage configuration.
func (s *Storage) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Path, validation.NilOrNotEmpty),
	)
}

// DefaultPath returns the config file location: $NOTED_CONFIG if set,
// otherwise <config dir>/noted/config.toml.
func DefaultPath() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, appDir, configFileName)
}

// Load reads the configuration at path. See the package doc for how
// failures degrade.
func Load(path string) AppConfig {
	logger := slog.Default().With(slog.String("path", path))

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := writeExample(path); err != nil {
			logger.Error("failed to create default config, using defaults", slog.String("error", err.Error()))
			return Default()
		}
		logger.Debug("created default config")
	}

	cfg, err := loadFile(path)
	if err != nil {
		logger.Warn("failed to load config, using defaults", slog.String("error", err.Error()))
		return Default()
	}
	return cfg
}

func loadFile(path string) (AppConfig, error) {
	slog.Debug("loading config", slog.String("path", path))

	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slog.Warn("ignoring unknown config keys", slog.String("path", path), slog.Any("keys", keys))
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func writeExample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, exampleConfig, 0o644); err != nil {
		return fmt.Errorf("write default config %s: %w", path, err)
	}
	return nil
}

// DatabasePath returns where the document store lives:
// <storage.path>/noted.db when overridden, otherwise
// <data dir>/noted/noted.db.
func DatabasePath(cfg AppConfig) string {
	if cfg.Storage.Path != nil {
		return filepath.Join(*cfg.Storage.Path, dbFileName)
	}
	return filepath.Join(xdg.DataHome, appDir, dbFileName)
}
