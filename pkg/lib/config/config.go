// Package config persists the launcher settings: registered programs,
// pinned and recent folders, and notebook preferences.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib"
	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/registry"
	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort            = "8888"
	DefaultMaxRecents      = 5
	MinRecents             = 1
	MaxRecents             = 10
	DefaultNotebookCommand = "jupyter-notebook"

	// EnvPath overrides the default config file location.
	EnvPath = "LAZYL_CONFIG"
)

// ErrInvalidConfig is returned by Load when the file exists but cannot be parsed.
var ErrInvalidConfig = errors.New("invalid configuration file")

// Theme selects the color palette of the terminal UI.
type Theme string

const (
	ThemeDark  Theme = "Dark"
	ThemeLight Theme = "Light"
)

// PinnedFolder is a folder saved under a user chosen label.
type PinnedFolder struct {
	Path  string `yaml:"path"`
	Label string `yaml:"label"`
}

// Config is the persisted launcher state.
type Config struct {
	Theme           Theme              `yaml:"theme"`
	Port            string             `yaml:"port"`
	MaxRecents      int                `yaml:"max_recents"`
	NotebookCommand string             `yaml:"notebook_command"`
	RecentFolders   []string           `yaml:"recent_folders"`
	PinnedFolders   []PinnedFolder     `yaml:"pinned_folders"`
	Programs        []lib.ProgramEntry `yaml:"programs"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Theme != ThemeLight {
		c.Theme = ThemeDark
	}
	if strings.TrimSpace(c.Port) == "" {
		c.Port = DefaultPort
	}
	if c.MaxRecents < MinRecents || c.MaxRecents > MaxRecents {
		c.MaxRecents = DefaultMaxRecents
	}
	if strings.TrimSpace(c.NotebookCommand) == "" {
		c.NotebookCommand = DefaultNotebookCommand
	}
	if c.RecentFolders == nil {
		c.RecentFolders = []string{}
	}
	if c.PinnedFolders == nil {
		c.PinnedFolders = []PinnedFolder{}
	}
}

// ResolvePath picks the config file: explicit flag, then $LAZYL_CONFIG, then
// the per-user config directory.
func ResolvePath(flagValue string) (string, error) {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvPath); strings.TrimSpace(env) != "" {
		return env, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(dir, "lazyl", "config.yaml"), nil
}

func lockPath(path string) string {
	return path + ".lock"
}

// Load reads the configuration at path. A missing file yields defaults. A
// file that cannot be parsed yields defaults together with an error wrapping
// ErrInvalidConfig, so callers can warn and carry on.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	lock := flock.New(lockPath(path))
	if err := lock.RLock(); err != nil {
		return nil, fmt.Errorf("locking config: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes cfg to path atomically while holding the config lock.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config missing")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	lock := flock.New(lockPath(path))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking config: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.yaml")
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Registry builds a program registry from the configured programs.
func (c *Config) Registry() *registry.Registry {
	return registry.New(c.Programs...)
}

// SetPrograms replaces the configured programs with the registry content.
func (c *Config) SetPrograms(r *registry.Registry) {
	c.Programs = r.Entries()
}
