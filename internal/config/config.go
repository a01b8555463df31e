// Package config stores the statetheme preferences: the state commands fall
// back to and the preferred output format.
//
// The file lives at <UserConfigDir>/statetheme/config.json. Env overrides it
// per invocation, and command-line flags override both.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Output formats accepted by the "format" key and --format flags.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSS   = "css"
)

// Formats lists every accepted output format.
var Formats = []string{FormatTable, FormatJSON, FormatCSS}

// Config holds user preferences that persist across invocations.
type Config struct {
	// DefaultState is the canonical state name used when a command is run
	// without one.
	DefaultState string `json:"default_state,omitempty"`

	// Format is one of Formats, or empty for FormatTable.
	Format string `json:"format,omitempty"`
}

// OutputFormat returns the configured format, or FormatTable when unset.
func (c *Config) OutputFormat() string {
	if c.Format == "" {
		return FormatTable
	}
	return c.Format
}

// testPath replaces Path's result while non-empty.
var testPath string

// SetPath makes Load and Save use p. Tests pair it with ResetPath.
func SetPath(p string) { testPath = p }

// ResetPath restores the per-user location.
func ResetPath() { testPath = "" }

// Path returns the config file location.
func Path() (string, error) {
	if testPath != "" {
		return testPath, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, "statetheme", "config.json"), nil
}

// Load reads the config file at Path. A missing file is an empty Config.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at path. A missing file is an empty Config.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes c to Path.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes c to path as indented JSON, creating parent directories.
// The file is replaced by rename, so readers never see a partial write.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}
