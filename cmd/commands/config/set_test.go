package config

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"deesha/statetheme/cmd/commands/cmdutil"
	"deesha/statetheme/internal/config"
)

// setupTestConfig points the config package at a temp file, clears the
// environment overrides and forces non-interactive mode.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)

	t.Setenv("STATETHEME_STATE", "")
	t.Setenv("STATETHEME_FORMAT", "")

	orig := cmdutil.IsInteractive
	cmdutil.IsInteractive = func() bool { return false }
	t.Cleanup(func() { cmdutil.IsInteractive = orig })

	return path
}

// execConfig creates the config command, runs it with args and returns what
// was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestSet_DefaultState(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr, err := execConfig(t, "set", "default-state", "Vermont")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `default-state set to "Vermont"`) {
		t.Errorf("expected confirmation with state name, got: %s", stdout)
	}

	// Verify it was persisted.
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.DefaultState != "Vermont" {
		t.Errorf("expected DefaultState %q, got %q", "Vermont", cfg.DefaultState)
	}
}

func TestSet_DefaultState_CaseInsensitive(t *testing.T) {
	setupTestConfig(t)

	stdout, _, err := execConfig(t, "set", "DEFAULT-STATE", "north DAKOTA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, `"North Dakota"`) {
		t.Errorf("expected canonical state name, got: %s", stdout)
	}
}

func TestSet_DefaultState_Unknown(t *testing.T) {
	setupTestConfig(t)

	_, stderr, err := execConfig(t, "set", "default-state", "Atlantis")
	if !errors.Is(err, config.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if !strings.Contains(stderr, "unknown state") {
		t.Errorf("expected 'unknown state' error, got: %s", stderr)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.DefaultState != "" {
		t.Errorf("rejected value was persisted: %q", cfg.DefaultState)
	}
}

func TestSet_Format(t *testing.T) {
	setupTestConfig(t)

	if _, _, err := execConfig(t, "set", "format", "CSS"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Format != "css" {
		t.Errorf("expected format %q, got %q", "css", cfg.Format)
	}

	_, stderr, err := execConfig(t, "set", "format", "xml")
	if err == nil || !strings.Contains(stderr, "unknown format") {
		t.Errorf("expected unknown format error, got err=%v stderr=%s", err, stderr)
	}
}

func TestSet_EmptyClears(t *testing.T) {
	path := setupTestConfig(t)
	cfg := &config.Config{DefaultState: "Iowa", Format: "json"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, _, err := execConfig(t, "set", "default-state", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "default-state cleared") {
		t.Errorf("expected clear confirmation, got: %s", stdout)
	}

	got, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if got.DefaultState != "" || got.Format != "json" {
		t.Errorf("unexpected config after clear: %+v", got)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr, err := execConfig(t, "set", "bogus-key", "value")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
