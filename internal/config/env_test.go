package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnvFrom(t *testing.T) {
	got, err := EnvFrom(map[string]string{
		"STATETHEME_STATE":  "Utah",
		"STATETHEME_FORMAT": "css",
		"STATETHEME_DEBUG":  "true",
		"ACCESSIBLE":        "1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Env{State: "Utah", Format: "css", Debug: true, Accessible: "1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("env mismatch (-want +got):\n%s", diff)
	}
	if !got.IsAccessible() {
		t.Error("expected accessible mode")
	}
}

func TestEnvFrom_Empty(t *testing.T) {
	got, err := EnvFrom(map[string]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(Env{}, got); diff != "" {
		t.Errorf("expected zero Env (-want +got):\n%s", diff)
	}
	if got.IsAccessible() {
		t.Error("expected accessible mode off")
	}
}

func TestEnvFrom_InvalidBool(t *testing.T) {
	if _, err := EnvFrom(map[string]string{"STATETHEME_DEBUG": "sometimes"}); err == nil {
		t.Fatal("expected error for non-boolean STATETHEME_DEBUG")
	}
}

func TestOverlay(t *testing.T) {
	base := &Config{DefaultState: "Iowa", Format: FormatTable}

	tests := []struct {
		name string
		env  Env
		want *Config
	}{
		{"empty env keeps file", Env{}, &Config{DefaultState: "Iowa", Format: FormatTable}},
		{"state override", Env{State: "Ohio"}, &Config{DefaultState: "Ohio", Format: FormatTable}},
		{"state any case", Env{State: " new york "}, &Config{DefaultState: "New York", Format: FormatTable}},
		{"format override", Env{Format: FormatJSON}, &Config{DefaultState: "Iowa", Format: FormatJSON}},
		{"format any case", Env{Format: "CSS"}, &Config{DefaultState: "Iowa", Format: FormatCSS}},
		{"blank values ignored", Env{State: "  ", Format: " "}, &Config{DefaultState: "Iowa", Format: FormatTable}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := base.Overlay(tt.env)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("overlay mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if base.DefaultState != "Iowa" || base.Format != FormatTable {
		t.Errorf("Overlay mutated the receiver: %+v", base)
	}
}

func TestOverlay_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		env      Env
		variable string
	}{
		{"unknown state", Env{State: "Atlantis"}, "STATETHEME_STATE"},
		{"unknown format", Env{Format: "yaml"}, "STATETHEME_FORMAT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&Config{}).Overlay(tt.env)
			if !errors.Is(err, ErrInvalidValue) {
				t.Fatalf("expected ErrInvalidValue, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.variable) {
				t.Errorf("expected error to name %s, got %v", tt.variable, err)
			}
		})
	}
}

func TestLoadEffective_NormalizesEnv(t *testing.T) {
	SetPath(filepath.Join(t.TempDir(), "config.json"))
	t.Cleanup(ResetPath)
	t.Setenv("STATETHEME_STATE", "south carolina")
	t.Setenv("STATETHEME_FORMAT", "JSON")

	cfg, _, err := LoadEffective()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &Config{DefaultState: "South Carolina", Format: FormatJSON}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("effective config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEffective_InvalidEnv(t *testing.T) {
	SetPath(filepath.Join(t.TempDir(), "config.json"))
	t.Cleanup(ResetPath)
	t.Setenv("STATETHEME_FORMAT", "xml")

	if _, _, err := LoadEffective(); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
}
