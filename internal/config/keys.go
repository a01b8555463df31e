package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"deesha/statetheme/internal/palette"
)

// ErrInvalidValue is returned when a value is rejected by a key's Normalize.
var ErrInvalidValue = errors.New("invalid configuration value")

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "default-state").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)

	// Normalize validates a user-supplied value and returns its canonical
	// form. An empty value always clears the key.
	Normalize func(value string) (string, error)
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "default-state",
		Description: "State used when a command is run without one",
		Get:         func(cfg *Config) string { return cfg.DefaultState },
		Set:         func(cfg *Config, v string) { cfg.DefaultState = v },
		Normalize:   normalizeState,
	},
	{
		Name:        "format",
		Description: "Output format: " + strings.Join(Formats, ", "),
		Get:         func(cfg *Config) string { return cfg.Format },
		Set:         func(cfg *Config, v string) { cfg.Format = v },
		Normalize:   normalizeFormat,
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}

// ValidFormat reports whether f is one of Formats.
func ValidFormat(f string) bool {
	return slices.Contains(Formats, f)
}

// Apply normalizes value and stores it on cfg.
func (k *KeySpec) Apply(cfg *Config, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v != "" && k.Normalize != nil {
		var err error
		if v, err = k.Normalize(v); err != nil {
			return "", err
		}
	}
	k.Set(cfg, v)
	return v, nil
}

// normalizeState maps any casing of a state name to its table key.
func normalizeState(v string) (string, error) {
	name, ok := palette.Canonical(v)
	if !ok {
		return "", fmt.Errorf("%w: unknown state %q", ErrInvalidValue, v)
	}
	return name, nil
}

func normalizeFormat(v string) (string, error) {
	f := strings.ToLower(v)
	if !ValidFormat(f) {
		return "", fmt.Errorf("%w: unknown format %q (valid: %s)", ErrInvalidValue, v, strings.Join(Formats, ", "))
	}
	return f, nil
}
