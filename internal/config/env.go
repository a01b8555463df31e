package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from the process environment. Non-empty values
// override the config file.
type Env struct {
	State      string `env:"STATETHEME_STATE"`
	Format     string `env:"STATETHEME_FORMAT"`
	Debug      bool   `env:"STATETHEME_DEBUG"`
	Accessible string `env:"ACCESSIBLE"`
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (Env, error) {
	return parseEnv(env.Options{})
}

// EnvFrom parses Env from the given variables instead of the process
// environment. Intended for testing.
func EnvFrom(vars map[string]string) (Env, error) {
	return parseEnv(env.Options{Environment: vars})
}

func parseEnv(opts env.Options) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return Env{}, fmt.Errorf("config: failed to parse environment: %w", err)
	}
	return e, nil
}

// IsAccessible reports whether accessible (non-TUI) prompts were requested.
// Any non-empty ACCESSIBLE value enables them.
func (e Env) IsAccessible() bool {
	return e.Accessible != ""
}

// Overlay returns a copy of c with the environment's non-empty values
// applied. Values go through the same normalization as "config set", so
// STATETHEME_FORMAT=JSON and STATETHEME_STATE="new york" are accepted;
// values no key accepts are reported with ErrInvalidValue.
func (c *Config) Overlay(e Env) (*Config, error) {
	out := *c
	overrides := []struct {
		variable string
		key      string
		value    string
	}{
		{"STATETHEME_STATE", "default-state", e.State},
		{"STATETHEME_FORMAT", "format", e.Format},
	}
	for _, o := range overrides {
		if strings.TrimSpace(o.value) == "" {
			continue
		}
		if _, err := Lookup(o.key).Apply(&out, o.value); err != nil {
			return nil, fmt.Errorf("config: %s: %w", o.variable, err)
		}
	}
	return &out, nil
}

// LoadEffective loads the config file and applies the process environment.
func LoadEffective() (*Config, Env, error) {
	cfg, err := Load()
	if err != nil {
		return nil, Env{}, err
	}
	e, err := LoadEnv()
	if err != nil {
		return nil, Env{}, err
	}
	cfg, err = cfg.Overlay(e)
	if err != nil {
		return nil, Env{}, err
	}
	return cfg, e, nil
}
