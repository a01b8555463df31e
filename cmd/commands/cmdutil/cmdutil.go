// Package cmdutil holds helpers shared by the statetheme subcommands.
package cmdutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"deesha/statetheme/internal/config"
	"deesha/statetheme/internal/logging"
	"deesha/statetheme/internal/palette"
	"deesha/statetheme/internal/tui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// IsInteractive reports whether stdout is a terminal. Tests replace it.
var IsInteractive = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Logger returns the logger attached to the command's context.
func Logger(cmd *cobra.Command) *log.Logger {
	return logging.FromContext(cmd.Context())
}

// AddFormatFlag registers --format/-o on cmd listing the accepted formats.
func AddFormatFlag(cmd *cobra.Command, formats ...string) {
	cmd.Flags().StringP("format", "o", "",
		fmt.Sprintf("Output format: %s (default from config, else %s)", strings.Join(formats, ", "), config.FormatTable))
}

// Format returns the --format flag, falling back to the configured format.
// Formats outside allowed are rejected.
func Format(cmd *cobra.Command, cfg *config.Config, allowed ...string) (string, error) {
	f, _ := cmd.Flags().GetString("format")
	f = strings.ToLower(strings.TrimSpace(f))
	if f == "" {
		f = cfg.OutputFormat()
	}
	if !slices.Contains(allowed, f) {
		return "", fmt.Errorf("unsupported format %q for %s (valid: %s)", f, cmd.CommandPath(), strings.Join(allowed, ", "))
	}
	return f, nil
}

// StateOptions controls how ResolveState picks a state when none is given.
type StateOptions struct {
	// Pick opens the interactive picker when stdout is a terminal.
	Pick bool
}

// ResolveState returns the state a command should act on. An explicit
// argument wins and is matched case-insensitively; an argument that matches
// nothing is returned unchanged so the caller can report it. Without an
// argument the picker (when allowed and interactive) or the configured
// default is used.
func ResolveState(cmd *cobra.Command, cfg *config.Config, env config.Env, args []string, opts StateOptions) (string, error) {
	logger := Logger(cmd)

	if len(args) > 0 {
		if name, ok := palette.Canonical(args[0]); ok {
			logger.Debug("state from argument", "arg", args[0], "state", name)
			return name, nil
		}
		return args[0], nil
	}

	if opts.Pick && IsInteractive() {
		name, err := tui.PickStateForm(palette.Default(), cfg.DefaultState, env.IsAccessible())
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				return "", err
			}
			return "", fmt.Errorf("state selection failed: %w", err)
		}
		logger.Debug("state from picker", "state", name)
		return name, nil
	}

	if cfg.DefaultState != "" {
		// The config file may have been edited by hand.
		name := cfg.DefaultState
		if canonical, ok := palette.Canonical(name); ok {
			name = canonical
		}
		logger.Debug("state from config", "state", name)
		return name, nil
	}

	return "", fmt.Errorf("no state specified: pass a state name or set a default with 'statetheme config set default-state <name>'")
}

// RequireState looks name up in the built-in table.
func RequireState(name string) (palette.Entry, error) {
	e, ok := palette.Lookup(name)
	if !ok {
		return palette.Entry{}, fmt.Errorf("%w %q", palette.ErrUnknownState, name)
	}
	return e, nil
}

// PrintJSON encodes v as indented JSON to the command's stdout.
func PrintJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
