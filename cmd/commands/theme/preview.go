package theme

import (
	"errors"
	"fmt"
	"os"

	"deesha/statetheme/cmd/commands/cmdutil"
	"deesha/statetheme/internal/config"
	"deesha/statetheme/internal/palette"
	"deesha/statetheme/internal/theme"
	"deesha/statetheme/internal/tui"
	"deesha/statetheme/internal/tui/components"
	"deesha/statetheme/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const staticCardWidth = 56

// PreviewCommand returns the "theme preview" command.
func PreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [state]",
		Short: "Preview a state theme in the terminal",
		Long: `Preview state themes.

In a terminal this opens a full-screen browser that re-themes itself as you
move through the states; enter prints the highlighted state. Otherwise a
static palette card is rendered for the given (or default) state.`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runPreview,
		SilenceUsage: true,
	}

	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, env, err := config.LoadEffective()
	if err != nil {
		return err
	}

	if cmdutil.IsInteractive() {
		initial := cfg.DefaultState
		if len(args) > 0 {
			if initial, err = cmdutil.ResolveState(cmd, cfg, env, args, cmdutil.StateOptions{}); err != nil {
				return err
			}
		}
		chosen, err := tui.RunBrowser(palette.Default(), initial)
		if err != nil {
			return fmt.Errorf("theme preview failed: %w", err)
		}
		if chosen != "" {
			fmt.Fprintln(cmd.OutOrStdout(), chosen)
		}
		return nil
	}

	name, err := cmdutil.ResolveState(cmd, cfg, env, args, cmdutil.StateOptions{})
	if err != nil {
		return err
	}
	card, err := renderStatic(name, cardWidth())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), card)
	return nil
}

// cardWidth fits the card to the terminal on stderr when there is one.
func cardWidth() int {
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 {
		return min(w, staticCardWidth)
	}
	return staticCardWidth
}

// renderStatic draws the palette card and token table for name.
func renderStatic(name string, width int) (string, error) {
	entry, err := cmdutil.RequireState(name)
	if err != nil {
		return "", err
	}

	sink := styles.NewThemed(entry.Colors.Background)
	res := theme.ApplyStateTheme(sink, name)
	if !res.Found() {
		if res.Err != nil {
			return "", res.Err
		}
		return "", errors.New("theme: no tokens applied")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.PaletteCard(name, entry, sink, width),
		"",
		components.TokenTable(res, sink),
	), nil
}
