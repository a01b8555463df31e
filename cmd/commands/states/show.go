package states

import (
	"fmt"
	"text/tabwriter"

	"deesha/statetheme/cmd/commands/cmdutil"
	"deesha/statetheme/internal/config"
	"deesha/statetheme/internal/palette"

	"github.com/spf13/cobra"
)

// ShowCommand returns the "states show" command.
func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [state]",
		Short: "Show the five colors of a state palette",
		Long: `Show the palette of a single state.

State names are matched case-insensitively. Without a name, an interactive
picker opens in a terminal; otherwise the configured default-state is used.`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runShow,
		SilenceUsage: true,
	}

	cmdutil.AddFormatFlag(cmd, config.FormatTable, config.FormatJSON)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, env, err := config.LoadEffective()
	if err != nil {
		return err
	}
	format, err := cmdutil.Format(cmd, cfg, config.FormatTable, config.FormatJSON)
	if err != nil {
		return err
	}

	name, err := cmdutil.ResolveState(cmd, cfg, env, args, cmdutil.StateOptions{Pick: true})
	if err != nil {
		return err
	}
	entry, err := cmdutil.RequireState(name)
	if err != nil {
		return err
	}

	if format == config.FormatJSON {
		return cmdutil.PrintJSON(cmd, newStateJSON(name, entry))
	}
	return printStateDetail(cmd, name, entry)
}

// stateJSON is the JSON shape shared by list and show.
type stateJSON struct {
	Name        string         `json:"name"`
	Inspiration string         `json:"inspiration"`
	Colors      palette.Colors `json:"colors"`
}

func newStateJSON(name string, e palette.Entry) stateJSON {
	return stateJSON{Name: name, Inspiration: e.Inspiration, Colors: e.Colors}
}

// printStateDetail prints a vertical key-value table of the palette.
func printStateDetail(cmd *cobra.Command, name string, e palette.Entry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "  State:\t%s\n", name)
	fmt.Fprintf(w, "  Inspiration:\t%s\n", e.Inspiration)
	for _, f := range e.Colors.Fields() {
		fmt.Fprintf(w, "  %s:\t%s\n", f.Name, f.Hex)
	}

	return w.Flush()
}
