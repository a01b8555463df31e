package states

import (
	"fmt"
	"text/tabwriter"

	"deesha/statetheme/cmd/commands/cmdutil"
	"deesha/statetheme/internal/config"
	"deesha/statetheme/internal/palette"

	"github.com/spf13/cobra"
)

// ListCommand returns the "states list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List all states and their palette inspiration",
		Args:         cobra.NoArgs,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmdutil.AddFormatFlag(cmd, config.FormatTable, config.FormatJSON)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, _, err := config.LoadEffective()
	if err != nil {
		return err
	}
	format, err := cmdutil.Format(cmd, cfg, config.FormatTable, config.FormatJSON)
	if err != nil {
		return err
	}

	names := palette.Names()
	cmdutil.Logger(cmd).Debug("listing states", "count", len(names), "format", format)

	if format == config.FormatJSON {
		out := make([]stateJSON, 0, len(names))
		for _, name := range names {
			e, _ := palette.Lookup(name)
			out = append(out, newStateJSON(name, e))
		}
		return cmdutil.PrintJSON(cmd, out)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "STATE\tINSPIRATION\tPRIMARY\tSECONDARY")
	fmt.Fprintln(w, "-----\t-----------\t-------\t---------")
	for _, name := range names {
		e, _ := palette.Lookup(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, e.Inspiration, e.Colors.Primary, e.Colors.Secondary)
	}
	return w.Flush()
}
