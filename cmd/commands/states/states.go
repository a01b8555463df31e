package states

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "states" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "states",
		Short: "Browse the built-in state palettes",
		Long: `List the 50 US state palettes or show the colors of one of them.

Examples:
  statetheme states list
  statetheme states show Colorado
  statetheme states show "new mexico" -o json`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ShowCommand())

	return cmd
}
