package color

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "color" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Color conversion helpers",
	}

	cmd.AddCommand(RGBACommand())

	return cmd
}
