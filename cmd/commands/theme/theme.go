package theme

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "theme" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Apply a state palette as style tokens",
		Long: `Derive the four style tokens (brandA, brandB, muted, stroke) from a
state palette and print or preview them.

Examples:
  statetheme theme apply California
  statetheme theme apply texas -o css > theme.css
  statetheme theme preview`,
	}

	cmd.AddCommand(ApplyCommand())
	cmd.AddCommand(PreviewCommand())

	return cmd
}
