package color

import (
	"fmt"
	"strconv"
	"strings"

	"deesha/statetheme/cmd/commands/cmdutil"
	"deesha/statetheme/internal/palette"

	"github.com/spf13/cobra"
)

// RGBACommand returns the "color rgba" command.
func RGBACommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rgba <hex> <alpha>",
		Short: "Convert a hex color to rgba() with the given opacity",
		Long: `Convert a six-digit hex color (leading '#' optional) into CSS rgba()
notation. Alpha must be between 0 and 1.

With --over, the opaque color seen when the result is painted on that
background is printed as well.

Examples:
  statetheme color rgba "#1D3557" 1        # rgba(29,53,87,1)
  statetheme color rgba 457B9D 0.45 --over "#F1FAEE"`,
		Args:         cobra.ExactArgs(2),
		RunE:         runRGBA,
		SilenceUsage: true,
	}

	cmd.Flags().String("over", "", "Background hex color to composite the result over")

	return cmd
}

func runRGBA(cmd *cobra.Command, args []string) error {
	raw := strings.TrimSpace(args[1])
	alpha, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%w, got %q", palette.ErrInvalidAlpha, raw)
	}

	c, err := palette.HexToRGBA(strings.TrimSpace(args[0]), alpha)
	if err != nil {
		return err
	}
	cmdutil.Logger(cmd).Debug("converted color", "hex", args[0], "rgba", c)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, c)

	over, _ := cmd.Flags().GetString("over")
	if over == "" {
		return nil
	}
	flat, err := palette.Flatten(c, over)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, flat)
	return nil
}
