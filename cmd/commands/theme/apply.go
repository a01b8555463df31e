package theme

import (
	"fmt"
	"io"
	"text/tabwriter"

	"deesha/statetheme/cmd/commands/cmdutil"
	"deesha/statetheme/internal/config"
	"deesha/statetheme/internal/palette"
	"deesha/statetheme/internal/theme"

	"github.com/spf13/cobra"
)

// ApplyCommand returns the "theme apply" command.
func ApplyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [state]",
		Short: "Print the style tokens for a state",
		Long: `Apply a state palette to an empty style context and print the tokens
written to it.

The css format emits a :root block of custom properties ready to include
in a stylesheet.`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runApply,
		SilenceUsage: true,
	}

	cmdutil.AddFormatFlag(cmd, config.Formats...)

	return cmd
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, env, err := config.LoadEffective()
	if err != nil {
		return err
	}
	format, err := cmdutil.Format(cmd, cfg, config.Formats...)
	if err != nil {
		return err
	}

	name, err := cmdutil.ResolveState(cmd, cfg, env, args, cmdutil.StateOptions{Pick: true})
	if err != nil {
		return err
	}

	ctx := theme.NewContext()
	res := theme.ApplyStateTheme(ctx, name)
	cmdutil.Logger(cmd).Debug("applied theme", "state", name, "outcome", res.Outcome, "writes", ctx.Writes())

	switch res.Outcome {
	case theme.Resolved:
	case theme.NotFound:
		return fmt.Errorf("%w %q", palette.ErrUnknownState, name)
	default:
		return res.Err
	}

	out := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return cmdutil.PrintJSON(cmd, res)
	case config.FormatCSS:
		return writeCSS(out, ctx)
	default:
		return writeTokenTable(out, ctx)
	}
}

func writeTokenTable(out io.Writer, ctx *theme.Context) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TOKEN\tVALUE")
	fmt.Fprintln(w, "-----\t-----")
	for _, tok := range theme.Tokens() {
		fmt.Fprintf(w, "%s\t%s\n", tok, ctx.Get(tok))
	}
	return w.Flush()
}

// writeCSS renders the tokens as custom properties on :root.
func writeCSS(out io.Writer, ctx *theme.Context) error {
	if _, err := fmt.Fprintln(out, ":root {"); err != nil {
		return err
	}
	for _, tok := range theme.Tokens() {
		if _, err := fmt.Fprintf(out, "  --%s: %s;\n", tok, ctx.Get(tok)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(out, "}")
	return err
}
