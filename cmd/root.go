package cmd

import (
	"os"

	"deesha/statetheme/cmd/commands/color"
	cfgcmd "deesha/statetheme/cmd/commands/config"
	"deesha/statetheme/cmd/commands/states"
	themecmd "deesha/statetheme/cmd/commands/theme"
	"deesha/statetheme/internal/config"
	"deesha/statetheme/internal/logging"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "statetheme",
		Short: "Theme terminals and web pages with US state color palettes",
		Long: `statetheme carries a curated five-color palette for each of the 50 US
states and turns any of them into four style tokens: brandA, brandB, muted
and stroke.

Quick start:
  statetheme states list                    # Browse the palettes
  statetheme theme apply California         # Print the tokens
  statetheme theme apply texas -o css       # As CSS custom properties
  statetheme theme preview                  # Interactive preview
  statetheme config set default-state Ohio  # Remember a state`,
		PersistentPreRunE: setupLogging,
	}

	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")

	cmd.AddCommand(states.NewCommand())
	cmd.AddCommand(themecmd.NewCommand())
	cmd.AddCommand(color.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())

	return cmd
}

// setupLogging attaches the shared logger to the command context. The
// STATETHEME_DEBUG environment variable has the same effect as --debug.
func setupLogging(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")

	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), debug || env.Debug)
	cmd.SetContext(logging.WithContext(cmd.Context(), logger))
	logger.Debug("starting", "command", cmd.CommandPath())
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
