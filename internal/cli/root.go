package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"calcit.dev/calcit/internal/actions"
	"calcit.dev/calcit/internal/cli/helpers"
	"calcit.dev/calcit/internal/runtime"
)

// NewRootCmd creates the root cobra command.
// Running it without a subcommand opens the keypad.
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "calcit",
		Short: "calcit is a keypad calculator for the terminal",
		Long: `calcit is a keypad calculator for the terminal.

Run it with no arguments to open the keypad, or script button presses:

  calcit press 3 + 4 =
  calcit press 2 ^ 10 =
  calcit press 100 log`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.KeypadAction(ctx)
			})
		},
	}

	rootCmd.AddCommand(newPressCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}
