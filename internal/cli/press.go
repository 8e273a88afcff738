package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"calcit.dev/calcit/internal/actions"
	"calcit.dev/calcit/internal/cli/helpers"
	"calcit.dev/calcit/internal/runtime"
	"calcit.dev/calcit/internal/utils"
)

// newPressCmd creates the press command
func newPressCmd() *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "press <button>...",
		Short: "Press calculator buttons and print the display",
		Long: `Press calculator buttons in order and print the display.

Numbers are typed digit by digit. Operators are + - x /, and the other
buttons are =, sqrt, ^, sin, cos, tan, log, c (clear) and del.
With no arguments the buttons are read from standard input.

Examples:
  calcit press 3 + 4 =
  calcit press 9 sqrt
  calcit press --trace 5 / 0 =
  echo "2 ^ 8 =" | calcit press`,
		ValidArgsFunction: helpers.CompleteButtons,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				tokens, err := utils.ReadTokens(cmd.InOrStdin())
				if err != nil {
					return err
				}
				if len(tokens) == 0 {
					return errors.New("no buttons to press")
				}
				args = tokens
			}

			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				_, err := actions.PressAction(ctx, actions.PressOptions{
					Tokens: args,
					Trace:  trace,
				})
				return err
			})
		},
	}

	// Buttons after the first one are never read as flags
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "Print the display after every button")

	return cmd
}
