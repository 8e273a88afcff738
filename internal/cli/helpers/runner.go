// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"github.com/spf13/cobra"

	"calcit.dev/calcit/internal/config"
	"calcit.dev/calcit/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function.
// The context writes to the command's output and is closed when fn returns.
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, err := runtime.NewSessionContext(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Close() }()

	return fn(ctx)
}
