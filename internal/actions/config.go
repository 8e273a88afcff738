package actions

import (
	"fmt"
	"strings"

	"calcit.dev/calcit/internal/config"
	"calcit.dev/calcit/internal/runtime"
	"calcit.dev/calcit/internal/tui"
	tuiconfig "calcit.dev/calcit/internal/tui/config"
)

// ConfigListAction prints every preference with its effective value
func ConfigListAction(ctx *runtime.Context) error {
	lines := make([]string, 0, len(config.Keys))
	for _, key := range config.Keys {
		value, err := ctx.Config.User.Get(key)
		if err != nil {
			return err
		}
		lines = append(lines, fmt.Sprintf("%s: %s", tui.ColorCyan(key), value))
	}

	ctx.Splog.Page(strings.Join(lines, "\n"))
	ctx.Splog.Newline()
	return nil
}

// ConfigGetAction prints a single preference
func ConfigGetAction(ctx *runtime.Context, key string) error {
	value, err := ctx.Config.User.Get(key)
	if err != nil {
		return err
	}
	ctx.Splog.Page(value)
	ctx.Splog.Newline()
	return nil
}

// ConfigSetAction validates, stores and saves a preference
func ConfigSetAction(ctx *runtime.Context, key, value string) error {
	if err := ctx.Config.User.Set(key, value); err != nil {
		return err
	}
	if err := ctx.Config.User.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	ctx.Splog.Debug("saved %s", ctx.Config.User.Path())
	ctx.Splog.Info("Set %s to: %s", key, value)
	return nil
}

// ConfigEditAction opens the interactive preference editor
func ConfigEditAction(ctx *runtime.Context) error {
	if ctx.Config.Env.NoInteractive || !tui.IsTTY() {
		return ErrNotInteractive
	}
	return tuiconfig.TUIAction(ctx.Config.User, ctx.Splog)
}
