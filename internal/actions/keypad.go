package actions

import (
	"errors"
	"fmt"

	"calcit.dev/calcit/internal/engine"
	"calcit.dev/calcit/internal/runtime"
	"calcit.dev/calcit/internal/tui"
)

// ErrNotInteractive is returned when an interactive command runs without a terminal
var ErrNotInteractive = errors.New("an interactive terminal is required")

// PressButton returns a press handler that applies keypad buttons to eng
func PressButton(eng engine.Operations) tui.PressFunc {
	return func(b tui.Button) error {
		a, err := Parse(b.Action, b.Value)
		if err != nil {
			return err
		}
		return Apply(eng, a)
	}
}

// KeypadAction runs the interactive keypad against the session engine
func KeypadAction(ctx *runtime.Context) error {
	if ctx.Config.Env.NoInteractive || !tui.IsTTY() {
		return fmt.Errorf("%w; use `calcit press` to script buttons", ErrNotInteractive)
	}

	// The keypad owns the screen; console messages would corrupt it.
	wasQuiet := ctx.Splog.IsQuiet()
	ctx.Splog.SetQuiet(true)
	defer ctx.Splog.SetQuiet(wasQuiet)

	press := func(b tui.Button) error {
		a, err := Parse(b.Action, b.Value)
		if err != nil {
			return err
		}
		return Dispatch(ctx, a)
	}

	ctx.Splog.Debug("keypad started")
	err := tui.RunKeypad(ctx.Engine, press, tui.KeypadOptions{
		Accent:    ctx.Config.User.AccentColor(),
		AltScreen: ctx.Config.User.UseAltScreen(),
	})
	ctx.Splog.Debug("keypad closed with display %q", ctx.Engine.Display())
	return err
}
