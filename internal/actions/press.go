package actions

import (
	"fmt"

	"calcit.dev/calcit/internal/runtime"
)

// PressOptions contains options for the press command
type PressOptions struct {
	Tokens []string
	Trace  bool // print the display after every button instead of only at the end
}

// PressAction applies scripted button presses to the session engine and
// prints the resulting display
func PressAction(ctx *runtime.Context, opts PressOptions) (string, error) {
	if !opts.Trace {
		// Reject a bad button before any press reaches the engine
		parsed, err := ParseTokens(opts.Tokens)
		if err != nil {
			return "", fmt.Errorf("failed to parse button: %w", err)
		}
		if err := DispatchAll(ctx, parsed); err != nil {
			return "", err
		}

		display := ctx.Engine.Display()
		ctx.Splog.Page(display)
		ctx.Splog.Newline()
		return display, nil
	}

	for _, token := range opts.Tokens {
		parsed, err := ParseToken(token)
		if err != nil {
			return "", fmt.Errorf("failed to parse button: %w", err)
		}
		if err := DispatchAll(ctx, parsed); err != nil {
			return "", err
		}
		ctx.Splog.Page(fmt.Sprintf("%-6s → %s\n", token, ctx.Engine.Display()))
	}

	return ctx.Engine.Display(), nil
}

// Dispatch applies an action to the session engine and records the
// transition in the debug log
func Dispatch(ctx *runtime.Context, a Action) error {
	if err := Apply(ctx.Engine, a); err != nil {
		ctx.Splog.Debug("rejected %s: %v", a, err)
		return err
	}

	state := ctx.Engine.Snapshot()
	ctx.Splog.Debug("%s → current=%q operator=%q previous=%q", a, state.Current, state.Operator, state.Previous)
	if state.IsError() {
		if err := ctx.Engine.LastError(); err != nil {
			ctx.Splog.Debug("evaluation failed: %v", err)
		}
	}
	return nil
}

// DispatchAll dispatches actions in order, stopping at the first protocol error
func DispatchAll(ctx *runtime.Context, actions []Action) error {
	for _, a := range actions {
		if err := Dispatch(ctx, a); err != nil {
			return err
		}
	}
	return nil
}
