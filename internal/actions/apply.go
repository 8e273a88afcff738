package actions

import (
	"calcit.dev/calcit/internal/engine"
	"calcit.dev/calcit/internal/errors"
)

// Apply performs one action on the engine.
// Only an action outside the protocol returns an error; evaluation failures
// show up in the engine's display instead.
func Apply(eng engine.Operations, a Action) error {
	switch a.Kind {
	case Append:
		if op, ok := engine.ParseOperator(a.Value); ok {
			eng.ApplyOperator(op)
			return nil
		}
		eng.Append(a.Value)
	case Delete:
		eng.Backspace()
	case CalculateResult:
		eng.Evaluate()
	case CalculateSquareRoot:
		eng.SquareRoot()
	case CalculatePower:
		eng.Power()
	case CalculateSin:
		eng.Trig(engine.Sin)
	case CalculateCos:
		eng.Trig(engine.Cos)
	case CalculateTan:
		eng.Trig(engine.Tan)
	case CalculateLog:
		eng.Log10()
	case Clear:
		eng.Clear()
	default:
		return errors.NewUnknownActionError(a.Kind.String())
	}
	return nil
}
