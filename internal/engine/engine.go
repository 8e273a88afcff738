package engine

// DisplayReader provides read-only access to calculator state
type DisplayReader interface {
	// Display returns the text the presentation layer should render
	Display() string
	// Snapshot returns a copy of the current state
	Snapshot() State
	// LastError returns the most recent evaluation failure since the last Clear, if any
	LastError() error
}

// Operations applies one user action to the calculator state.
// None of the operations return errors: failures become the Error display.
type Operations interface {
	Append(value string)
	ApplyOperator(op Operator)
	Evaluate()
	SquareRoot()
	Power()
	Trig(fn TrigFunc)
	Log10()
	Clear()
	Backspace()
}

// Engine is the core interface for calculator state management.
// Not safe for concurrent use: actions must be applied one at a time.
type Engine interface {
	DisplayReader
	Operations
}
