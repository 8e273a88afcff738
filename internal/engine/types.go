package engine

import (
	"strings"

	"calcit.dev/calcit/internal/errors"
)

// Operator is a binary operator tag
type Operator string

const (
	// OpAdd adds the operands
	OpAdd Operator = "+"
	// OpSubtract subtracts the right operand from the left
	OpSubtract Operator = "-"
	// OpMultiply multiplies the operands
	OpMultiply Operator = "*"
	// OpDivide divides the left operand by the right
	OpDivide Operator = "/"
	// OpPower raises the left operand to the right
	OpPower Operator = "**"
)

// ParseOperator returns the operator for a button value.
// Only the four keypad operators are accepted; power has its own action.
func ParseOperator(value string) (Operator, bool) {
	switch Operator(value) {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return Operator(value), true
	default:
		return "", false
	}
}

// TrigFunc selects a trigonometric function
type TrigFunc int

const (
	// Sin is the sine function
	Sin TrigFunc = iota
	// Cos is the cosine function
	Cos
	// Tan is the tangent function
	Tan
)

func (f TrigFunc) String() string {
	switch f {
	case Sin:
		return "sin"
	case Cos:
		return "cos"
	case Tan:
		return "tan"
	default:
		return "unknown"
	}
}

// State is a snapshot of the calculator's three text fields
type State struct {
	Current  string
	Operator Operator
	Previous string
}

// Display derives the display text for the state
func (s State) Display() string {
	if s.Current != "" {
		return s.Current
	}
	if pending := s.Previous + string(s.Operator); pending != "" {
		return pending
	}
	return "0"
}

// IsError returns true if the current operand holds the error sentinel,
// including text appended after it
func (s State) IsError() bool {
	return strings.HasPrefix(s.Current, errors.DisplayError)
}

// HasPending returns true if a binary operation is waiting for its right operand
func (s State) HasPending() bool {
	return s.Operator != "" || s.Previous != ""
}
