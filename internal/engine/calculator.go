package engine

import (
	"math"
	"strings"
	"unicode/utf8"

	"calcit.dev/calcit/internal/errors"
)

// Calculator is the single state holder for one calculator session
type Calculator struct {
	current  string
	operator Operator
	previous string
	lastErr  error
}

// NewCalculator creates a calculator in its initial, empty state
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Restore creates a calculator at the given state
func Restore(state State) *Calculator {
	return &Calculator{
		current:  state.Current,
		operator: state.Operator,
		previous: state.Previous,
	}
}

// Display returns the current display text
func (c *Calculator) Display() string {
	return c.Snapshot().Display()
}

// Snapshot returns a copy of the current state
func (c *Calculator) Snapshot() State {
	return State{
		Current:  c.current,
		Operator: c.operator,
		Previous: c.previous,
	}
}

// LastError returns the most recent evaluation failure since the last Clear
func (c *Calculator) LastError() error {
	return c.lastErr
}

// Append adds one character to the current operand.
// A second decimal point is ignored; anything else is appended as-is,
// including onto the Error sentinel.
func (c *Calculator) Append(value string) {
	if value == "." && strings.Contains(c.current, ".") {
		return
	}
	c.current += value
}

// ApplyOperator selects a binary operator, chaining any pending operation first
func (c *Calculator) ApplyOperator(op Operator) {
	if c.current == "" && op == OpSubtract {
		// Start of a negative number
		c.current = string(OpSubtract)
		return
	}
	if c.current == "" && c.previous == "" {
		return
	}
	if c.current != "" && c.previous != "" {
		c.Evaluate()
	}
	c.operator = op
	c.previous = c.current
	c.current = ""
}

// Evaluate applies the pending operator to the captured and current operands
func (c *Calculator) Evaluate() {
	if c.previous == "" || c.current == "" {
		return
	}
	result, err := evaluateBinary(c.previous, c.operator, c.current)
	if err != nil {
		c.fail(err)
		return
	}
	c.current = FormatNumber(result)
	c.operator = ""
	c.previous = ""
}

// SquareRoot replaces the current operand with its square root
func (c *Calculator) SquareRoot() {
	c.applyUnary("sqrt", math.Sqrt)
}

// Power captures the current operand as the base of a pending power operation
func (c *Calculator) Power() {
	if c.current == "" {
		return
	}
	c.operator = OpPower
	c.previous = c.current
	c.current = ""
}

// Trig applies fn to the current operand, read in degrees
func (c *Calculator) Trig(fn TrigFunc) {
	var f func(float64) float64
	switch fn {
	case Sin:
		f = math.Sin
	case Cos:
		f = math.Cos
	case Tan:
		f = math.Tan
	default:
		// Sin, Cos and Tan are the only TrigFuncs; anything else is a no-op
		return
	}
	c.applyUnary(fn.String(), func(deg float64) float64 {
		return f(deg * math.Pi / 180)
	})
}

// Log10 replaces the current operand with its base-10 logarithm
func (c *Calculator) Log10() {
	c.applyUnary("log", log10)
}

// Clear resets all state, including the Error sentinel
func (c *Calculator) Clear() {
	c.current = ""
	c.operator = ""
	c.previous = ""
	c.lastErr = nil
}

// Backspace removes the last character of the current operand
func (c *Calculator) Backspace() {
	if c.current == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(c.current)
	c.current = c.current[:len(c.current)-size]
}

func (c *Calculator) applyUnary(name string, fn func(float64) float64) {
	if c.current == "" {
		return
	}
	result, err := evaluateUnary(name, fn, c.current)
	if err != nil {
		c.fail(err)
		return
	}
	c.current = FormatNumber(result)
}

func (c *Calculator) fail(err error) {
	c.current = errors.DisplayError
	c.lastErr = err
}

var _ Engine = (*Calculator)(nil)
