package engine

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"calcit.dev/calcit/internal/errors"
)

// press applies a sequence of button labels the way the keypad does
func press(c *Calculator, buttons ...string) {
	for _, b := range buttons {
		switch b {
		case "=":
			c.Evaluate()
		case "sqrt":
			c.SquareRoot()
		case "^":
			c.Power()
		case "sin":
			c.Trig(Sin)
		case "cos":
			c.Trig(Cos)
		case "tan":
			c.Trig(Tan)
		case "log":
			c.Log10()
		case "C":
			c.Clear()
		case "DEL":
			c.Backspace()
		default:
			if op, ok := ParseOperator(b); ok {
				c.ApplyOperator(op)
				continue
			}
			c.Append(b)
		}
	}
}

func TestCalculator_InitialState(t *testing.T) {
	t.Parallel()

	c := NewCalculator()
	require.Equal(t, "0", c.Display())
	require.Equal(t, State{}, c.Snapshot())
	require.NoError(t, c.LastError())
}

func TestCalculator_Append(t *testing.T) {
	t.Parallel()

	t.Run("second decimal point is ignored", func(t *testing.T) {
		t.Parallel()
		for _, digits := range []string{"", "0", "7", "12", "345"} {
			c := NewCalculator()
			for _, d := range digits {
				c.Append(string(d))
			}
			c.Append(".")
			c.Append(".")
			require.Equal(t, digits+".", c.Snapshot().Current)
		}
	})

	t.Run("decimal point after fraction digits is ignored", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		press(c, "1", ".", "5", ".", "2")
		require.Equal(t, "1.52", c.Display())
	})

	t.Run("appends onto the error sentinel", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		press(c, "5", "/", "0", "=")
		require.Equal(t, "Error", c.Display())

		c.Append("1")
		require.Equal(t, "Error1", c.Display())
		require.True(t, c.Snapshot().IsError())
	})

	t.Run("does not validate characters", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		c.Append("x")
		require.Equal(t, "x", c.Display())
	})
}

func TestCalculator_ApplyOperator(t *testing.T) {
	t.Parallel()

	t.Run("minus on empty state starts a negative number", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		c.ApplyOperator(OpSubtract)
		require.Equal(t, "-", c.Display())
		require.Equal(t, State{Current: "-"}, c.Snapshot())
	})

	t.Run("other operators on empty state are ignored", func(t *testing.T) {
		t.Parallel()
		for _, op := range []Operator{OpAdd, OpMultiply, OpDivide} {
			c := NewCalculator()
			c.ApplyOperator(op)
			require.Equal(t, State{}, c.Snapshot(), "operator %s", op)
			require.Equal(t, "0", c.Display())
		}
	})

	t.Run("captures the current operand", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		press(c, "3", "+")
		require.Equal(t, State{Operator: OpAdd, Previous: "3"}, c.Snapshot())
		require.Equal(t, "3+", c.Display())
	})

	t.Run("minus after an operator starts a negative right operand", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		press(c, "3", "*", "-", "4", "=")
		require.Equal(t, "-12", c.Display())
	})

	t.Run("operator with no current operand replaces the captured one", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		press(c, "3", "+", "*")
		require.Equal(t, State{Operator: OpMultiply}, c.Snapshot())
		require.Equal(t, "*", c.Display())
	})

	t.Run("chains left to right without precedence", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		press(c, "3", "+", "4", "*")
		require.Equal(t, State{Operator: OpMultiply, Previous: "7"}, c.Snapshot())

		press(c, "2", "=")
		require.Equal(t, "14", c.Display())
	})
}

func TestCalculator_Evaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		buttons []string
		want    string
	}{
		{"addition", []string{"3", "+", "4", "="}, "7"},
		{"subtraction", []string{"1", "0", "-", "4", "="}, "6"},
		{"multiplication", []string{"6", "*", "7", "="}, "42"},
		{"division", []string{"7", "/", "2", "="}, "3.5"},
		{"negative left operand", []string{"-", "5", "*", "2", "="}, "-10"},
		{"floating point noise is kept", []string{".", "1", "+", ".", "2", "="}, "0.30000000000000004"},
		{"trailing decimal point", []string{"1", ".", "+", "2", "="}, "3"},
		{"power", []string{"2", "^", "1", "0", "="}, "1024"},
		{"power of a negative base", []string{"-", "2", "^", "2", "="}, "4"},
		{"fractional power", []string{"9", "^", ".", "5", "="}, "3"},
		{"large result uses exponent form", []string{"1", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "*", "1", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "="}, "1e+21"},
		{"division by zero", []string{"5", "/", "0", "="}, "Error"},
		{"zero by zero", []string{"0", "/", "0", "="}, "Error"},
		{"overflow", []string{"1", "0", "^", "4", "0", "0", "="}, "Error"},
		{"lone minus operand", []string{"-", "+", "5", "="}, "Error"},
		{"malformed right operand", []string{"2", "+", "-", "="}, "Error"},
		{"result feeds the next operation", []string{"2", "+", "3", "=", "*", "4", "="}, "20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := NewCalculator()
			press(c, tt.buttons...)
			require.Equal(t, tt.want, c.Display())
		})
	}

	t.Run("no-op without both operands", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		press(c, "4", "=")
		require.Equal(t, State{Current: "4"}, c.Snapshot())

		press(c, "+", "=")
		require.Equal(t, State{Operator: OpAdd, Previous: "4"}, c.Snapshot())
	})

	t.Run("success clears the pending operation", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		press(c, "8", "-", "3", "=")
		require.Equal(t, State{Current: "5"}, c.Snapshot())
	})

	t.Run("failure keeps the pending operation and records the cause", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		press(c, "5", "/", "0", "=")
		require.Equal(t, State{Current: "Error", Operator: OpDivide, Previous: "5"}, c.Snapshot())

		err := c.LastError()
		require.Error(t, err)
		require.ErrorIs(t, err, errors.ErrEvaluation)

		var evalErr *errors.EvaluationError
		require.ErrorAs(t, err, &evalErr)
		require.Equal(t, "5/0", evalErr.Expression)
	})

	t.Run("error operand keeps failing", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		press(c, "5", "/", "0", "=", "1", "+", "2", "=")
		require.Equal(t, "Error", c.Display())
	})
}

func TestCalculator_SquareRoot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		operand string
		want    string
	}{
		{"16", "4"},
		{"2", "1.4142135623730951"},
		{"0", "0"},
		{"0.25", "0.5"},
		{"-4", "Error"},
		{"-", "Error"},
		{"Error", "Error"},
		{"9abc", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.operand, func(t *testing.T) {
			t.Parallel()
			c := Restore(State{Current: tt.operand})
			c.SquareRoot()
			require.Equal(t, tt.want, c.Display())
		})
	}

	t.Run("no-op on empty operand", func(t *testing.T) {
		t.Parallel()
		c := Restore(State{Operator: OpAdd, Previous: "3"})
		c.SquareRoot()
		require.Equal(t, State{Operator: OpAdd, Previous: "3"}, c.Snapshot())
	})

	t.Run("applies to the right operand only", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		press(c, "1", "+", "9", "sqrt", "=")
		require.Equal(t, "4", c.Display())
	})
}

func TestCalculator_Power(t *testing.T) {
	t.Parallel()

	t.Run("waits for the exponent", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		press(c, "3", "^")
		require.Equal(t, State{Operator: OpPower, Previous: "3"}, c.Snapshot())
		require.Equal(t, "3**", c.Display())

		press(c, "3", "=")
		require.Equal(t, "27", c.Display())
	})

	t.Run("no-op on empty operand", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		c.Power()
		require.Equal(t, State{}, c.Snapshot())
	})

	t.Run("replaces a pending operator without evaluating it", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		press(c, "2", "+", "3", "^")
		require.Equal(t, State{Operator: OpPower, Previous: "3"}, c.Snapshot())
	})
}

func TestCalculator_Trig(t *testing.T) {
	t.Parallel()

	t.Run("exact values", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			fn      TrigFunc
			operand string
			want    string
		}{
			{Sin, "0", "0"},
			{Cos, "0", "1"},
			{Tan, "0", "0"},
		}
		for _, tt := range tests {
			c := Restore(State{Current: tt.operand})
			c.Trig(tt.fn)
			require.Equal(t, tt.want, c.Display(), "%s(%s)", tt.fn, tt.operand)
		}
	})

	t.Run("degrees are converted to radians", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			fn      TrigFunc
			operand string
			want    float64
		}{
			{Sin, "30", 0.5},
			{Cos, "60", 0.5},
			{Tan, "45", 1},
			{Cos, "180", -1},
			{Sin, "-90", -1},
			{Sin, "90", 1},
		}
		for _, tt := range tests {
			c := Restore(State{Current: tt.operand})
			c.Trig(tt.fn)
			got, err := strconv.ParseFloat(c.Display(), 64)
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, 1e-12, "%s(%s)", tt.fn, tt.operand)
		}
	})

	t.Run("unparseable operand", func(t *testing.T) {
		t.Parallel()
		c := Restore(State{Current: "-"})
		c.Trig(Cos)
		require.Equal(t, "Error", c.Display())
		require.ErrorIs(t, c.LastError(), errors.ErrEvaluation)
	})

	t.Run("no-op on empty operand", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		c.Trig(Sin)
		require.Equal(t, State{}, c.Snapshot())
	})

	t.Run("unknown function leaves the operand untouched", func(t *testing.T) {
		t.Parallel()
		c := Restore(State{Current: "30"})
		c.Trig(TrigFunc(99))
		require.Equal(t, State{Current: "30"}, c.Snapshot())
		require.NoError(t, c.LastError())
	})
}

func TestCalculator_Log10(t *testing.T) {
	t.Parallel()

	tests := []struct {
		operand string
		want    string
	}{
		{"100", "2"},
		{"1000", "3"},
		{"1", "0"},
		{"0.001", "-3"},
		{"0", "Error"},
		{"-10", "Error"},
		{"Error", "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.operand, func(t *testing.T) {
			t.Parallel()
			c := Restore(State{Current: tt.operand})
			c.Log10()
			require.Equal(t, tt.want, c.Display())
		})
	}

	t.Run("no-op on empty operand", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		c.Log10()
		require.Equal(t, "0", c.Display())
	})
}

func TestCalculator_Clear(t *testing.T) {
	t.Parallel()

	states := map[string][]string{
		"empty":    {},
		"typing":   {"1", "2", "."},
		"pending":  {"1", "2", "+"},
		"chaining": {"1", "+", "2", "*", "3"},
		"error":    {"5", "/", "0", "=", "7"},
		"power":    {"2", "^"},
	}

	for name, buttons := range states {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := NewCalculator()
			press(c, buttons...)
			c.Clear()
			require.Equal(t, "0", c.Display())
			require.Equal(t, State{}, c.Snapshot())
			require.NoError(t, c.LastError())
		})
	}
}

func TestCalculator_Backspace(t *testing.T) {
	t.Parallel()

	t.Run("removes the last character", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		press(c, "1", "2", ".", "DEL")
		require.Equal(t, "12", c.Display())

		// The decimal point may be typed again once removed
		press(c, ".", "5")
		require.Equal(t, "12.5", c.Display())
	})

	t.Run("no-op on empty operand", func(t *testing.T) {
		t.Parallel()
		c := NewCalculator()
		press(c, "4", "+", "DEL")
		require.Equal(t, State{Operator: OpAdd, Previous: "4"}, c.Snapshot())
	})

	t.Run("edits the error sentinel", func(t *testing.T) {
		t.Parallel()
		c := Restore(State{Current: "Error"})
		c.Backspace()
		require.Equal(t, "Erro", c.Display())
	})
}

func TestState_Display(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state State
		want  string
	}{
		{State{}, "0"},
		{State{Current: "12"}, "12"},
		{State{Current: "4", Operator: OpAdd, Previous: "3"}, "4"},
		{State{Operator: OpAdd, Previous: "3"}, "3+"},
		{State{Operator: OpPower, Previous: "2"}, "2**"},
		{State{Operator: OpMultiply}, "*"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.state.Display(), "%+v", tt.state)
	}
}
