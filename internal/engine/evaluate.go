package engine

import (
	"math"

	"calcit.dev/calcit/internal/errors"
)

// evaluateBinary computes left op right from operand text.
// Only the fixed operator set is supported; text is never evaluated as code.
func evaluateBinary(left string, op Operator, right string) (float64, error) {
	expr := left + string(op) + right

	x, err := parseOperand(left)
	if err != nil {
		return 0, errors.WrapEvaluationError(expr, err)
	}
	y, err := parseOperand(right)
	if err != nil {
		return 0, errors.WrapEvaluationError(expr, err)
	}

	var result float64
	switch op {
	case OpAdd:
		result = x + y
	case OpSubtract:
		result = x - y
	case OpMultiply:
		result = x * y
	case OpDivide:
		result = x / y
	case OpPower:
		result = math.Pow(x, y)
	default:
		return 0, errors.NewEvaluationError(expr, "unsupported operator "+string(op))
	}

	if !isFinite(result) {
		return 0, errors.NewEvaluationError(expr, "result is not a finite number")
	}
	return result, nil
}

// evaluateUnary applies fn to the leading number of operand
func evaluateUnary(name string, fn func(float64) float64, operand string) (float64, error) {
	expr := name + "(" + operand + ")"

	x, err := parseLeadingNumber(operand)
	if err != nil {
		return 0, errors.WrapEvaluationError(expr, err)
	}

	result := fn(x)
	if !isFinite(result) {
		return 0, errors.NewEvaluationError(expr, "result is not a finite number")
	}
	return result, nil
}

// log10 returns exact integers for exact powers of ten
func log10(x float64) float64 {
	r := math.Log10(x)
	if !isFinite(r) {
		return r
	}
	if n := math.Round(r); n != r && math.Abs(n) <= 22 && math.Pow(10, n) == x {
		return n
	}
	return r
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
