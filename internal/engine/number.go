package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Exponent form is used outside [1e-6, 1e21)
const (
	minPlainMagnitude = 1e-6
	maxPlainMagnitude = 1e21
)

// FormatNumber renders v as the shortest decimal text that round-trips.
// Magnitudes outside [1e-6, 1e21) use exponent form such as 1e+21 or 2.5e-7.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		// Covers negative zero
		return "0"
	}

	abs := math.Abs(v)
	if abs >= minPlainMagnitude && abs < maxPlainMagnitude {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok || exp == "" {
		return s
	}
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// parseOperand parses a whole operand: an optional leading minus, decimal
// digits with at most one point, and an optional exponent
func parseOperand(s string) (float64, error) {
	if strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("malformed operand %q", s)
	}
	n := scanNumber(s)
	if n == 0 || n != len(s) {
		return 0, fmt.Errorf("malformed operand %q", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed operand %q: %w", s, err)
	}
	return v, nil
}

// parseLeadingNumber parses the longest numeric prefix of s, ignoring
// leading whitespace and trailing garbage
func parseLeadingNumber(s string) (float64, error) {
	t := strings.TrimLeft(s, " \t\r\n")
	n := scanNumber(t)
	if n == 0 {
		return 0, fmt.Errorf("no number in %q", s)
	}
	v, err := strconv.ParseFloat(t[:n], 64)
	if err != nil {
		return 0, fmt.Errorf("no number in %q: %w", s, err)
	}
	return v, nil
}

// scanNumber returns the length of the longest decimal literal prefix of s
func scanNumber(s string) int {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '-' || s[j] == '+') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			i = j
		}
	}
	return i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
