package actions

import "fmt"

// Kind identifies one of the actions a button can trigger
type Kind int

const (
	// Append adds a digit or decimal point; operator values are routed to the operator handling
	Append Kind = iota
	// Delete removes the last typed character
	Delete
	// CalculateResult evaluates the pending operation
	CalculateResult
	// CalculateSquareRoot replaces the operand with its square root
	CalculateSquareRoot
	// CalculatePower starts a power operation
	CalculatePower
	// CalculateSin applies sine in degrees
	CalculateSin
	// CalculateCos applies cosine in degrees
	CalculateCos
	// CalculateTan applies tangent in degrees
	CalculateTan
	// CalculateLog applies the base-10 logarithm
	CalculateLog
	// Clear resets the calculator
	Clear
)

// kindNames holds the wire name of each kind, indexed by Kind
var kindNames = [...]string{
	Append:              "append",
	Delete:              "delete",
	CalculateResult:     "calculateResult",
	CalculateSquareRoot: "calculateSquareRoot",
	CalculatePower:      "calculatePower",
	CalculateSin:        "calculateSin",
	CalculateCos:        "calculateCos",
	CalculateTan:        "calculateTan",
	CalculateLog:        "calculateLog",
	Clear:               "clear",
}

// Kinds returns every action kind in declaration order
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Action is one user interaction, optionally carrying a string payload
type Action struct {
	Kind  Kind
	Value string
}

func (a Action) String() string {
	if a.Value == "" {
		return a.Kind.String() + "()"
	}
	return fmt.Sprintf("%s(%q)", a.Kind, a.Value)
}

// NewAppend creates an Append action for value
func NewAppend(value string) Action {
	return Action{Kind: Append, Value: value}
}
