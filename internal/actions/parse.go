package actions

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"calcit.dev/calcit/internal/errors"
)

// ParseKind returns the kind for a wire name such as "calculateResult"
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, errors.NewUnknownActionError(name)
}

// Parse builds an action from a wire name and its optional payload
func Parse(name, value string) (Action, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return Action{}, err
	}
	return Action{Kind: kind, Value: value}, nil
}

// buttonAliases maps button labels to the action they trigger
var buttonAliases = map[string]Kind{
	"=":     CalculateResult,
	"sqrt":  CalculateSquareRoot,
	"√":     CalculateSquareRoot,
	"^":     CalculatePower,
	"**":    CalculatePower,
	"pow":   CalculatePower,
	"sin":   CalculateSin,
	"cos":   CalculateCos,
	"tan":   CalculateTan,
	"log":   CalculateLog,
	"c":     Clear,
	"ac":    Clear,
	"clear": Clear,
	"del":   Delete,
	"back":  Delete,
	"⌫":     Delete,
}

// operatorAliases maps operator labels to the text appended for them.
// "x" is accepted so shells need no quoting for multiplication.
var operatorAliases = map[string]string{
	"+": "+",
	"-": "-",
	"−": "-",
	"*": "*",
	"x": "*",
	"×": "*",
	"/": "/",
	"÷": "/",
}

// ParseToken maps one button label to its actions.
// A number such as "12.5" expands to one Append per character.
func ParseToken(token string) ([]Action, error) {
	if kind, ok := buttonAliases[strings.ToLower(token)]; ok {
		return []Action{{Kind: kind}}, nil
	}

	if op, ok := operatorAliases[token]; ok {
		return []Action{NewAppend(op)}, nil
	}

	if token == "" || strings.Trim(token, "0123456789.") != "" {
		return nil, errors.NewUnknownTokenError(token)
	}

	actions := make([]Action, 0, utf8.RuneCountInString(token))
	for _, r := range token {
		actions = append(actions, NewAppend(string(r)))
	}
	return actions, nil
}

// ParseTokens maps button labels to actions, in order
func ParseTokens(tokens []string) ([]Action, error) {
	var actions []Action
	for _, token := range tokens {
		parsed, err := ParseToken(token)
		if err != nil {
			return nil, err
		}
		actions = append(actions, parsed...)
	}
	return actions, nil
}

// ButtonNames lists the non-numeric tokens ParseToken accepts
func ButtonNames() []string {
	names := slices.Collect(maps.Keys(buttonAliases))
	names = append(names, slices.Collect(maps.Keys(operatorAliases))...)
	slices.Sort(names)
	return names
}
