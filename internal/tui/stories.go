package tui

import "calcit.dev/calcit/internal/engine"

// Story is a named calculator state to preview on the keypad
type Story struct {
	Name        string
	Category    string
	Description string
	State       engine.State
}

// Stories is a registry of all keypad stories
var Stories = []Story{}

// RegisterStory registers a new keypad story
func RegisterStory(story Story) {
	Stories = append(Stories, story)
}

func init() {
	registerKeypadStories()
}

func registerKeypadStories() {
	RegisterStory(Story{
		Name:        "Empty",
		Category:    "Keypad",
		Description: "A fresh session: the display falls back to 0",
	})
	RegisterStory(Story{
		Name:        "Typing",
		Category:    "Keypad",
		Description: "An operand with a decimal point being typed",
		State:       engine.State{Current: "3.14"},
	})
	RegisterStory(Story{
		Name:        "Pending Operator",
		Category:    "Keypad",
		Description: "An operator chosen, waiting for the right operand",
		State:       engine.State{Operator: engine.OpAdd, Previous: "3"},
	})
	RegisterStory(Story{
		Name:        "Chaining",
		Category:    "Keypad",
		Description: "3 + 4 evaluated eagerly when × was pressed; press 2 then = for 14",
		State:       engine.State{Operator: engine.OpMultiply, Previous: "7"},
	})
	RegisterStory(Story{
		Name:        "Power Pending",
		Category:    "Keypad",
		Description: "xʸ pressed on 2, waiting for the exponent",
		State:       engine.State{Operator: engine.OpPower, Previous: "2"},
	})
	RegisterStory(Story{
		Name:        "Negative Number",
		Category:    "Keypad",
		Description: "Minus on an empty display starts a negative number",
		State:       engine.State{Current: "-"},
	})
	RegisterStory(Story{
		Name:        "Error",
		Category:    "Errors",
		Description: "5 ÷ 0 = left the Error sentinel; only C recovers",
		State:       engine.State{Current: "Error", Operator: engine.OpDivide, Previous: "5"},
	})
	RegisterStory(Story{
		Name:        "Typing After Error",
		Category:    "Errors",
		Description: "Digits keep appending onto the Error sentinel",
		State:       engine.State{Current: "Error12"},
	})
}
