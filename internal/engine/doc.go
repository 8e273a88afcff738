// Package engine holds the calculator's input state machine and evaluator.
//
// It is the core of calcit, responsible for:
//   - Tracking the operand being typed, the pending operator and the captured left operand
//   - Applying digit, operator and function button presses as state transitions
//   - Evaluating one pending binary operation at a time, left to right, with no precedence
//   - Deriving the display text from state on demand
//
// Evaluation failures never leave the engine: they are converted into the
// "Error" display sentinel, which only Clear recovers from.
package engine
