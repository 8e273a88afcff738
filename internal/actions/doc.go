// Package actions implements the calculator's action protocol.
//
// Every user interaction arrives as one Action from a closed set of kinds
// and is applied to the engine by Apply. The presentation layers (the keypad
// TUI and the scripted press command) only ever produce Actions and read the
// display text afterwards.
//
// Key patterns:
//   - Operator buttons arrive as Append actions and are routed to the engine's
//     operator handling by Apply
//   - Commands accept runtime.Context which provides Engine, Splog and Config
//   - Evaluation failures stay inside the engine; only protocol errors
//     (unknown actions or buttons) are returned
package actions
