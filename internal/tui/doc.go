// Package tui provides the terminal presentation layer for calcit.
//
// It handles:
//   - The interactive keypad (bubbletea model, bubbles key bindings and help)
//   - Keypad stories for the storyboard binary
//   - Console output and the rotating debug log (Splog)
//   - Terminal styling and colours (using lipgloss)
package tui
