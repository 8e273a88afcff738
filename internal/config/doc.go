// Package config manages calcit configuration.
//
// It handles:
//   - Process settings read from the environment (log file, rotation, debug mode)
//   - User preferences persisted as JSON (keypad accent colour, alternate screen)
package config
