// Package runtime provides the execution context for calcit commands.
//
// It bundles the calculator engine for the session with the logger and
// configuration, so actions and the keypad receive a single dependency.
package runtime
