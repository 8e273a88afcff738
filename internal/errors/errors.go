// Package errors provides sentinel errors and custom error types for the calcit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// DisplayError is the display text shown after a failed evaluation
const DisplayError = "Error"

// Sentinel errors for common conditions
var (
	// ErrEvaluation indicates that an expression or operand could not be evaluated
	ErrEvaluation = errors.New("evaluation failed")

	// ErrUnknownAction indicates an action name outside the action protocol
	ErrUnknownAction = errors.New("unknown action")

	// ErrUnknownToken indicates a button label that maps to no action
	ErrUnknownToken = errors.New("unknown button")

	// ErrInvalidConfig indicates a configuration value that failed validation
	ErrInvalidConfig = errors.New("invalid configuration")
)

// EvaluationError represents a malformed expression, an unparseable operand
// or an undefined mathematical result
type EvaluationError struct {
	Expression string
	Reason     string
	Err        error
}

func (e *EvaluationError) Error() string {
	msg := fmt.Sprintf("cannot evaluate %q", e.Expression)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += fmt.Sprintf(" (%v)", e.Err)
	}
	return msg
}

// Is returns true if the target error is ErrEvaluation
func (e *EvaluationError) Is(target error) bool {
	return target == ErrEvaluation
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// NewEvaluationError creates a new EvaluationError
func NewEvaluationError(expression, reason string) *EvaluationError {
	return &EvaluationError{
		Expression: expression,
		Reason:     reason,
	}
}

// WrapEvaluationError creates an EvaluationError caused by err
func WrapEvaluationError(expression string, err error) *EvaluationError {
	return &EvaluationError{
		Expression: expression,
		Err:        err,
	}
}

// UnknownActionError represents an action outside the closed action set
type UnknownActionError struct {
	Name string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action %q", e.Name)
}

// Is returns true if the target error is ErrUnknownAction
func (e *UnknownActionError) Is(target error) bool {
	return target == ErrUnknownAction
}

// NewUnknownActionError creates a new UnknownActionError
func NewUnknownActionError(name string) *UnknownActionError {
	return &UnknownActionError{Name: name}
}

// UnknownTokenError represents a scripted button press that matches no button
type UnknownTokenError struct {
	Token string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown button %q", e.Token)
}

// Is returns true if the target error is ErrUnknownToken
func (e *UnknownTokenError) Is(target error) bool {
	return target == ErrUnknownToken
}

// NewUnknownTokenError creates a new UnknownTokenError
func NewUnknownTokenError(token string) *UnknownTokenError {
	return &UnknownTokenError{Token: token}
}

// ConfigValueError represents a configuration value rejected by validation
type ConfigValueError struct {
	Key     string
	Value   string
	Message string
}

func (e *ConfigValueError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid value %q for %s: %s", e.Value, e.Key, e.Message)
	}
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Key)
}

// Is returns true if the target error is ErrInvalidConfig
func (e *ConfigValueError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigValueError creates a new ConfigValueError
func NewConfigValueError(key, value, message string) *ConfigValueError {
	return &ConfigValueError{
		Key:     key,
		Value:   value,
		Message: message,
	}
}
