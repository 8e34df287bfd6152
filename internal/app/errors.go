package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals the session loop to exit normally.
	// Run never returns it.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates Run was called on a running session.
	ErrAlreadyRunning = errors.New("application already running")
)

// Component names used in ComponentError.
const (
	componentBackend  = "backend"
	componentRenderer = "renderer"
)

// ComponentError represents a fatal failure in a specific component.
type ComponentError struct {
	Component string // Component name (e.g., "backend", "renderer")
	Action    string // Action being performed (e.g., "init", "poll", "draw")
	Err       error  // Underlying error
}

// NewComponentError creates a new ComponentError.
func NewComponentError(component, action string, err error) *ComponentError {
	return &ComponentError{
		Component: component,
		Action:    action,
		Err:       err,
	}
}

func (e *ComponentError) Error() string {
	if e == nil {
		return ""
	}

	if e.Action != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Component, e.Action, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Component, e.Action)
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Component, e.Err)
	}

	return e.Component
}

func (e *ComponentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements errors.Is for ComponentError.
// Matches both the wrapper itself and the wrapped error.
func (e *ComponentError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*ComponentError); ok {
		return e == t
	}
	return errors.Is(e.Err, target)
}

// RecoveredPanicError wraps a panic recovered in the session loop.
// Error includes the stack trace; it is printed only after the terminal
// has been restored.
type RecoveredPanicError struct {
	Value any
	Stack string
}

// NewRecoveredPanicError creates a new RecoveredPanicError.
func NewRecoveredPanicError(value any, stack string) *RecoveredPanicError {
	return &RecoveredPanicError{
		Value: value,
		Stack: stack,
	}
}

func (e *RecoveredPanicError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stack != "" {
		return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *RecoveredPanicError) Unwrap() error {
	if e == nil {
		return nil
	}
	err, _ := e.Value.(error)
	return err
}
