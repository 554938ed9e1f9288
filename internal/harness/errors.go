package harness

import (
	"errors"
	"fmt"
)

// ScenarioError reports a scenario that cannot be executed as written.
type ScenarioError struct {
	// Code identifies the error category.
	Code ScenarioErrorCode

	// Message is a human-readable description.
	Message string

	// Step is the index of the offending step, or -1.
	Step int

	// Op is the operation name, when known.
	Op string
}

// ScenarioErrorCode categorizes scenario errors.
type ScenarioErrorCode string

const (
	// ErrCodeInvalidScenario indicates a malformed scenario document.
	ErrCodeInvalidScenario ScenarioErrorCode = "INVALID_SCENARIO"

	// ErrCodeUnknownOp indicates a step names an operation that does not exist.
	ErrCodeUnknownOp ScenarioErrorCode = "UNKNOWN_OP"

	// ErrCodeInvalidArgs indicates a step's arguments are missing or mistyped.
	ErrCodeInvalidArgs ScenarioErrorCode = "INVALID_ARGS"
)

// Error implements the error interface.
func (e *ScenarioError) Error() string {
	if e.Step >= 0 && e.Op != "" {
		return fmt.Sprintf("%s: %s (step=%d, op=%s)", e.Code, e.Message, e.Step, e.Op)
	}
	if e.Step >= 0 {
		return fmt.Sprintf("%s: %s (step=%d)", e.Code, e.Message, e.Step)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func invalidScenario(format string, args ...any) *ScenarioError {
	return &ScenarioError{Code: ErrCodeInvalidScenario, Message: fmt.Sprintf(format, args...), Step: -1}
}

// IsUnknownOpError returns true if err is an unknown-operation error.
// Uses errors.As to handle wrapped errors.
func IsUnknownOpError(err error) bool {
	return hasCode(err, ErrCodeUnknownOp)
}

// IsInvalidArgsError returns true if err is an invalid-arguments error.
func IsInvalidArgsError(err error) bool {
	return hasCode(err, ErrCodeInvalidArgs)
}

// IsInvalidScenarioError returns true if err is a malformed-scenario error.
func IsInvalidScenarioError(err error) bool {
	return hasCode(err, ErrCodeInvalidScenario)
}

func hasCode(err error, code ScenarioErrorCode) bool {
	var se *ScenarioError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}
