package errors

import (
	"errors"
	"fmt"

	"github.com/firefly-engineering/vlsm-ctl/internal/vlsm"
)

// Exit codes for vlsm-ctl
const (
	ExitSuccess          = 0
	ExitGeneralError     = 1
	ExitInvalidInput     = 2
	ExitAllocationFailed = 3
	ExitConfigError      = 4
	ExitPlanNotFound     = 5
	ExitTerminalRequired = 6
)

// CtlError is the base error type for vlsm-ctl
type CtlError struct {
	Code    int
	Message string
	Cause   error
}

func (e *CtlError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CtlError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *CtlError) ExitCode() int {
	return e.Code
}

// New creates a new CtlError
func New(code int, message string) *CtlError {
	return &CtlError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a CtlError
func Wrap(code int, message string, cause error) *CtlError {
	return &CtlError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// InvalidInput returns an error for a network or host list that failed to parse
func InvalidInput(cause error) *CtlError {
	return Wrap(ExitInvalidInput, "invalid input", cause)
}

// AllocationFailed returns an error for a run that could not place every requirement
func AllocationFailed(cause error) *CtlError {
	return Wrap(ExitAllocationFailed, "allocation failed", cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *CtlError {
	return Wrap(ExitConfigError, message, cause)
}

// PlanNotFound returns an error for a missing plan
func PlanNotFound(name string) *CtlError {
	return New(ExitPlanNotFound, fmt.Sprintf("plan not found: %s", name))
}

// TerminalRequired returns an error when interactive mode has no TTY
func TerminalRequired() *CtlError {
	return New(ExitTerminalRequired, "interactive mode requires a terminal; use 'vlsm-ctl allocate' instead")
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *CtlError {
	return New(ExitInvalidInput, message)
}

// FromVLSM maps an error from package vlsm onto an exit code. Errors that
// did not come from vlsm are returned unchanged.
func FromVLSM(err error) error {
	if err == nil {
		return nil
	}
	var vErr *vlsm.Error
	if !errors.As(err, &vErr) {
		return err
	}
	if vErr.Kind.IsInputError() {
		return InvalidInput(err)
	}
	return AllocationFailed(err)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var ctlErr *CtlError
	if errors.As(err, &ctlErr) {
		return ctlErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
