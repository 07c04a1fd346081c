package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the pagecheck CLI. These codes support programmatic
// composition and CI gates.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0
	// ExitValidationFailed indicates a document or audit failed its checks
	ExitValidationFailed = 1
	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3
)

// ExitError carries an exit code through the cobra error path.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &ExitError{Code: code}
}

// ExitCode returns the exit code from an error (0 for nil, 1 for errors that
// carry no explicit code).
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitValidationFailed
}
