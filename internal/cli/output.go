package cli

import (
	"errors"
	"fmt"

	"github.com/roach88/filebus/internal/bus"
	"github.com/roach88/filebus/internal/store"
)

// Exit codes for CLI commands. This is the contract consumers script
// against, so the values are frozen.
const (
	ExitSuccess      = 0 // success
	ExitFailure      = 1 // general error
	ExitDirNotFound  = 2 // events directory not found
	ExitNotFound     = 3 // event file not found
	ExitBadArgs      = 4 // invalid arguments
	ExitDeduplicated = 5 // publish suppressed by dedup window (not an error)
)

// ExitError carries a specific exit code out of a command.
type ExitError struct {
	Code    int
	Message string
	Err     error // underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		if e.Message == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// GetExitCode maps an error to the exit-code contract. An explicit
// ExitError wins; otherwise the bus/store sentinels decide, and anything
// unrecognised is a general error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	switch {
	case errors.Is(err, store.ErrDirNotFound):
		return ExitDirNotFound
	case errors.Is(err, store.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, bus.ErrInvalidArgument):
		return ExitBadArgs
	}
	return ExitFailure
}
