package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridfile"
)

// ExitCode is the process exit status returned by the gridpath binary.
type ExitCode int

const (
	// ExitSuccess means the command completed and, for find, a path exists.
	ExitSuccess ExitCode = 0
	// ExitGeneralError covers I/O failures and unexpected errors.
	ExitGeneralError ExitCode = 1
	// ExitInvalidInput means the scenario or flags were malformed.
	ExitInvalidInput ExitCode = 2
	// ExitNoPath means the search finished and the goal is unreachable.
	ExitNoPath ExitCode = 3
)

// CLIError carries a user-facing message, an exit code and the underlying cause.
type CLIError struct {
	Code    ExitCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// WrapCLIError builds a CLIError.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// classify maps library errors onto exit codes.
func classify(message string, err error) *CLIError {
	switch {
	case errors.Is(err, astar.ErrInvalidInput),
		errors.Is(err, gridfile.ErrInvalidGrid),
		errors.Is(err, gridfile.ErrBadCoordinate),
		errors.Is(err, gridfile.ErrBadSymbol),
		errors.Is(err, gridfile.ErrDuplicateMarker),
		errors.Is(err, gridfile.ErrUnknownFormat):
		return WrapCLIError(ExitInvalidInput, message, err)
	default:
		return WrapCLIError(ExitGeneralError, message, err)
	}
}
