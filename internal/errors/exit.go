package errors

import "errors"

// Exit codes returned by the themecfg binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates a document failed validation.
	ExitValidationError = 2

	// ExitParseError indicates a document could not be decoded.
	ExitParseError = 3

	// ExitPermissionDenied indicates a file could not be read or written.
	ExitPermissionDenied = 4

	// ExitNotFound indicates a document or settings file was not found.
	ExitNotFound = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set when the command already reported the error, so main
	// must not print it again.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ExitCodeName(e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrParse):
		return ExitParseError
	case errors.Is(err, ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitParseError:
		return "Parse Error"
	case ExitPermissionDenied:
		return "Permission Denied"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
