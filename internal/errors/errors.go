// Package errors provides sentinel errors and structured error details for
// the themecfg CLI.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a theme document failed validation or the
	// schema check.
	ErrValidation = errors.New("validation error")

	// ErrParse indicates a document could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrPermission indicates a file could not be read or written.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a document or settings file was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information for terminal output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path (optional).
	Location string

	// Field is the document field (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewPermissionError creates a permission denied error with details.
func NewPermissionError(message string, context map[string]string, hint string) error {
	return &DetailError{
		Type:    "permission denied",
		Message: message,
		Context: context,
		Hint:    hint,
		Cause:   ErrPermission,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
