// Package errors provides error types with actionable suggestions for the
// marbles application. Errors include contextual information to help users
// resolve issues quickly.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrStorage indicates a list file or data directory failure.
	ErrStorage = errors.New("storage error")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrEditor indicates an external editor failure.
	ErrEditor = errors.New("editor error")
	// ErrList indicates a list-related error.
	ErrList = errors.New("list error")
)

// MarbleError is the base error type for marbles errors.
// It wraps an underlying error and provides additional context.
type MarbleError struct {
	// Kind is the category of error (e.g., ErrStorage, ErrConfig).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, list name).
	Details map[string]string
}

// Error implements the error interface.
func (e *MarbleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *MarbleError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether any error in err's chain matches the target.
func (e *MarbleError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with suggestions.
func (e *MarbleError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		sb.WriteString("\nDetails:\n")
		for k, v := range e.Details {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, v))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *MarbleError) WithDetails(key, value string) *MarbleError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *MarbleError) WithCause(cause error) *MarbleError {
	e.Cause = cause
	return e
}

// New creates a new MarbleError with the given kind and message.
func New(kind error, message string) *MarbleError {
	return &MarbleError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *MarbleError {
	return &MarbleError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *MarbleError {
	return &MarbleError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}
