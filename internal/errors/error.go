package errors

import (
	"errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryValidation Category = "validation"
	CategoryConfig     Category = "config"
	CategorySettings   Category = "settings"
	CategoryRender     Category = "render"
	CategoryCLI        Category = "cli"
)

// AnimateError is a structured error with the offending field, suggestions
// and documentation.
type AnimateError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (validation, config, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Field is the option or configuration key involved, if any.
	Field string

	// Value is the rejected value, if any.
	Value any

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *AnimateError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s=%q", msg, e.Field, fmt.Sprint(e.Value))
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *AnimateError) Unwrap() error {
	return e.Wrapped
}

// WithField records the option key and the rejected value.
func (e *AnimateError) WithField(field string, value any) *AnimateError {
	e.Field = field
	e.Value = value
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *AnimateError) WithSuggestion(s string) *AnimateError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *AnimateError) WithDetail(d string) *AnimateError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *AnimateError) Wrap(err error) *AnimateError {
	e.Wrapped = err
	return e
}

// New creates an AnimateError from a registered error code.
func New(code string) *AnimateError {
	template, ok := registry[code]
	if !ok {
		return &AnimateError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &AnimateError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new AnimateError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *AnimateError {
	return &AnimateError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an AnimateError.
func FromError(err error, code string) *AnimateError {
	if err == nil {
		return nil
	}
	var ae *AnimateError
	if errors.As(err, &ae) {
		return ae
	}
	return New(code).Wrap(err)
}

// Is reports whether any error in err's chain matches target.
// It re-exports the standard library function so callers importing this
// package do not need a second errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// CodeOf returns the code of the first AnimateError in the chain, or "".
func CodeOf(err error) string {
	var ae *AnimateError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}
