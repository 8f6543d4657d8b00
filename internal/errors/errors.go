package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory classifies an ExemplarError.
type ErrorCategory string

const (
	// Bad input: both collapse into the same exit code.
	CategoryUsage    ErrorCategory = "usage"
	CategoryManifest ErrorCategory = "manifest"

	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryInternal   ErrorCategory = "internal"
)

// ExemplarError is a structured error with a category and optional context.
type ExemplarError struct {
	Category ErrorCategory `json:"category"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for ExemplarError.
type ContextFields map[string]any

// Error implements the error interface.
func (e *ExemplarError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap returns the wrapped cause.
func (e *ExemplarError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error.
func (e *ExemplarError) WithContext(key string, value any) *ExemplarError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new ExemplarError.
func New(category ErrorCategory, message string) *ExemplarError {
	return &ExemplarError{Category: category, Message: message}
}

// Wrap creates a new ExemplarError that wraps an existing error.
func Wrap(err error, category ErrorCategory, message string) *ExemplarError {
	return &ExemplarError{Category: category, Message: message, Cause: err}
}

// Usage creates a usage error. cause may be nil.
func Usage(usageLine string, cause error) *ExemplarError {
	return &ExemplarError{Category: CategoryUsage, Message: "Usage: " + usageLine, Cause: cause}
}

// Manifest wraps a manifest read or parse failure.
func Manifest(err error) *ExemplarError {
	return Wrap(err, CategoryManifest, "Failed to read or parse manifest")
}

// FileSystem wraps a failure while materializing output.
func FileSystem(err error, message string) *ExemplarError {
	return Wrap(err, CategoryFileSystem, message)
}

// As returns the first ExemplarError in err's chain.
func As(err error) (*ExemplarError, bool) {
	var ee *ExemplarError
	if stderrors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category.
func IsCategory(err error, category ErrorCategory) bool {
	if ee, ok := As(err); ok {
		return ee.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal
// if err is not an ExemplarError.
func GetCategory(err error) ErrorCategory {
	if ee, ok := As(err); ok {
		return ee.Category
	}
	return CategoryInternal
}
