// Package errors provides SidebarError, a structured error carrying a category and
// severity so the CLI can pick exit codes and log levels without string matching.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory classifies a SidebarError.
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Docs tree and output errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryOutput     ErrorCategory = "output"

	// Long-running mode and unexpected failures
	CategoryWatch    ErrorCategory = "watch"
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// SidebarError is a structured error with category, severity and context.
type SidebarError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for SidebarError
type ContextFields map[string]any

func (e *SidebarError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

func (e *SidebarError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *SidebarError) WithContext(key string, value any) *SidebarError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new SidebarError
func New(category ErrorCategory, severity ErrorSeverity, message string) *SidebarError {
	return &SidebarError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new SidebarError that wraps err
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *SidebarError {
	return &SidebarError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As finds the first SidebarError in err's chain.
func As(err error) (*SidebarError, bool) {
	var se *SidebarError
	if stdErrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if se, ok := As(err); ok {
		return se.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if
// the chain holds no SidebarError.
func GetCategory(err error) ErrorCategory {
	if se, ok := As(err); ok {
		return se.Category
	}
	return CategoryInternal
}
