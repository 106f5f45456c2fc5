package errors

import (
	"fmt"
)

// ParseError represents a catalog decoding failure with optional line metadata.
type ParseError struct {
	Source  string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(source string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Source: source, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Source, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Source, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures catalog validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SelectionError reports a lookup against a fixed catalog that found nothing.
// The chrome core only logs it; the CLI reports it for bad startup flags.
type SelectionError struct {
	Kind  string
	Value string
}

// NewSelectionError constructs a SelectionError for the given catalog kind.
func NewSelectionError(kind, value string) error {
	return &SelectionError{Kind: kind, Value: value}
}

func (e *SelectionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("selection error: unknown %s %q", e.Kind, e.Value)
}
