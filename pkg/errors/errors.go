package errors

import (
	"fmt"
)

// ParseError represents a catalog or settings parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures catalog validation issues.
// It is never used for field validation outcomes, which are plain data.
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

// ConfigError reports a theme that cannot serve a renderer, such as a
// palette missing a semantic role.
type ConfigError struct {
	Theme   string
	Key     string
	Message string
}

// NewConfigError constructs a ConfigError.
func NewConfigError(theme, key, message string) error {
	return &ConfigError{Theme: theme, Key: key, Message: message}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Theme != "" && e.Key != "":
		return fmt.Sprintf("theme configuration error [%s] %s: %s", e.Theme, e.Key, e.Message)
	case e.Key != "":
		return fmt.Sprintf("theme configuration error: %s: %s", e.Key, e.Message)
	default:
		return fmt.Sprintf("theme configuration error: %s", e.Message)
	}
}
