package errors

import (
	"fmt"
)

// ThemeNotFoundError reports a theme name that is absent from the catalog.
// No fallback theme is substituted for a missing one.
type ThemeNotFoundError struct {
	Name string
}

// NewThemeNotFoundError constructs a ThemeNotFoundError.
func NewThemeNotFoundError(name string) error {
	return &ThemeNotFoundError{Name: name}
}

func (e *ThemeNotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("theme %q not found", e.Name)
}

// SyntaxNotFoundError reports an explicitly forced syntax name that is absent
// from the catalog. Automatic detection always falls back to plain text and
// never produces this error.
type SyntaxNotFoundError struct {
	Name string
}

// NewSyntaxNotFoundError constructs a SyntaxNotFoundError.
func NewSyntaxNotFoundError(name string) error {
	return &SyntaxNotFoundError{Name: name}
}

func (e *SyntaxNotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("syntax %q not found", e.Name)
}

// TokenizeError reports a grammar engine failure while tokenizing content.
// It is fatal for the whole highlighting run: a failed engine state would
// produce garbage for every subsequent line.
type TokenizeError struct {
	Grammar string
	Err     error
}

// NewTokenizeError constructs a TokenizeError.
func NewTokenizeError(grammar string, err error) error {
	return &TokenizeError{Grammar: grammar, Err: err}
}

func (e *TokenizeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("tokenize error: grammar %q: %v", e.Grammar, e.Err)
}

// Unwrap exposes the underlying error.
func (e *TokenizeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ReadError reports a failure to obtain file content. It belongs to the I/O
// collaborator layer but stays distinguishable from the highlighting errors.
type ReadError struct {
	Path string
	Err  error
}

// NewReadError constructs a ReadError.
func NewReadError(path string, err error) error {
	return &ReadError{Path: path, Err: err}
}

func (e *ReadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("read error: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ReadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a config file parsing failure with optional line metadata.
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

// ValidationError captures configuration validation issues.
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
