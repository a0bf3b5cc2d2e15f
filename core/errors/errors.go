// Package errors provides standardized error types and helpers for the corpora codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrUnsupportedLanguage indicates a language outside the supported set
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrUnknownCorpus indicates a corpus name with no registry descriptor
	ErrUnknownCorpus = errors.New("unknown corpus")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
)

// UnsupportedLanguageError reports a request for a language the registry
// does not carry corpora for.
type UnsupportedLanguageError struct {
	Language string // Language identifier as requested (post-normalization)
	Err      error  // Underlying error, if any
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("corpora not available for the %q language", e.Language)
}

func (e *UnsupportedLanguageError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUnsupportedLanguage
}

// UnknownCorpusError reports a corpus name with no descriptor in the
// requested language's registry list.
type UnknownCorpusError struct {
	Language string // Language whose list was searched
	Corpus   string // Corpus name that was not found
	Err      error  // Underlying error, if any
}

func (e *UnknownCorpusError) Error() string {
	if e.Language != "" {
		return fmt.Sprintf("corpus %q not available for the %q language", e.Corpus, e.Language)
	}
	return fmt.Sprintf("corpus %q not available", e.Corpus)
}

func (e *UnknownCorpusError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUnknownCorpus
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string // Field name that failed validation
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// ImportError represents a corpus import failure with context
type ImportError struct {
	Corpus    string // Corpus being imported
	Operation string // Operation being performed (e.g., "clone", "pull", "copy")
	Err       error  // Underlying error
}

func (e *ImportError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("import of %q failed during %s: %v", e.Corpus, e.Operation, e.Err)
	}
	return fmt.Sprintf("import of %q failed: %v", e.Corpus, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "copy")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Helper functions for creating common errors

// NewUnsupportedLanguage creates an UnsupportedLanguageError
func NewUnsupportedLanguage(language string) *UnsupportedLanguageError {
	return &UnsupportedLanguageError{Language: language}
}

// NewUnknownCorpus creates an UnknownCorpusError
func NewUnknownCorpus(language, corpus string) *UnknownCorpusError {
	return &UnknownCorpusError{Language: language, Corpus: corpus}
}

// NewValidation creates a ValidationError
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NewImport creates an ImportError
func NewImport(corpus, operation string, err error) *ImportError {
	return &ImportError{Corpus: corpus, Operation: operation, Err: err}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
