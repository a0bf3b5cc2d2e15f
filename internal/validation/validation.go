// Package validation provides input validation for caller-supplied paths.
package validation

import (
	"errors"
	"strings"
)

// MaxPathLength is the maximum allowed path length.
const MaxPathLength = 4096

// Common validation errors.
var (
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
)

// ValidateLocalPath checks a caller-supplied local source path before any
// filesystem operation touches it. Existence is not checked here; a missing
// source surfaces as an I/O error from the copy itself.
func ValidateLocalPath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	if strings.ContainsRune(path, 0) {
		return ErrInvalidCharacter
	}
	return nil
}
