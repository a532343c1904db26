// Package errs defines the error kinds shared across the store and the
// service layer. These sentinel values let callers distinguish between
// failure scenarios: a validation failure is recoverable by re-prompting,
// a conflict means the requested entity is in the wrong state, and a file
// error means a save or load must be aborted rather than applied halfway.
package errs

import (
	"errors"
	"fmt"
)

// ErrValidation marks malformed or out-of-range input.
var ErrValidation = errors.New("validation failed")

// ErrNotFound marks a reference to an entity that does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict marks an operation that cannot proceed because of the
// current state of an entity, such as reserving an occupied room.
var ErrConflict = errors.New("conflict")

// ErrFile marks an I/O failure on one of the data files.
var ErrFile = errors.New("file error")

// ValidationError reports which field failed and why.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Rule
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Rule)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Validation builds a field-level validation error.
func Validation(field, rule string) error {
	return &ValidationError{Field: field, Rule: rule}
}

// NotFoundError identifies the missing entity by type and id.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NotFound builds a not-found error for the given entity type and id.
func NotFound(entity string, id int) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError carries a human-readable reason.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// Conflict builds a conflict error.
func Conflict(format string, args ...interface{}) error {
	return &ConflictError{Reason: fmt.Sprintf(format, args...)}
}

// FileError wraps an underlying I/O or parse failure with the file path
// and the operation that failed.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

func (e *FileError) Is(target error) bool { return target == ErrFile }

// File wraps err as a FileError for the given operation and path.
func File(op, path string, err error) error {
	return &FileError{Op: op, Path: path, Err: err}
}

// Corrupted builds a FileError for a record that failed to parse.
func Corrupted(path string, line int, reason string) error {
	return &FileError{Op: "parse", Path: path, Err: fmt.Errorf("line %d: %s", line, reason)}
}
