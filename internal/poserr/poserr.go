// Package poserr provides the canonical error types for the POS core.
// All failures surfaced by services go through this package so callers
// (and an eventual transport layer) can classify them without string
// matching, and so internal details (SQL, driver errors) never leak.
package poserr

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a referenced entity does not exist.
type NotFoundError struct {
	Entity string // "staff", "menu item", "order", "transaction"
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

func NewNotFound(entity, key string) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key}
}

// ValidationError carries per-field failures for a malformed request.
// Requests failing validation are rejected before any write.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// NewFieldValidation is shorthand for a single-field validation failure.
func NewFieldValidation(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// PersistenceError wraps a failed durable write or read. Creation paths
// are all-or-nothing: when this is returned no partial write remains.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure in %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func NewPersistence(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsPersistence reports whether err is (or wraps) a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
