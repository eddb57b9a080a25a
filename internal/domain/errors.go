package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports caller-supplied input that cannot be served, e.g.
// more than four compare ids. Never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports an identifier that resolves to no record where the
// operation requires full resolution.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// StoreAccessError wraps a listing-store fault. Surfaced immediately; the
// engine never retries or falls back to stale data.
type StoreAccessError struct {
	Op  string
	Err error
}

func (e *StoreAccessError) Error() string {
	return fmt.Sprintf("listing store: %s: %v", e.Op, e.Err)
}

func (e *StoreAccessError) Unwrap() error {
	return e.Err
}

func NewValidation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func NewNotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

func NewStoreAccess(op string, err error) error {
	return &StoreAccessError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}

func IsStoreAccess(err error) bool {
	var s *StoreAccessError
	return errors.As(err, &s)
}
