package service

import (
	"errors"
	"fmt"
)

// Common validation causes, usable with errors.Is through the typed wrappers
// below.
var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNoInventory       = errors.New("product not available in inventory")
	ErrEmptySale         = errors.New("no items in the sale")
	ErrSessionNotFound   = errors.New("sale session not found")
	ErrDuplicateRecord   = errors.New("record already exists")
)

// ValidationError means the input was rejected before anything was mutated.
// The operator can correct the input and retry.
type ValidationError struct {
	Msg string
	Err error
}

func (e *ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(err error, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...), Err: err}
}

// StoreError wraps a failure from the database collaborator. Any open
// transaction has been rolled back; in-memory state is untouched.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

// CommitError is a store failure raised during the sale commit transaction.
// It guarantees a full rollback: no sale header, no sale items, no inventory
// change, and the caller's line items are preserved for retry.
type CommitError struct {
	Err error
}

func (e *CommitError) Error() string { return "sale commit failed: " + e.Err.Error() }

func (e *CommitError) Unwrap() error { return e.Err }
