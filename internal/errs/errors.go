// Package errs defines the typed errors surfaced by the storage and
// aggregation layers. Callers branch on kind via the Is helpers and decide how
// to present each one; the core never prints.
package errs

import (
	"errors"
	"fmt"
)

// DuplicateKeyError reports a unique-constraint violation on a natural key
// (username, food name, macro name).
type DuplicateKeyError struct {
	Entity string
	Key    string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Entity, e.Key)
}

// NotFoundError reports a lookup by natural key that matched no row.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

// SchemaError reports a failed table creation.
type SchemaError struct {
	Table string
	Err   error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("create table %s: %v", e.Table, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// StoreError wraps any other storage failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func IsDuplicateKey(err error) bool {
	var target *DuplicateKeyError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsSchema(err error) bool {
	var target *SchemaError
	return errors.As(err, &target)
}

func IsStore(err error) bool {
	var target *StoreError
	return errors.As(err, &target)
}
