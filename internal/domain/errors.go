package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConstraintConflict = errors.New("constraint conflict")
)

// SelfMergeError is returned when an object would be merged into itself.
type SelfMergeError struct {
	Kind Kind
	ID   uuid.UUID
}

func (e *SelfMergeError) Error() string {
	return fmt.Sprintf("can't merge %s %s into itself", e.Kind, e.ID)
}

// OwnerMismatchError is returned when merging episode states of different users.
type OwnerMismatchError struct {
	State     uuid.UUID
	Other     uuid.UUID
	User      int64
	OtherUser int64
}

func (e *OwnerMismatchError) Error() string {
	return fmt.Sprintf("states don't belong to the same user: state %s (user %d), state %s (user %d)",
		e.State, e.User, e.Other, e.OtherUser)
}

// TypeMismatchError is returned when aliases differ in kind from the primary.
type TypeMismatchError struct {
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("only objects of the same kind can be merged: want %s, got %s", e.Want, e.Got)
}

// UnsupportedTypeError is returned when no hook or store is registered for a kind.
type UnsupportedTypeError struct {
	Op   string
	Kind Kind
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unknown type for %s: %s", e.Op, e.Kind)
}

// ConstraintConflictError wraps a uniqueness violation reported by the database.
type ConstraintConflictError struct {
	Constraint string
	Err        error
}

func (e *ConstraintConflictError) Error() string {
	return fmt.Sprintf("constraint %q violated: %v", e.Constraint, e.Err)
}

func (e *ConstraintConflictError) Unwrap() error { return e.Err }

func (e *ConstraintConflictError) Is(target error) bool {
	return target == ErrConstraintConflict
}
