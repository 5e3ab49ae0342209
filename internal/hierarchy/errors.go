package hierarchy

import (
	"errors"
	"fmt"
)

// Invalid-reference errors. They are caller mistakes; the operation that
// reports one has not mutated the hierarchy.
var (
	ErrUnknownLevel     = errors.New("unknown level")
	ErrUnknownGroup     = errors.New("unknown group")
	ErrUnknownAction    = errors.New("unknown action")
	ErrDuplicateElement = errors.New("element already in group")
	ErrDuplicateGroup   = errors.New("group name already used")
	ErrInvalidMode      = errors.New("invalid composition mode")
	ErrWrongKind        = errors.New("element kind does not match level")
	ErrEmptyName        = errors.New("group name is empty")
)

// ErrNoLevels signals a hierarchy without any level. It is recoverable:
// generation simply yields no combination.
var ErrNoLevels = errors.New("hierarchy has no level")

// ReferenceError carries the operation and the handle that failed.
type ReferenceError struct {
	Op  string
	Ref string
	Err error
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Ref, e.Err)
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}

func refErr(op, ref string, err error) error {
	return &ReferenceError{Op: op, Ref: ref, Err: err}
}

// EmptyLevelError reports a level that holds no group.
type EmptyLevelError struct {
	Level int
}

func (e *EmptyLevelError) Error() string {
	return fmt.Sprintf("level %d has no group", e.Level)
}
