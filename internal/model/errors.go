package model

import (
	"errors"
	"fmt"
)

// ErrBoundary signals a move that would push an entry past the ends of the
// list. It is informational, not a fault: callers report it and carry on.
var ErrBoundary = errors.New("already at the edge of the list")

// DuplicateEntryError is returned when an add would violate the
// no-duplicates invariant. The list is left unchanged.
type DuplicateEntryError struct {
	Path  string // normalized form of the rejected path
	Index int    // position of the existing entry
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("%s is already on the list (entry %d)", e.Path, e.Index+1)
}

// InvalidPathError is returned when input normalizes to nothing.
type InvalidPathError struct {
	Input string
}

func (e *InvalidPathError) Error() string {
	if e.Input == "" {
		return "empty path"
	}
	return fmt.Sprintf("%q is not a usable path", e.Input)
}

// IndexOutOfRangeError indicates a caller bug: cursors are clamped before
// they reach the list, so this should never surface in correct operation.
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for %d entries", e.Index, e.Length)
}
