package model

import (
	"path/filepath"
	"strings"
)

// Direction selects a neighbor for Move.
type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

// PathList is an ordered, duplicate-free sequence of PathEntry. Insertion
// order is the active search order. No two entries share a Normalized value.
type PathList struct {
	entries []PathEntry
}

// Parse splits a raw variable value on the platform list separator, drops
// empty segments, and deduplicates by normalized value keeping the first
// occurrence. It never fails; malformed input yields an empty list.
func Parse(raw string) *PathList {
	l := &PathList{}
	for _, seg := range filepath.SplitList(raw) {
		ent, err := NewEntry(seg)
		if err != nil {
			continue
		}
		if l.Index(ent.Normalized) >= 0 {
			continue
		}
		l.entries = append(l.entries, ent)
	}
	return l
}

// Serialize joins the raw (display) values with the platform separator in
// current order. Parse(Serialize(Parse(s))) == Parse(s) for all s.
func (l *PathList) Serialize() string {
	raws := make([]string, len(l.entries))
	for i, e := range l.entries {
		raws[i] = e.Raw
	}
	return strings.Join(raws, string(filepath.ListSeparator))
}

// Add normalizes raw and inserts it at position at; a negative at appends.
// Fails with *InvalidPathError or *DuplicateEntryError, leaving the list
// unchanged.
func (l *PathList) Add(raw string, at int) (PathEntry, error) {
	ent, err := NewEntry(raw)
	if err != nil {
		return PathEntry{}, err
	}
	if i := l.Index(ent.Normalized); i >= 0 {
		return PathEntry{}, &DuplicateEntryError{Path: ent.Normalized, Index: i}
	}
	if at < 0 || at > len(l.entries) {
		at = len(l.entries)
	}
	l.entries = append(l.entries, PathEntry{})
	copy(l.entries[at+1:], l.entries[at:])
	l.entries[at] = ent
	return ent, nil
}

// Remove deletes and returns the entry at i.
func (l *PathList) Remove(i int) (PathEntry, error) {
	if i < 0 || i >= len(l.entries) {
		return PathEntry{}, &IndexOutOfRangeError{Index: i, Length: len(l.entries)}
	}
	ent := l.entries[i]
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return ent, nil
}

// Move swaps the entry at i with its neighbor. A move past either end
// returns ErrBoundary and changes nothing.
func (l *PathList) Move(i int, dir Direction) error {
	if i < 0 || i >= len(l.entries) {
		return &IndexOutOfRangeError{Index: i, Length: len(l.entries)}
	}
	j := i + int(dir)
	if j < 0 || j >= len(l.entries) {
		return ErrBoundary
	}
	l.entries[i], l.entries[j] = l.entries[j], l.entries[i]
	return nil
}

// Index returns the position of the entry with the given normalized value,
// or -1.
func (l *PathList) Index(normalized string) int {
	for i, e := range l.entries {
		if e.Normalized == normalized {
			return i
		}
	}
	return -1
}

func (l *PathList) Len() int {
	return len(l.entries)
}

// At returns the entry at i. The caller is expected to have bounds-checked;
// a bad index panics like any slice access would.
func (l *PathList) At(i int) PathEntry {
	return l.entries[i]
}

// Entries returns a copy of the current entries for read-only consumers.
func (l *PathList) Entries() []PathEntry {
	out := make([]PathEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Clone returns an independent snapshot of the list.
func (l *PathList) Clone() *PathList {
	return &PathList{entries: l.Entries()}
}
