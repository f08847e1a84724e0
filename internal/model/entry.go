package model

import (
	"os"
	"path/filepath"
	"strings"
)

// PathEntry represents a single directory in a search-path variable.
type PathEntry struct {
	Raw        string `json:"path"`       // The path as typed/found in the variable (e.g. ~/bin/)
	Normalized string `json:"normalized"` // Canonical form used for equality
	Exists     bool   `json:"exists"`     // True if the directory exists on disk
}

// NewEntry builds an entry from raw user or environment input. The existence
// check happens once here, never per render frame.
func NewEntry(raw string) (PathEntry, error) {
	raw = strings.TrimSpace(raw)
	norm := Normalize(raw)
	if norm == "" {
		return PathEntry{}, &InvalidPathError{Input: raw}
	}
	return PathEntry{
		Raw:        raw,
		Normalized: norm,
		Exists:     dirExists(norm),
	}, nil
}

// Normalize canonicalizes a path for equality comparison: whitespace trimmed,
// leading ~ expanded, trailing separators and redundant elements removed.
// Returns "" for degenerate input. The display form (Raw) is not touched.
func Normalize(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			p = home + strings.TrimPrefix(p, "~")
		}
	}
	return filepath.Clean(p)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
