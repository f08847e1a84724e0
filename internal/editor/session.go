package editor

import "pathed/internal/model"

// Session ties an immutable snapshot of the variable as read at startup to
// a live editor over it. It lives for exactly one interactive run; the raw
// value is passed in by the caller, never read from the environment here.
type Session struct {
	Original *model.PathList
	Editor   *Editor
}

// NewSession parses the raw variable value and snapshots it before handing
// a live copy to the editor.
func NewSession(raw string, opts ...Option) *Session {
	parsed := model.Parse(raw)
	return &Session{
		Original: parsed.Clone(),
		Editor:   New(parsed, opts...),
	}
}

// List is the live list the editor mutates.
func (s *Session) List() *model.PathList {
	return s.Editor.List()
}

// Dirty reports whether the list ever diverged from the snapshot.
func (s *Session) Dirty() bool {
	return s.Editor.Dirty()
}
