package editor

import (
	"errors"
	"fmt"

	"pathed/internal/logging"
	"pathed/internal/model"
)

// Mode is the editor's current interaction state.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeInsert
	ModeConfirmDelete
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "insert"
	case ModeConfirmDelete:
		return "confirm-delete"
	default:
		return "browse"
	}
}

// Editor is the state machine layered on a PathList. It owns the cursor,
// mode, pending input, and dirty flag. Invariants: the cursor is -1 exactly
// when the list is empty, otherwise within [0, Len-1]; dirty never clears.
type Editor struct {
	list *model.PathList

	cursor   int
	mode     Mode
	input    string
	insertAt InsertAt
	status   string
	dirty    bool
	quitting bool

	// confirmDelete gates BeginDelete behind a confirmation step.
	confirmDelete bool
}

// Option configures a new Editor.
type Option func(*Editor)

// WithoutDeleteConfirmation makes BeginDelete remove immediately.
func WithoutDeleteConfirmation() Option {
	return func(e *Editor) { e.confirmDelete = false }
}

// New returns a browsing editor over list.
func New(list *model.PathList, opts ...Option) *Editor {
	e := &Editor{
		list:          list,
		cursor:        -1,
		confirmDelete: true,
	}
	if list.Len() > 0 {
		e.cursor = 0
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) List() *model.PathList { return e.list }
func (e *Editor) Cursor() int { return e.cursor }
func (e *Editor) Mode() Mode { return e.mode }
func (e *Editor) Input() string { return e.input }
func (e *Editor) InsertAt() InsertAt { return e.insertAt }
func (e *Editor) Status() string { return e.status }
func (e *Editor) Dirty() bool { return e.dirty }
func (e *Editor) Quitting() bool { return e.quitting }

// Apply runs one action through the state machine. Actions that are not
// valid in the current mode are no-ops with no status change.
func (e *Editor) Apply(a Action) {
	switch e.mode {
	case ModeBrowse:
		e.applyBrowse(a)
	case ModeInsert:
		e.applyInsert(a)
	case ModeConfirmDelete:
		e.applyConfirmDelete(a)
	}
}

func (e *Editor) applyBrowse(a Action) {
	switch a := a.(type) {
	case MoveCursor:
		e.status = ""
		e.moveCursor(a.Delta)
	case BeginAdd:
		e.status = ""
		e.input = ""
		e.insertAt = a.At
		e.mode = ModeInsert
	case BeginDelete:
		e.status = ""
		if e.cursor < 0 {
			e.status = "nothing to delete"
			return
		}
		if e.confirmDelete {
			e.mode = ModeConfirmDelete
			return
		}
		e.removeAtCursor()
	case Reorder:
		e.status = ""
		if e.cursor < 0 {
			return
		}
		err := e.list.Move(e.cursor, a.Dir)
		switch {
		case err == nil:
			e.cursor += int(a.Dir)
			e.dirty = true
		case errors.Is(err, model.ErrBoundary):
			if a.Dir == model.Up {
				e.status = "already at the top"
			} else {
				e.status = "already at the bottom"
			}
		default:
			// Cursor clamping should make this unreachable.
			logger := logging.GetLogger("editor")
			logger.Error().Err(err).Int("cursor", e.cursor).Msg("move failed")
		}
	case Quit:
		e.quitting = true
	}
}

func (e *Editor) applyInsert(a Action) {
	switch a := a.(type) {
	case TypeRune:
		e.input += string(a.Rune)
	case Backspace:
		if r := []rune(e.input); len(r) > 0 {
			e.input = string(r[:len(r)-1])
		}
	case Confirm:
		at := e.list.Len()
		if e.cursor >= 0 {
			if e.insertAt == Before {
				at = e.cursor
			} else {
				at = e.cursor + 1
			}
		}
		ent, err := e.list.Add(e.input, at)
		if err != nil {
			// Recoverable: show inline and keep editing.
			e.status = err.Error()
			return
		}
		e.cursor = at
		e.input = ""
		e.mode = ModeBrowse
		e.dirty = true
		if ent.Exists {
			e.status = fmt.Sprintf("added %s", ent.Raw)
		} else {
			e.status = fmt.Sprintf("added %s (directory does not exist)", ent.Raw)
		}
	case Cancel:
		e.input = ""
		e.status = ""
		e.mode = ModeBrowse
	case Quit:
		e.quitting = true
	}
}

func (e *Editor) applyConfirmDelete(a Action) {
	switch a.(type) {
	case Confirm:
		e.removeAtCursor()
		e.mode = ModeBrowse
	case Cancel:
		e.status = ""
		e.mode = ModeBrowse
	case Quit:
		e.quitting = true
	}
}

func (e *Editor) removeAtCursor() {
	ent, err := e.list.Remove(e.cursor)
	if err != nil {
		logger := logging.GetLogger("editor")
		logger.Error().Err(err).Int("cursor", e.cursor).Msg("remove failed")
		return
	}
	e.dirty = true
	e.status = fmt.Sprintf("removed %s", ent.Raw)
	if e.cursor >= e.list.Len() {
		e.cursor = e.list.Len() - 1 // -1 when the list emptied
	}
}

func (e *Editor) moveCursor(delta int) {
	if e.list.Len() == 0 {
		e.cursor = -1
		return
	}
	e.cursor += delta
	if e.cursor < 0 {
		e.cursor = 0
	}
	if e.cursor >= e.list.Len() {
		e.cursor = e.list.Len() - 1
	}
}
