package editor

import "pathed/internal/model"

// InsertAt selects where a new entry lands relative to the cursor.
type InsertAt int

const (
	After InsertAt = iota
	Before
)

// Action is an abstract editing event, independent of key bindings. The
// input mapper (TUI) produces these; Editor.Apply consumes them.
type Action interface {
	isAction()
}

// MoveCursor shifts the cursor by Delta rows, clamped to the list bounds.
type MoveCursor struct {
	Delta int
}

// BeginAdd enters insert mode with an empty input buffer.
type BeginAdd struct {
	At InsertAt
}

// BeginDelete asks to remove the entry under the cursor, going through a
// confirmation step unless confirmation is disabled.
type BeginDelete struct{}

// Reorder swaps the entry under the cursor with its neighbor.
type Reorder struct {
	Dir model.Direction
}

// TypeRune appends a rune to the input buffer.
type TypeRune struct {
	Rune rune
}

// Backspace removes the last rune from the input buffer.
type Backspace struct{}

// Confirm commits the pending insert or delete.
type Confirm struct{}

// Cancel abandons the pending insert or delete.
type Cancel struct{}

// Quit ends the session; the event loop stops and the exporter runs.
type Quit struct{}

func (MoveCursor) isAction()  {}
func (BeginAdd) isAction()    {}
func (BeginDelete) isAction() {}
func (Reorder) isAction()     {}
func (TypeRune) isAction()    {}
func (Backspace) isAction()   {}
func (Confirm) isAction()     {}
func (Cancel) isAction()      {}
func (Quit) isAction()        {}
