package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathed/internal/model"
)

func typeString(e *Editor, s string) {
	for _, r := range s {
		e.Apply(TypeRune{Rune: r})
	}
}

func normalized(l *model.PathList) []string {
	out := make([]string, 0, l.Len())
	for _, e := range l.Entries() {
		out = append(out, e.Normalized)
	}
	return out
}

func TestNewEditorCursor(t *testing.T) {
	e := New(model.Parse("/usr/bin:/bin"))
	assert.Equal(t, 0, e.Cursor())
	assert.Equal(t, ModeBrowse, e.Mode())

	empty := New(model.Parse(""))
	assert.Equal(t, -1, empty.Cursor())
}

func TestMoveCursorClamps(t *testing.T) {
	e := New(model.Parse("/a:/b:/c"))

	e.Apply(MoveCursor{Delta: -1})
	assert.Equal(t, 0, e.Cursor())

	e.Apply(MoveCursor{Delta: 1})
	e.Apply(MoveCursor{Delta: 1})
	e.Apply(MoveCursor{Delta: 1})
	assert.Equal(t, 2, e.Cursor())
}

func TestMoveCursorOnEmptyList(t *testing.T) {
	e := New(model.Parse(""))
	e.Apply(MoveCursor{Delta: 1})
	assert.Equal(t, -1, e.Cursor())
}

func TestAddFlow(t *testing.T) {
	// The full session scenario: dedup on parse, add via insert mode,
	// dirty set, entry landed at the end.
	e := New(model.Parse("/usr/bin:/usr/local/bin:/usr/bin"))
	require.Equal(t, []string{"/usr/bin", "/usr/local/bin"}, normalized(e.List()))
	assert.False(t, e.Dirty())

	e.Apply(MoveCursor{Delta: 1}) // last entry
	e.Apply(BeginAdd{At: After})
	assert.Equal(t, ModeInsert, e.Mode())
	assert.Equal(t, "", e.Input())

	typeString(e, "/opt/tool/bin")
	assert.Equal(t, "/opt/tool/bin", e.Input())

	e.Apply(Confirm{})
	assert.Equal(t, ModeBrowse, e.Mode())
	assert.Equal(t, []string{"/usr/bin", "/usr/local/bin", "/opt/tool/bin"}, normalized(e.List()))
	assert.Equal(t, 2, e.Cursor())
	assert.True(t, e.Dirty())
	assert.Empty(t, e.Input())
}

func TestAddBeforeCursor(t *testing.T) {
	e := New(model.Parse("/a:/b"))
	e.Apply(MoveCursor{Delta: 1})
	e.Apply(BeginAdd{At: Before})
	typeString(e, "/new")
	e.Apply(Confirm{})

	assert.Equal(t, []string{"/a", "/new", "/b"}, normalized(e.List()))
	assert.Equal(t, 1, e.Cursor())
}

func TestAddOnEmptyList(t *testing.T) {
	e := New(model.Parse(""))
	e.Apply(BeginAdd{At: After})
	typeString(e, "/first")
	e.Apply(Confirm{})

	assert.Equal(t, []string{"/first"}, normalized(e.List()))
	assert.Equal(t, 0, e.Cursor())
}

func TestBackspace(t *testing.T) {
	e := New(model.Parse(""))
	e.Apply(BeginAdd{At: After})
	typeString(e, "/ab")
	e.Apply(Backspace{})
	assert.Equal(t, "/a", e.Input())

	e.Apply(Backspace{})
	e.Apply(Backspace{})
	e.Apply(Backspace{}) // already empty, no-op
	assert.Equal(t, "", e.Input())
}

func TestAddDuplicateStaysInserting(t *testing.T) {
	e := New(model.Parse("/usr/bin:/bin"))
	before := e.List().Serialize()

	e.Apply(BeginAdd{At: After})
	typeString(e, "/usr/bin/")
	e.Apply(Confirm{})

	assert.Equal(t, ModeInsert, e.Mode())
	assert.NotEmpty(t, e.Status())
	assert.Equal(t, before, e.List().Serialize())
	assert.False(t, e.Dirty())
}

func TestAddInvalidStaysInserting(t *testing.T) {
	e := New(model.Parse("/usr/bin"))
	e.Apply(BeginAdd{At: After})
	e.Apply(Confirm{}) // empty buffer

	assert.Equal(t, ModeInsert, e.Mode())
	assert.NotEmpty(t, e.Status())
	assert.False(t, e.Dirty())
}

func TestCancelInsertDiscardsBuffer(t *testing.T) {
	e := New(model.Parse("/usr/bin"))
	e.Apply(BeginAdd{At: After})
	typeString(e, "/whatever")
	e.Apply(Cancel{})

	assert.Equal(t, ModeBrowse, e.Mode())
	assert.Empty(t, e.Input())
	assert.Equal(t, 1, e.List().Len())
	assert.False(t, e.Dirty())
}

func TestDeleteWithConfirmation(t *testing.T) {
	e := New(model.Parse("/a:/b:/c"))
	e.Apply(MoveCursor{Delta: 2})

	e.Apply(BeginDelete{})
	assert.Equal(t, ModeConfirmDelete, e.Mode())
	assert.Equal(t, 3, e.List().Len())

	e.Apply(Confirm{})
	assert.Equal(t, ModeBrowse, e.Mode())
	assert.Equal(t, []string{"/a", "/b"}, normalized(e.List()))
	// Cursor clamped after removing the last entry.
	assert.Equal(t, 1, e.Cursor())
	assert.True(t, e.Dirty())
}

func TestDeleteCancel(t *testing.T) {
	e := New(model.Parse("/a:/b"))
	e.Apply(BeginDelete{})
	e.Apply(Cancel{})

	assert.Equal(t, ModeBrowse, e.Mode())
	assert.Equal(t, 2, e.List().Len())
	assert.False(t, e.Dirty())
}

func TestDeleteWithoutConfirmation(t *testing.T) {
	e := New(model.Parse("/a:/b"), WithoutDeleteConfirmation())
	e.Apply(BeginDelete{})

	assert.Equal(t, ModeBrowse, e.Mode())
	assert.Equal(t, []string{"/b"}, normalized(e.List()))
	assert.True(t, e.Dirty())
}

func TestDeleteLastEntryEmptiesCursor(t *testing.T) {
	e := New(model.Parse("/only"), WithoutDeleteConfirmation())
	e.Apply(BeginDelete{})

	assert.Equal(t, 0, e.List().Len())
	assert.Equal(t, -1, e.Cursor())

	// Further deletes on the empty list report, not crash.
	e.Apply(BeginDelete{})
	assert.Equal(t, "nothing to delete", e.Status())
}

func TestReorder(t *testing.T) {
	e := New(model.Parse("/a:/b:/c"))
	e.Apply(MoveCursor{Delta: 1})

	e.Apply(Reorder{Dir: model.Up})
	assert.Equal(t, []string{"/b", "/a", "/c"}, normalized(e.List()))
	// Cursor follows the moved entry.
	assert.Equal(t, 0, e.Cursor())
	assert.True(t, e.Dirty())
}

func TestReorderAtBoundaryReportsStatus(t *testing.T) {
	e := New(model.Parse("/a:/b"))

	e.Apply(Reorder{Dir: model.Up})
	assert.Equal(t, "already at the top", e.Status())
	assert.Equal(t, []string{"/a", "/b"}, normalized(e.List()))
	assert.False(t, e.Dirty())

	e.Apply(MoveCursor{Delta: 1})
	e.Apply(Reorder{Dir: model.Down})
	assert.Equal(t, "already at the bottom", e.Status())
	assert.False(t, e.Dirty())
}

func TestInvalidActionsAreNoOps(t *testing.T) {
	e := New(model.Parse("/a:/b"))

	// Insert-only actions in browse mode.
	e.Apply(TypeRune{Rune: 'x'})
	e.Apply(Backspace{})
	e.Apply(Confirm{})
	e.Apply(Cancel{})
	assert.Equal(t, ModeBrowse, e.Mode())
	assert.Empty(t, e.Input())
	assert.Empty(t, e.Status())

	// Browse-only actions in insert mode.
	e.Apply(BeginAdd{At: After})
	e.Apply(MoveCursor{Delta: 1})
	e.Apply(Reorder{Dir: model.Down})
	e.Apply(BeginDelete{})
	assert.Equal(t, ModeInsert, e.Mode())
	assert.Equal(t, 0, e.Cursor())
	assert.Equal(t, 2, e.List().Len())
}

func TestDirtyIsMonotonic(t *testing.T) {
	e := New(model.Parse("/a:/b"), WithoutDeleteConfirmation())

	e.Apply(BeginAdd{At: After})
	typeString(e, "/new")
	e.Apply(Confirm{})
	require.True(t, e.Dirty())

	// Removing what was just added restores the set but not the flag.
	e.Apply(BeginDelete{})
	assert.Equal(t, []string{"/a", "/b"}, normalized(e.List()))
	assert.True(t, e.Dirty())
}

func TestCursorAlwaysValid(t *testing.T) {
	e := New(model.Parse("/a:/b:/c"), WithoutDeleteConfirmation())
	actions := []Action{
		MoveCursor{Delta: 5},
		Reorder{Dir: model.Down},
		BeginDelete{},
		BeginDelete{},
		MoveCursor{Delta: -9},
		BeginAdd{At: Before},
		TypeRune{Rune: '/'},
		TypeRune{Rune: 'x'},
		Confirm{},
		BeginDelete{},
		BeginDelete{},
		BeginDelete{},
		MoveCursor{Delta: 1},
	}
	for i, a := range actions {
		e.Apply(a)
		if e.List().Len() == 0 {
			assert.Equal(t, -1, e.Cursor(), "after action %d", i)
		} else {
			assert.GreaterOrEqual(t, e.Cursor(), 0, "after action %d", i)
			assert.Less(t, e.Cursor(), e.List().Len(), "after action %d", i)
		}
	}
}

func TestQuitFromAnyMode(t *testing.T) {
	e := New(model.Parse("/a"))
	e.Apply(BeginAdd{At: After})
	e.Apply(Quit{})
	assert.True(t, e.Quitting())
}

func TestSessionSnapshotIsImmutable(t *testing.T) {
	s := NewSession("/a:/b")
	s.Editor.Apply(MoveCursor{Delta: 1})
	s.Editor.Apply(BeginDelete{})
	s.Editor.Apply(Confirm{})

	assert.Equal(t, 2, s.Original.Len())
	assert.Equal(t, 1, s.List().Len())
	assert.True(t, s.Dirty())
}

func TestSessionUnsetVariable(t *testing.T) {
	s := NewSession("")
	assert.Equal(t, 0, s.List().Len())
	assert.Equal(t, -1, s.Editor.Cursor())
	assert.False(t, s.Dirty())
}
