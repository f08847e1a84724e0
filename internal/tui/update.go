package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pathed/internal/editor"
	"pathed/internal/logging"
	"pathed/internal/model"
)

// Update maps terminal events to editor actions and applies them.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ed := m.Session.Editor

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case cursorBlinkMsg:
		if ed.Mode() != editor.ModeInsert {
			return m, nil
		}
		m.cursorVisible = !m.cursorVisible
		return m, blinkCursorCmd()

	case tea.KeyMsg:
		// Ctrl+C ends the session from any mode; the export path still
		// runs because main reads the final model after the loop stops.
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}

		switch ed.Mode() {
		case editor.ModeInsert:
			return m.updateInsert(msg)
		case editor.ModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

func (m AppModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.Session.Editor
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		ed.Apply(editor.MoveCursor{Delta: -1})
	case key.Matches(msg, m.keys.Down):
		ed.Apply(editor.MoveCursor{Delta: 1})
	case key.Matches(msg, m.keys.MoveUp):
		ed.Apply(editor.Reorder{Dir: model.Up})
	case key.Matches(msg, m.keys.MoveDown):
		ed.Apply(editor.Reorder{Dir: model.Down})
	case key.Matches(msg, m.keys.InsertAfter):
		ed.Apply(editor.BeginAdd{At: editor.After})
		m.cursorVisible = true
		return m, blinkCursorCmd()
	case key.Matches(msg, m.keys.InsertBefore):
		ed.Apply(editor.BeginAdd{At: editor.Before})
		m.cursorVisible = true
		return m, blinkCursorCmd()
	case key.Matches(msg, m.keys.Delete):
		ed.Apply(editor.BeginDelete{})
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m AppModel) updateInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.Session.Editor
	switch msg.Type {
	case tea.KeyEnter:
		ed.Apply(editor.Confirm{})
	case tea.KeyEsc:
		ed.Apply(editor.Cancel{})
	case tea.KeyBackspace:
		ed.Apply(editor.Backspace{})
	case tea.KeySpace:
		ed.Apply(editor.TypeRune{Rune: ' '})
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			ed.Apply(editor.TypeRune{Rune: r})
		}
	}
	return m, nil
}

func (m AppModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.Session.Editor
	switch msg.String() {
	case "y", "Y", "enter":
		ed.Apply(editor.Confirm{})
	case "n", "N", "esc":
		ed.Apply(editor.Cancel{})
	}
	return m, nil
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.Session.Editor.Apply(editor.Quit{})
	m.quitting = true
	logger := logging.GetLogger("tui")
	logger.Debug().
		Bool("dirty", m.Session.Dirty()).
		Int("entries", m.Session.List().Len()).
		Msg("session ended")
	return m, tea.Quit
}
