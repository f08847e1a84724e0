package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"pathed/internal/editor"
)

// AppModel holds the TUI state. The editing state itself lives in the
// session's editor; this model only maps keys to actions and renders.
type AppModel struct {
	Session *editor.Session
	VarName string

	keys          KeyMap
	help          help.Model
	width         int
	height        int
	cursorVisible bool
	quitting      bool
}

type cursorBlinkMsg struct{}

// InitialModel returns the TUI over an already-constructed session.
func InitialModel(sess *editor.Session, varName string) AppModel {
	return AppModel{
		Session: sess,
		VarName: varName,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

func blinkCursorCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return cursorBlinkMsg{}
	})
}

func (m AppModel) Init() tea.Cmd {
	return nil
}
