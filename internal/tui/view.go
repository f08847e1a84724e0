package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"pathed/internal/editor"
	"pathed/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")) // Sky Blue/Cyan

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	ed := m.Session.Editor
	entries := m.Session.List().Entries()

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.VarName + " entries"))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(dimStyle.Render("  (no entries)"))
		b.WriteString("\n")
	}

	for i, entry := range entries {
		icon := model.IconOK
		if !entry.Exists {
			icon = model.IconMissing
		} else if m.Session.Original.Index(entry.Normalized) < 0 {
			icon = model.IconAdded
		}

		line := fmt.Sprintf("%2d. %s %s", i+1, icon, entry.Raw)
		if !entry.Exists {
			line += " (missing)"
		}
		if i == 0 {
			line += " (highest priority " + model.IconPriorityHigh + ")"
		} else if i == len(entries)-1 {
			line += " (lowest priority " + model.IconPriorityLow + ")"
		}
		if m.width > 4 {
			line = ansi.Truncate(line, m.width-4, "...")
		}

		style := normalStyle
		if !entry.Exists {
			style = missingStyle
		}
		if i == ed.Cursor() && ed.Mode() != editor.ModeInsert {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(style.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderPrompt())

	if s := ed.Status(); s != "" {
		b.WriteString(statusStyle.Render(s))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m AppModel) renderPrompt() string {
	ed := m.Session.Editor
	switch ed.Mode() {
	case editor.ModeInsert:
		label := "Insert after: "
		if ed.InsertAt() == editor.Before {
			label = "Insert before: "
		}
		cursor := " "
		if m.cursorVisible {
			cursor = "|"
		}
		return promptStyle.Render(label) + ed.Input() + cursor + "\n" +
			dimStyle.Render("enter: confirm • esc: cancel") + "\n"
	case editor.ModeConfirmDelete:
		entry := m.Session.List().At(ed.Cursor())
		return promptStyle.Render(fmt.Sprintf("Delete %s? (y/n)", entry.Raw)) + "\n"
	default:
		return ""
	}
}
