// Package export turns an edited path list back into a shell-evaluable
// assignment. It runs exactly once, after the editor quits; printing the
// line is the only way the edit reaches the parent shell, since a child
// process cannot write its parent's environment.
package export

import (
	"pathed/internal/logging"
	"pathed/internal/model"
)

// Command returns the assignment line for the session, or "" when the list
// never changed (nothing to apply). An empty list yields an empty-string
// assignment.
func Command(sh Shell, varName string, list *model.PathList, dirty bool) string {
	if !dirty {
		return ""
	}
	line := sh.ExportCommand(varName, list.Serialize())
	logger := logging.GetLogger("export")
	logger.Debug().
		Str("shell", sh.Name()).
		Str("var", varName).
		Int("entries", list.Len()).
		Msg("generated export command")
	return line
}
