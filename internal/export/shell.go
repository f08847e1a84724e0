package export

import (
	"fmt"
	"strings"
)

// Shell defines the assignment syntax for a target shell.
type Shell interface {
	// ExportCommand returns a single line the shell can evaluate to set
	// varName to value for the current session and its children.
	ExportCommand(varName, value string) string
	Name() string
}

// BashShell implements Shell for Bash.
type BashShell struct{}

func (s *BashShell) ExportCommand(varName, value string) string {
	return fmt.Sprintf("export %s=%q", varName, value)
}

func (s *BashShell) Name() string {
	return "bash"
}

// ZshShell implements Shell for Zsh. Same export syntax as Bash.
type ZshShell struct{}

func (s *ZshShell) ExportCommand(varName, value string) string {
	return fmt.Sprintf("export %s=%q", varName, value)
}

func (s *ZshShell) Name() string {
	return "zsh"
}

// FishShell implements Shell for Fish. Fish splits colon-joined PATH-style
// values on import, so the single-string form evaluates correctly.
type FishShell struct{}

func (s *FishShell) ExportCommand(varName, value string) string {
	return fmt.Sprintf("set -x %s %q", varName, value)
}

func (s *FishShell) Name() string {
	return "fish"
}

// DetectShell identifies the user's shell from a $SHELL-style path, or by
// explicit name. Defaults to Bash syntax, which Zsh also accepts.
func DetectShell(shellPath string) Shell {
	switch {
	case strings.Contains(shellPath, "fish"):
		return &FishShell{}
	case strings.Contains(shellPath, "zsh"):
		return &ZshShell{}
	default:
		return &BashShell{}
	}
}
