package main

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"

	"pathed/internal/editor"
	"pathed/internal/export"
	"pathed/internal/logging"
	"pathed/internal/model"
	"pathed/internal/tui"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "pathed",
		Repository: "pathed",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/pathed/pathed/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pathed [options]\n\n")
		fmt.Fprintf(os.Stderr, "pathed is an interactive editor for PATH-style search-path variables.\n")
		fmt.Fprintf(os.Stderr, "Edit the list in the terminal, then apply the result in your shell:\n\n")
		fmt.Fprintf(os.Stderr, "  eval \"$(pathed)\"\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pathed              # Start the interactive editor\n")
		fmt.Fprintf(os.Stderr, "  pathed --list       # Print current entries and exit\n")
		fmt.Fprintf(os.Stderr, "  pathed --var GOPATH # Edit a different list-style variable\n")
		fmt.Fprintf(os.Stderr, "  pathed -s fish      # Emit fish assignment syntax\n")
	}

	listFlag := pflag.BoolP("list", "l", false, "Print current entries with status and exit")
	jsonFlag := pflag.BoolP("json", "j", false, "Output current entries as JSON")
	shellFlag := pflag.StringP("shell", "s", "", "Shell syntax for the export line (bash|zsh|fish; default from $SHELL)")
	varFlag := pflag.String("var", "PATH", "Name of the list-style variable to edit")
	noConfirmFlag := pflag.Bool("no-confirm", false, "Delete entries without a confirmation step")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Write debug logs to the state directory")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for the latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("pathed version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	logging.Setup(*verboseFlag)

	// The one environment read of the session; a missing variable is an
	// empty list, not an error.
	value := os.Getenv(*varFlag)

	if *listFlag {
		runListMode(*varFlag, value)
		return
	}

	if *jsonFlag {
		runJsonMode(value)
		return
	}

	runTuiMode(*varFlag, value, *shellFlag, *noConfirmFlag)
}

func runListMode(varName, value string) {
	list := model.Parse(value)
	fmt.Printf("%s (%d entries)\n", varName, list.Len())
	for i, entry := range list.Entries() {
		icon := model.IconOK
		note := ""
		if !entry.Exists {
			icon = model.IconMissing
			note = " (missing)"
		}
		fmt.Printf("%2d. %s %s%s\n", i+1, icon, entry.Raw, note)
	}
}

func runJsonMode(value string) {
	list := model.Parse(value)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(list.Entries())
}

func runTuiMode(varName, value, shellOverride string, noConfirm bool) {
	var opts []editor.Option
	if noConfirm {
		opts = append(opts, editor.WithoutDeleteConfirmation())
	}
	sess := editor.NewSession(value, opts...)

	log := logging.GetLogger("main")
	log.Debug().Str("var", varName).Int("entries", sess.List().Len()).Msg("session started")

	// The TUI draws on stderr so stdout carries nothing but the final
	// export line; that keeps eval "$(pathed)" clean.
	m := tui.InitialModel(sess, varName)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "pathed: %v\n", err)
		os.Exit(1)
	}

	sh := shellFromFlag(shellOverride)
	if line := export.Command(sh, varName, sess.List(), sess.Dirty()); line != "" {
		fmt.Println(line)
	}
}

func shellFromFlag(override string) export.Shell {
	if override != "" {
		return export.DetectShell(override)
	}
	return export.DetectShell(os.Getenv("SHELL"))
}
