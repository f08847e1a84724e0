// Package logging configures the process-wide zerolog logger. Output goes
// to a state-dir log file only: stdout is reserved for the export line and
// stderr for the TUI, so neither may carry log noise.
package logging

import (
	"os"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup initializes the global logger. Without verbose the logger is
// disabled entirely; with verbose it writes debug-level JSON lines to
// $XDG_STATE_HOME/pathed/pathed.log.
func Setup(verbose bool) {
	if !verbose {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	path, err := xdg.StateFile("pathed/pathed.log")
	if err != nil {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return
	}
	w, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	log.Debug().Str("logFile", path).Msg("logger initialized")
}

// GetLogger returns a logger tagged with a component name.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
