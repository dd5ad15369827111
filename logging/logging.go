// Package logging holds the process-wide structured logger.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// L is shared by every package. It writes to stderr until Init replaces it.
var L = New(os.Stderr, false)

// New builds a logger with the project's prefix and timestamp format.
func New(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "alice",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Init replaces the shared logger. Call it once from main before anything else logs.
func Init(w io.Writer, debug bool) {
	L = New(w, debug)
}
