// Package logging builds the leveled stderr logger shared by the CLI and store.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

const prefix = "todo"

// New returns a text logger writing to w. Debug records are only emitted
// when debug is set; otherwise warnings and errors pass through.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          prefix,
	})
}

// Discard is a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, false)
}
