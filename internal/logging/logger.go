// Package logging provides the verbose logger used to trace inference and
// code generation decisions.
package logging

import (
	"fmt"
	"io"
	"os"
)

// Logger provides verbose output for inference decisions. A nil *Logger is
// valid and discards everything.
type Logger struct {
	enabled bool
	out     io.Writer
}

// New creates a new logger instance writing to stderr.
func New(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stderr,
	}
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.Enabled() {
		fmt.Fprintf(l.out, "[reginfer] "+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if l.Enabled() {
		fmt.Fprintf(l.out, "\n[reginfer] === %s ===\n", name)
	}
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}
