// Package logging wraps the standard logger with warning and debug levels.
package logging

import (
	"fmt"
	"io"
	"log"
)

// Prefix starts every log line.
const Prefix = "todo: "

// Logger writes warnings always and debug lines only when enabled.
type Logger struct {
	l     *log.Logger
	debug bool
}

// New creates a Logger writing to w.
// Debug mode also annotates lines with the caller's file and line.
func New(w io.Writer, debug bool) *Logger {
	flags := 0
	if debug {
		flags = log.Lshortfile
	}
	return &Logger{l: log.New(w, Prefix, flags), debug: debug}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, false)
}

// Warnf logs a warning.
func (l *Logger) Warnf(format string, v ...any) {
	_ = l.l.Output(2, "warning: "+fmt.Sprintf(format, v...))
}

// Debugf logs only in debug mode.
func (l *Logger) Debugf(format string, v ...any) {
	if !l.debug {
		return
	}
	_ = l.l.Output(2, "debug: "+fmt.Sprintf(format, v...))
}
