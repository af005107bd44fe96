// Package logging provides the verbosity-aware progress printer shared by
// the pipeline stages. Errors always print; informational output honors the
// silent flag and detailed crawl/download notes require verbose mode.
package logging

import (
	"fmt"
	"io"
	"os"
)

// Level controls how much a Logger emits.
type Level int

const (
	// LevelSilent suppresses everything except errors.
	LevelSilent Level = iota
	// LevelNormal prints progress and warnings.
	LevelNormal
	// LevelVerbose additionally prints per-file and per-icon diagnostics.
	LevelVerbose
)

// Logger writes informational output to out and warnings/errors to errOut.
type Logger struct {
	level  Level
	out    io.Writer
	errOut io.Writer
}

// New constructs a Logger. Nil writers default to stdout/stderr.
func New(level Level, out, errOut io.Writer) *Logger {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Logger{level: level, out: out, errOut: errOut}
}

// Discard returns a logger that emits nothing, for tests.
func Discard() *Logger {
	return New(LevelSilent, io.Discard, io.Discard)
}

// Verbose reports whether detailed diagnostics are enabled.
func (l *Logger) Verbose() bool {
	return l != nil && l.level >= LevelVerbose
}

// Infof prints a progress line unless silent.
func (l *Logger) Infof(format string, args ...any) {
	if l == nil || l.level < LevelNormal {
		return
	}
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Debugf prints a diagnostic line in verbose mode only.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || l.level < LevelVerbose {
		return
	}
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Warnf prints a warning to the error stream unless silent.
func (l *Logger) Warnf(format string, args ...any) {
	if l == nil || l.level < LevelNormal {
		return
	}
	fmt.Fprintf(l.errOut, format+"\n", args...)
}

// Errorf prints an error line regardless of level.
func (l *Logger) Errorf(format string, args ...any) {
	if l == nil {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
		return
	}
	fmt.Fprintf(l.errOut, format+"\n", args...)
}
