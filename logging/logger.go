// Package logging provides the leveled, colourised diagnostic logger used by
// laptopinfo. Log output always goes to a separate writer (stderr by default)
// so it never interleaves with the report on stdout.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Log levels. A message is written when the logger's Level is greater than
// or equal to the message level.
const (
	LevelError   = 0
	LevelWarning = 1
	LevelInfo    = 2
	LevelDebug   = 3
)

// DebugEnv enables debug logging when set to any non-empty value.
const DebugEnv = "LAPTOPINFO_DEBUG"

// Logger writes leveled messages to a single writer.
type Logger struct {
	Level  int
	writer io.Writer
}

// NewLogger creates a logger writing to w with the given level. A nil writer
// means os.Stderr.
func NewLogger(w io.Writer, level int) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{Level: level, writer: w}
}

// Discard returns a logger that drops every message.
func Discard() *Logger {
	return &Logger{Level: -1, writer: io.Discard}
}

// LevelFromEnv returns LevelDebug when DebugEnv is set, otherwise fallback.
func LevelFromEnv(fallback int) int {
	if os.Getenv(DebugEnv) != "" {
		return LevelDebug
	}
	return fallback
}

func (l *Logger) helper(level int, format string, a []interface{}, msgColor *color.Color, tag string) {
	if l == nil || l.Level < level {
		return
	}
	msg := fmt.Sprintf(format, a...)
	if msgColor != nil {
		msg = msgColor.Sprint(msg)
	}
	fmt.Fprintf(l.writer, "laptopinfo %s: %s\n", strings.ToLower(tag), msg)
}

func (l *Logger) Debug(format string, a ...interface{}) {
	l.helper(LevelDebug, format, a, color.New(color.FgBlue, color.Italic), "DEBUG")
}

func (l *Logger) Info(format string, a ...interface{}) {
	l.helper(LevelInfo, format, a, color.New(color.FgBlue), "INFO")
}

func (l *Logger) Warning(format string, a ...interface{}) {
	l.helper(LevelWarning, format, a, color.New(color.FgHiYellow), "WARN")
}

func (l *Logger) Error(format string, a ...interface{}) {
	l.helper(LevelError, format, a, color.New(color.FgHiRed, color.Bold), "ERROR")
}
