// Package logger provides the console logger used for clc progress and
// warnings. Warnings (unreadable files, cache failures) go to stderr so the
// report on stdout stays clean.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Log level constants for filtering
const (
	levelDebug int = 0
	levelInfo  int = 1
	levelWarn  int = 2
	levelError int = 3
)

// Console logs to a writer with timestamps and thread safety. All output is
// prefixed with [HH:MM:SS] timestamps. Color output is enabled automatically
// when writing to a terminal.
type Console struct {
	writer      io.Writer
	level       int
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsole creates a Console writing to w at the given minimum level.
// Valid levels: debug, info, warn, error (case-insensitive); anything else
// defaults to "warn". If w is nil, messages are discarded.
func NewConsole(w io.Writer, level string) *Console {
	return &Console{
		writer:      w,
		level:       parseLevel(level),
		colorOutput: isTerminal(w),
	}
}

func parseLevel(level string) int {
	switch level {
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelWarn
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if w == os.Stdout || w == os.Stderr {
		// color's built-in TTY detection, false when NO_COLOR is set
		return !color.NoColor
	}
	return false
}

// Debugf logs a debug-level message.
func (c *Console) Debugf(format string, args ...any) {
	c.logf(levelDebug, "DEBUG", format, args...)
}

// Infof logs an info-level message.
func (c *Console) Infof(format string, args ...any) {
	c.logf(levelInfo, "INFO", format, args...)
}

// Warnf logs a warning-level message.
func (c *Console) Warnf(format string, args ...any) {
	c.logf(levelWarn, "WARN", format, args...)
}

// Errorf logs an error-level message.
func (c *Console) Errorf(format string, args ...any) {
	c.logf(levelError, "ERROR", format, args...)
}

func (c *Console) logf(level int, tag, format string, args ...any) {
	if c.writer == nil || level < c.level {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	ts := time.Now().Format("15:04:05")
	if c.colorOutput {
		tag = colorTag(tag)
	}
	fmt.Fprintf(c.writer, "[%s] [%s] %s\n", ts, tag, fmt.Sprintf(format, args...))
}

func colorTag(tag string) string {
	switch tag {
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(tag)
	case "INFO":
		return color.New(color.FgBlue).Sprint(tag)
	case "WARN":
		return color.New(color.FgYellow).Sprint(tag)
	case "ERROR":
		return color.New(color.FgRed).Sprint(tag)
	}
	return tag
}
