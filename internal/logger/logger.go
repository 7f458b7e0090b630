// Package logger provides diagnostic logging for marktext.
// Debug, Info and Warn messages are written only in verbose mode, enabled
// with the --verbose flag, so that rule firings and paste decisions can be
// traced. Error messages are always written.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level tags a log line.
type Level string

// Log levels.
const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the writer for log lines. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(level Level, always bool, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose && !always {
		return
	}
	fmt.Fprintf(output, "["+string(level)+"] "+format+"\n", args...)
}

// Debug logs a trace message in verbose mode.
func Debug(format string, args ...any) {
	logf(LevelDebug, false, format, args...)
}

// Info logs an informational message in verbose mode.
func Info(format string, args ...any) {
	logf(LevelInfo, false, format, args...)
}

// Warn logs a warning in verbose mode.
func Warn(format string, args ...any) {
	logf(LevelWarn, false, format, args...)
}

// Error logs an error regardless of verbose mode.
func Error(format string, args ...any) {
	logf(LevelError, true, format, args...)
}

// Section prints a section header in verbose mode.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
