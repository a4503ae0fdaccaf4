// Package logger provides verbose logging for the sqlfan CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users understand what the generator
// is doing.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type state struct {
	mu      sync.RWMutex
	verbose bool
	out     io.Writer
}

var std = &state{out: os.Stderr}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	std.mu.RLock()
	defer std.mu.RUnlock()
	return std.verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.out = w
}

// Debug prints a debug message if verbose mode is enabled.
func Debug(format string, args ...any) {
	std.emit("DEBUG", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	std.emit("INFO", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	std.emit("WARN", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	std.mu.RLock()
	defer std.mu.RUnlock()
	if !std.verbose {
		return
	}
	fmt.Fprintf(std.out, "\n=== %s ===\n", name)
}

func (s *state) emit(level, format string, args ...any) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.verbose {
		return
	}
	fmt.Fprintf(s.out, "["+level+"] "+format+"\n", args...)
}
