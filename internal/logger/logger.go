// Package logger provides the ankiform log output.
//
// Debug, Info and Section lines are printed only in verbose mode
// (--verbose). Print and Warn lines are always printed: they confirm each
// updated note and report skipped ones, which the user needs to see on a
// normal run.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
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

// SetOutput sets the output writer. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints request-level detail in verbose mode.
func Debug(format string, args ...any) {
	write(false, "[DEBUG] ", format, args...)
}

// Info prints progress detail in verbose mode.
func Info(format string, args ...any) {
	write(false, "[INFO] ", format, args...)
}

// Print always prints the line as is, without a level prefix. It carries
// progress the user expects on every run, such as per-note confirmations.
func Print(format string, args ...any) {
	write(true, "", format, args...)
}

// Warn always prints.
func Warn(format string, args ...any) {
	write(true, "[WARN] ", format, args...)
}

// Section prints a section header in verbose mode.
func Section(name string) {
	write(false, "", "\n=== %s ===", name)
}

// write holds the exclusive lock so concurrent lines never interleave.
func write(always bool, prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if always || verbose {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}
