// Package logs provides the CLI's user-facing output, with an optional
// verbose channel for diagnostic messages.
package logs

import (
	"fmt"
	"io"
	"os"
)

var (
	verbose           = false
	out     io.Writer = os.Stdout
	errOut  io.Writer = os.Stderr
)

// ConfigureVerbosity configures how verbose log printing should be.
func ConfigureVerbosity(v bool) {
	verbose = v
}

// SetOutput redirects normal and error output. Used by tests.
func SetOutput(stdout, stderr io.Writer) {
	out = stdout
	errOut = stderr
}

// Print logs a message to stdout, with optional format args.
func Print(message string, fmtArgs ...interface{}) {
	write(out, message, fmtArgs)
}

// Printv logs a message to stdout, with optional format args, if verbosity is enabled.
func Printv(message string, fmtArgs ...interface{}) {
	if verbose {
		write(out, "[verbose] "+message, fmtArgs)
	}
}

// Error logs a message to stderr, with optional format args.
func Error(message string, fmtArgs ...interface{}) {
	write(errOut, message, fmtArgs)
}

func write(w io.Writer, message string, fmtArgs []interface{}) {
	s := message + "\n"
	if len(fmtArgs) > 0 {
		s = fmt.Sprintf(s, fmtArgs...)
	}
	io.WriteString(w, s)
}
