package domain

import "strings"

// ProcessResult holds the outcome of one command line run to completion.
type ProcessResult struct {
	Output   []string
	ExitCode int
}

// Success reports whether the process exited with status zero.
func (r ProcessResult) Success() bool {
	return r.ExitCode == 0
}

// CombinedOutput returns the output lines joined by newlines.
func (r ProcessResult) CombinedOutput() string {
	return strings.Join(r.Output, "\n")
}
