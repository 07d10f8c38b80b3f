package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Domain errors represent business-level errors that can occur in the system.
// Typed errors below match them with errors.Is.
var (
	// Job errors
	ErrInvalidJob  = errors.New("invalid cron job")
	ErrInvalidLine = errors.New("invalid cron job line")

	// Argument errors
	ErrInvalidArgument = errors.New("invalid argument")
	ErrFileNotFound    = errors.New("file does not exist")

	// Store errors
	ErrStore             = errors.New("crontab operation failed")
	ErrSnapshotNotFound  = errors.New("snapshot not found")
	ErrSnapshotsDisabled = errors.New("snapshots are not enabled")
)

// FieldViolation describes one job field failing its grammar.
type FieldViolation struct {
	Field  string
	Label  string
	Value  string
	Reason string
}

func (v *FieldViolation) Error() string {
	return v.Label + " " + v.Reason + "."
}

// ValidationError lists every field of a job violating its grammar.
type ValidationError struct {
	errs *multierror.Error
}

func newValidationError(errs *multierror.Error) *ValidationError {
	errs.ErrorFormat = func(list []error) string {
		msgs := make([]string, 0, len(list))
		for _, err := range list {
			msgs = append(msgs, err.Error())
		}
		return strings.Join(msgs, "\n")
	}
	return &ValidationError{errs: errs}
}

// Violations returns the violations in field order.
func (e *ValidationError) Violations() []*FieldViolation {
	out := make([]*FieldViolation, 0, len(e.errs.Errors))
	for _, err := range e.errs.Errors {
		var v *FieldViolation
		if errors.As(err, &v) {
			out = append(out, v)
		}
	}
	return out
}

// Fields returns the names of the violating fields, without duplicates.
func (e *ValidationError) Fields() []string {
	seen := make(map[string]bool)
	var fields []string
	for _, v := range e.Violations() {
		if !seen[v.Field] {
			seen[v.Field] = true
			fields = append(fields, v.Field)
		}
	}
	return fields
}

func (e *ValidationError) Error() string {
	return e.errs.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.errs
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidJob
}

// FormatError reports a line that cannot be split into a schedule and a command.
type FormatError struct {
	Line  string
	Parts int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cron job line %q invalid: expected at least %d space separated parts, got %d", e.Line, lineParts, e.Parts)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidLine
}

// ArgumentError reports an unusable caller-supplied value such as a missing file.
type ArgumentError struct {
	Name   string
	Value  string
	Reason error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Name, e.Value, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return e.Reason
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// StoreError reports an installer invocation exiting with a non-zero status.
// Output holds the captured combined output for diagnosis.
type StoreError struct {
	Op       string
	ExitCode int
	Output   string
}

func (e *StoreError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("%s: exit status %d", e.Op, e.ExitCode)
	}
	return fmt.Sprintf("%s: exit status %d: %s", e.Op, e.ExitCode, e.Output)
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}
