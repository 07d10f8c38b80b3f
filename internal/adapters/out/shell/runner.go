// Package shell runs installer command lines through a POSIX shell.
package shell

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/cronkeeper/internal/domain"
	"github.com/bnema/cronkeeper/internal/logging"
)

// DefaultShell interprets command lines.
const DefaultShell = "/bin/sh"

// Runner implements out.ProcessRunner with "<shell> -c <command line>".
type Runner struct {
	shell   string
	timeout time.Duration
	log     zerolog.Logger
}

// NewRunner creates a shell runner. A zero timeout adds no deadline beyond
// the caller's context.
func NewRunner(shell string, timeout time.Duration, log zerolog.Logger) *Runner {
	if shell == "" {
		shell = DefaultShell
	}
	return &Runner{
		shell:   shell,
		timeout: timeout,
		log:     logging.ForAdapter(log, "shell"),
	}
}

// Run executes commandLine and waits for it to exit. Stdout and stderr are
// captured together, one entry per line.
func (r *Runner) Run(ctx context.Context, commandLine string) (domain.ProcessResult, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	started := time.Now()
	cmd := exec.CommandContext(ctx, r.shell, "-c", commandLine)
	output, err := cmd.CombinedOutput()

	result := domain.ProcessResult{Output: splitOutput(output)}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, fmt.Errorf("command interrupted: %w", ctxErr)
		}

		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return result, fmt.Errorf("failed to execute command: %w", err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	r.log.Debug().
		Str(logging.FieldCommand, commandLine).
		Int(logging.FieldExitCode, result.ExitCode).
		Dur("duration", time.Since(started)).
		Msg("command finished")

	return result, nil
}

func splitOutput(output []byte) []string {
	text := strings.TrimRight(string(output), "\r\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
