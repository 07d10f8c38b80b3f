// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (the crontab installer process, the filesystem, job files, etc.).
package out

import (
	"context"

	"github.com/bnema/cronkeeper/internal/domain"
)

// ProcessRunner runs shell command lines.
//
// Run blocks until the command exits. A non-zero exit status is reported in
// the result, not as an error; the error is reserved for commands that could
// not be started or were interrupted by ctx.
type ProcessRunner interface {
	Run(ctx context.Context, commandLine string) (domain.ProcessResult, error)
}
