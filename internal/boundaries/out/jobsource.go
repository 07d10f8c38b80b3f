package out

import (
	"context"

	"github.com/bnema/cronkeeper/internal/domain"
)

// JobSet is a declared set of jobs with optional header lines.
type JobSet struct {
	HeadLines []string
	Jobs      []domain.Job
}

// JobSource defines the contract for loading declared jobs.
type JobSource interface {
	// Load reads and parses the job declarations.
	Load(ctx context.Context) (JobSet, error)

	// Path returns the location the jobs are read from.
	Path() string
}
