package in

import (
	"context"

	"github.com/bnema/cronkeeper/internal/domain"
)

// CrontabService defines the use cases for reconciling one user's crontab
// with a declared set of jobs.
type CrontabService interface {
	SetJobs(jobs []domain.Job)
	Jobs() []domain.Job
	SetHeadLines(lines []string)

	CurrentLines(ctx context.Context) ([]string, error)
	DesiredLines(ctx context.Context) ([]string, error)
	Plan(ctx context.Context) ([]string, error)

	SaveToFile(ctx context.Context, path string) (int, error)
	ApplyFile(ctx context.Context, path string) error
	Apply(ctx context.Context) error
	Remove(ctx context.Context) error
	RemoveAll(ctx context.Context) error

	Snapshots(ctx context.Context) ([]domain.SnapshotInfo, error)
	Restore(ctx context.Context, id string) error
}
