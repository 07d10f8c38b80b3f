package out

import (
	"context"

	"github.com/bnema/cronkeeper/internal/domain"
)

// SnapshotStore persists copies of the live table taken before it changes.
type SnapshotStore interface {
	Save(ctx context.Context, snapshot domain.Snapshot) (domain.SnapshotInfo, error)
	Get(ctx context.Context, id string) (domain.Snapshot, error)
	List(ctx context.Context, username string) ([]domain.SnapshotInfo, error)
	Prune(ctx context.Context, username string, keep int) (int, error)
}
