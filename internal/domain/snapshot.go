package domain

import "time"

// Snapshot is a copy of the live table taken before it was changed.
type Snapshot struct {
	ID        string
	Username  string
	Reason    string
	CreatedAt time.Time
	Lines     []string
}

// SnapshotInfo describes a stored snapshot without its lines.
type SnapshotInfo struct {
	ID        string
	Username  string
	Reason    string
	CreatedAt time.Time
	LineCount int
	Path      string
}
