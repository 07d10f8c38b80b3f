package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/bnema/cronkeeper/internal/domain"
	"github.com/bnema/cronkeeper/internal/logging"
	"github.com/bnema/cronkeeper/pkg/validation"
)

const (
	snapshotTimestampLayout = "20060102T150405Z"
	snapshotExt             = ".json"

	// currentUserDir holds snapshots taken without an explicit username.
	// "@" is not a valid username character, so it cannot collide.
	currentUserDir = "@current"
)

type snapshotRecord struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
	Lines     []string  `json:"lines"`
}

// SnapshotStorage implements out.SnapshotStore with one JSON file per
// snapshot under rootDir/<user>/.
type SnapshotStorage struct {
	fs      afero.Fs
	rootDir string
	log     zerolog.Logger
}

// NewSnapshotStorage creates a snapshot storage rooted at rootDir.
// A nil fs means the OS filesystem.
func NewSnapshotStorage(fsys afero.Fs, rootDir string, log zerolog.Logger) (*SnapshotStorage, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	rootDir = filepath.Clean(validation.ExpandHome(rootDir))

	if err := fsys.MkdirAll(rootDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	return &SnapshotStorage{fs: fsys, rootDir: rootDir, log: logging.ForAdapter(log, "snapshots")}, nil
}

// Save writes a snapshot and returns its description.
func (s *SnapshotStorage) Save(_ context.Context, snapshot domain.Snapshot) (domain.SnapshotInfo, error) {
	if err := validation.ValidateSnapshotID(snapshot.ID); err != nil {
		return domain.SnapshotInfo{}, fmt.Errorf("invalid snapshot: %w", err)
	}

	userDir, err := s.userDir(snapshot.Username)
	if err != nil {
		return domain.SnapshotInfo{}, err
	}
	if err := s.fs.MkdirAll(userDir, 0750); err != nil {
		return domain.SnapshotInfo{}, fmt.Errorf("failed to create snapshot path: %w", err)
	}

	createdAt := snapshot.CreatedAt.UTC()
	data, err := json.MarshalIndent(snapshotRecord{
		ID:        snapshot.ID,
		Username:  snapshot.Username,
		Reason:    snapshot.Reason,
		CreatedAt: createdAt,
		Lines:     snapshot.Lines,
	}, "", "  ")
	if err != nil {
		return domain.SnapshotInfo{}, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	fileName := createdAt.Format(snapshotTimestampLayout) + "_" + snapshot.ID + snapshotExt
	finalPath := filepath.Join(userDir, fileName)
	tmpPath := finalPath + ".tmp"

	if err := afero.WriteFile(s.fs, tmpPath, data, 0600); err != nil {
		_ = s.fs.Remove(tmpPath)
		return domain.SnapshotInfo{}, fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := s.fs.Rename(tmpPath, finalPath); err != nil {
		_ = s.fs.Remove(tmpPath)
		return domain.SnapshotInfo{}, fmt.Errorf("failed to finalize snapshot: %w", err)
	}

	s.log.Debug().Str(logging.FieldPath, finalPath).Msg("snapshot stored")

	return domain.SnapshotInfo{
		ID:        snapshot.ID,
		Username:  snapshot.Username,
		Reason:    snapshot.Reason,
		CreatedAt: createdAt,
		LineCount: len(snapshot.Lines),
		Path:      finalPath,
	}, nil
}

// Get loads the snapshot with the given id.
func (s *SnapshotStorage) Get(_ context.Context, id string) (domain.Snapshot, error) {
	if err := validation.ValidateSnapshotID(id); err != nil {
		return domain.Snapshot{}, fmt.Errorf("invalid snapshot id: %w", err)
	}

	suffix := "_" + id + snapshotExt
	var found string
	err := afero.Walk(s.fs, s.rootDir, func(path string, info fs.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !info.IsDir() && strings.HasSuffix(path, suffix) {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil && !errors.Is(err, filepath.SkipAll) {
		return domain.Snapshot{}, err
	}
	if found == "" {
		return domain.Snapshot{}, fmt.Errorf("%w: %s", domain.ErrSnapshotNotFound, id)
	}

	rec, err := s.read(found)
	if err != nil {
		return domain.Snapshot{}, err
	}

	return domain.Snapshot{
		ID:        rec.ID,
		Username:  rec.Username,
		Reason:    rec.Reason,
		CreatedAt: rec.CreatedAt,
		Lines:     rec.Lines,
	}, nil
}

// List returns the snapshots of username, newest first.
func (s *SnapshotStorage) List(_ context.Context, username string) ([]domain.SnapshotInfo, error) {
	userDir, err := s.userDir(username)
	if err != nil {
		return nil, err
	}

	entries, err := afero.ReadDir(s.fs, userDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.SnapshotInfo{}, nil
		}
		return nil, err
	}

	infos := make([]domain.SnapshotInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), snapshotExt) {
			continue
		}

		path := filepath.Join(userDir, entry.Name())
		rec, err := s.read(path)
		if err != nil {
			s.log.Warn().Err(err).Str(logging.FieldPath, path).Msg("skipping unreadable snapshot")
			continue
		}

		infos = append(infos, domain.SnapshotInfo{
			ID:        rec.ID,
			Username:  rec.Username,
			Reason:    rec.Reason,
			CreatedAt: rec.CreatedAt,
			LineCount: len(rec.Lines),
			Path:      path,
		})
	}

	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].CreatedAt.After(infos[j].CreatedAt)
	})

	return infos, nil
}

// Prune deletes all but the newest keep snapshots of username.
func (s *SnapshotStorage) Prune(ctx context.Context, username string, keep int) (int, error) {
	if keep < 0 {
		return 0, fmt.Errorf("keep must not be negative: %d", keep)
	}

	infos, err := s.List(ctx, username)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for idx := keep; idx < len(infos); idx++ {
		if err := validation.ValidatePathWithinRoot(s.rootDir, infos[idx].Path); err != nil {
			return deleted, err
		}
		if err := s.fs.Remove(infos[idx].Path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return deleted, err
		}
		deleted++
	}

	return deleted, nil
}

func (s *SnapshotStorage) read(path string) (snapshotRecord, error) {
	var rec snapshotRecord

	if err := validation.ValidatePathWithinRoot(s.rootDir, path); err != nil {
		return rec, err
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("failed to decode snapshot %s: %w", filepath.Base(path), err)
	}
	return rec, nil
}

func (s *SnapshotStorage) userDir(username string) (string, error) {
	if username == "" {
		return filepath.Join(s.rootDir, currentUserDir), nil
	}
	if err := validation.ValidateUsername(username); err != nil {
		return "", err
	}

	dir := filepath.Join(s.rootDir, username)
	if err := validation.ValidatePathWithinRoot(s.rootDir, dir); err != nil {
		return "", err
	}
	return dir, nil
}
