// Package crontab implements the use cases that reconcile one user's live
// crontab with a declared set of jobs.
package crontab

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/cronkeeper/internal/boundaries/in"
	"github.com/bnema/cronkeeper/internal/boundaries/out"
	"github.com/bnema/cronkeeper/internal/domain"
	"github.com/bnema/cronkeeper/internal/logging"
	"github.com/bnema/cronkeeper/internal/usecase/reconcile"
	"github.com/bnema/cronkeeper/pkg/validation"
)

// Defaults applied by DefaultConfig.
const (
	DefaultBinPath       = "crontab"
	DefaultTempPrefix    = "cronkeeper"
	DefaultNoTablePhrase = "no crontab"
)

// Snapshot reasons.
const (
	ReasonApply     = "apply"
	ReasonRemove    = "remove"
	ReasonRemoveAll = "remove-all"
	ReasonRestore   = "restore"
)

// Config holds the settings of one crontab identity (binary path and user).
type Config struct {
	BinPath   string
	Username  string
	HeadLines []string
	Commands  CommandTemplates

	// TempDir empty means the system temp directory.
	TempDir    string
	TempPrefix string

	// KeepTempOnFailure leaves the candidate table file in place when the
	// installer rejects it.
	KeepTempOnFailure bool

	// StrictRemoveAll reports a failing remove-all as a StoreError.
	StrictRemoveAll bool

	// NoTablePhrase marks installer output meaning the user has no table.
	NoTablePhrase string

	// MergeFilter drops current lines before desired lines are merged in.
	MergeFilter domain.MergeFilter

	// SnapshotKeep is the number of snapshots retained per user. Zero keeps all.
	SnapshotKeep int
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		BinPath:           DefaultBinPath,
		Commands:          DefaultCommandTemplates(),
		TempPrefix:        DefaultTempPrefix,
		KeepTempOnFailure: true,
		NoTablePhrase:     DefaultNoTablePhrase,
		SnapshotKeep:      10,
	}
}

var _ in.CrontabService = (*Service)(nil)

// Service reconciles the live crontab of one user with the configured jobs.
// It does not serialize concurrent Apply or Remove calls for the same user;
// callers running several of them at once must do so themselves.
type Service struct {
	runner    out.ProcessRunner
	fs        out.FileSystem
	snapshots out.SnapshotStore
	config    Config
	log       zerolog.Logger

	mu        sync.RWMutex
	jobs      []domain.Job
	headLines []string

	newID func() string
	now   func() time.Time
}

// NewService creates a crontab service. snapshots may be nil to disable
// snapshots.
func NewService(
	runner out.ProcessRunner,
	fs out.FileSystem,
	snapshots out.SnapshotStore,
	config Config,
	log zerolog.Logger,
) *Service {
	if config.BinPath == "" {
		config.BinPath = DefaultBinPath
	}
	if config.TempPrefix == "" {
		config.TempPrefix = DefaultTempPrefix
	}
	if config.NoTablePhrase == "" {
		config.NoTablePhrase = DefaultNoTablePhrase
	}
	config.Commands = config.Commands.withDefaults()

	return &Service{
		runner:    runner,
		fs:        fs,
		snapshots: snapshots,
		config:    config,
		log:       log,
		headLines: slices.Clone(config.HeadLines),
		newID:     uuid.NewString,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// SetJobs replaces the declared jobs.
func (s *Service) SetJobs(jobs []domain.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = slices.Clone(jobs)
}

// Jobs returns a copy of the declared jobs.
func (s *Service) Jobs() []domain.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.jobs)
}

// SetHeadLines replaces the header lines written before the job lines.
func (s *Service) SetHeadLines(lines []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.headLines = slices.Clone(lines)
}

// CurrentLines returns the lines of the live table. A user without a table
// has no lines.
func (s *Service) CurrentLines(ctx context.Context) ([]string, error) {
	return s.currentLines(ctx, s.useCaseLogger(ctx, "CurrentLines"))
}

func (s *Service) currentLines(ctx context.Context, log zerolog.Logger) ([]string, error) {
	cmd, err := s.command(s.config.Commands.List, "")
	if err != nil {
		return nil, err
	}

	log.Debug().Str(logging.FieldCommand, cmd).Msg("listing crontab")

	res, err := s.runner.Run(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to list crontab: %w", err)
	}

	if !res.Success() {
		if s.isNoTable(res) {
			log.Debug().Int(logging.FieldExitCode, res.ExitCode).Msg("no crontab installed")
			return []string{}, nil
		}
		return nil, &domain.StoreError{Op: "list crontab", ExitCode: res.ExitCode, Output: res.CombinedOutput()}
	}

	return domain.SplitTableLines(res.Output), nil
}

// DesiredLines returns the header block followed by one line per declared job.
func (s *Service) DesiredLines(_ context.Context) ([]string, error) {
	s.mu.RLock()
	jobs := slices.Clone(s.jobs)
	headLines := slices.Clone(s.headLines)
	s.mu.RUnlock()

	lines := domain.HeaderBlock(headLines)
	for i, job := range jobs {
		line, err := domain.ComposeLine(job)
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i+1, err)
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// Plan returns the table Apply would install, without installing it.
func (s *Service) Plan(ctx context.Context) ([]string, error) {
	log := s.useCaseLogger(ctx, "Plan")

	desired, err := s.DesiredLines(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.currentLines(ctx, log)
	if err != nil {
		return nil, err
	}

	return reconcile.Merge(current, desired, s.config.MergeFilter), nil
}

// SaveToFile writes the desired table to path and returns the byte count.
// A leading "~/" in path is resolved against the home directory.
func (s *Service) SaveToFile(ctx context.Context, path string) (int, error) {
	log := s.useCaseLogger(ctx, "SaveToFile")
	path = validation.ExpandHome(path)

	lines, err := s.DesiredLines(ctx)
	if err != nil {
		return 0, err
	}

	n, err := s.fs.WriteFile(path, []byte(domain.TableContent(lines)))
	if err != nil {
		return n, fmt.Errorf("failed to write crontab file: %w", err)
	}

	log.Debug().Str(logging.FieldPath, path).Int(logging.FieldCount, len(lines)).Msg("crontab file written")
	return n, nil
}

// ApplyFile installs the table file at path as the user's crontab.
// A leading "~/" in path is resolved against the home directory.
func (s *Service) ApplyFile(ctx context.Context, path string) error {
	return s.applyFile(ctx, validation.ExpandHome(path), s.useCaseLogger(ctx, "ApplyFile"))
}

// applyFile installs path as given. The same path is checked for existence
// and handed to the installer.
func (s *Service) applyFile(ctx context.Context, path string, log zerolog.Logger) error {
	exists, err := s.fs.FileExists(path)
	if err != nil {
		return fmt.Errorf("failed to check crontab file: %w", err)
	}
	if !exists {
		return &domain.ArgumentError{Name: "file", Value: path, Reason: domain.ErrFileNotFound}
	}

	cmd, err := s.command(s.config.Commands.Install, path)
	if err != nil {
		return err
	}

	log.Debug().Str(logging.FieldCommand, cmd).Msg("installing crontab")

	res, err := s.runner.Run(ctx, cmd)
	if err != nil {
		return fmt.Errorf("failed to install crontab: %w", err)
	}
	if !res.Success() {
		return &domain.StoreError{Op: "install crontab", ExitCode: res.ExitCode, Output: res.CombinedOutput()}
	}

	return nil
}

// Apply adds the declared jobs to the live table. Lines already installed
// are kept; lines dropped by the configured merge filter are removed.
func (s *Service) Apply(ctx context.Context) error {
	log := s.operationLogger(ctx, "Apply")

	desired, err := s.DesiredLines(ctx)
	if err != nil {
		return err
	}

	current, err := s.currentLines(ctx, log)
	if err != nil {
		return err
	}

	// current never holds blank lines, so the header separator is re-appended
	// at the end on every apply after the first. The line set is unchanged.
	merged := reconcile.Merge(current, desired, s.config.MergeFilter)

	if err := s.snapshot(ctx, ReasonApply, current, merged, log); err != nil {
		return err
	}

	if len(merged) == 0 {
		return s.removeAll(ctx, log)
	}

	if err := s.applyLines(ctx, merged, log); err != nil {
		return err
	}

	log.Info().Int(logging.FieldCount, len(merged)).Msg("crontab applied")
	return nil
}

// Remove deletes the lines matching the declared jobs and leaves every other
// line untouched. The table is removed when nothing else remains.
func (s *Service) Remove(ctx context.Context) error {
	log := s.operationLogger(ctx, "Remove")

	desired, err := s.DesiredLines(ctx)
	if err != nil {
		return err
	}

	current, err := s.currentLines(ctx, log)
	if err != nil {
		return err
	}

	remaining := reconcile.Subtract(current, desired)

	if err := s.snapshot(ctx, ReasonRemove, current, remaining, log); err != nil {
		return err
	}

	if len(remaining) == 0 {
		return s.removeAll(ctx, log)
	}

	if err := s.applyLines(ctx, remaining, log); err != nil {
		return err
	}

	log.Info().Int(logging.FieldCount, len(current)-len(remaining)).Msg("crontab lines removed")
	return nil
}

// RemoveAll removes the user's crontab.
func (s *Service) RemoveAll(ctx context.Context) error {
	log := s.operationLogger(ctx, "RemoveAll")

	if s.snapshots != nil {
		current, err := s.currentLines(ctx, log)
		if err != nil {
			return err
		}
		if err := s.snapshot(ctx, ReasonRemoveAll, current, nil, log); err != nil {
			return err
		}
	}

	return s.removeAll(ctx, log)
}

func (s *Service) removeAll(ctx context.Context, log zerolog.Logger) error {
	cmd, err := s.command(s.config.Commands.RemoveAll, "")
	if err != nil {
		return err
	}

	log.Debug().Str(logging.FieldCommand, cmd).Msg("removing crontab")

	res, err := s.runner.Run(ctx, cmd)
	if err != nil {
		return fmt.Errorf("failed to remove crontab: %w", err)
	}

	if !res.Success() {
		if s.isNoTable(res) {
			log.Debug().Msg("no crontab to remove")
			return nil
		}
		if s.config.StrictRemoveAll {
			return &domain.StoreError{Op: "remove crontab", ExitCode: res.ExitCode, Output: res.CombinedOutput()}
		}
		log.Warn().
			Int(logging.FieldExitCode, res.ExitCode).
			Str("output", res.CombinedOutput()).
			Msg("crontab removal reported a failure")
		return nil
	}

	log.Info().Msg("crontab removed")
	return nil
}

// Snapshots lists the stored snapshots of the user's table, newest first.
func (s *Service) Snapshots(ctx context.Context) ([]domain.SnapshotInfo, error) {
	if s.snapshots == nil {
		return nil, domain.ErrSnapshotsDisabled
	}
	return s.snapshots.List(ctx, s.config.Username)
}

// Restore installs the lines of snapshot id as the user's table.
func (s *Service) Restore(ctx context.Context, id string) error {
	log := s.operationLogger(ctx, "Restore")

	if s.snapshots == nil {
		return domain.ErrSnapshotsDisabled
	}
	if err := validation.ValidateSnapshotID(id); err != nil {
		return &domain.ArgumentError{Name: "snapshot id", Value: id, Reason: err}
	}

	snap, err := s.snapshots.Get(ctx, id)
	if err != nil {
		return err
	}
	if snap.Username != s.config.Username {
		return &domain.ArgumentError{
			Name:   "snapshot id",
			Value:  id,
			Reason: fmt.Errorf("snapshot belongs to user %q", snap.Username),
		}
	}

	current, err := s.currentLines(ctx, log)
	if err != nil {
		return err
	}
	if err := s.snapshot(ctx, ReasonRestore, current, snap.Lines, log); err != nil {
		return err
	}

	if len(snap.Lines) == 0 {
		return s.removeAll(ctx, log)
	}

	if err := s.applyLines(ctx, snap.Lines, log); err != nil {
		return err
	}

	log.Info().Str("snapshot_id", id).Int(logging.FieldCount, len(snap.Lines)).Msg("crontab restored")
	return nil
}

// applyLines writes lines to a fresh temp file and installs it. The file is
// removed after a successful install; after a failure it is kept when
// KeepTempOnFailure is set.
func (s *Service) applyLines(ctx context.Context, lines []string, log zerolog.Logger) error {
	path, err := s.fs.CreateTempFile(s.config.TempDir, s.config.TempPrefix)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := s.fs.WriteFile(path, []byte(domain.TableContent(lines))); err != nil {
		s.discardTemp(path, log)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := s.applyFile(ctx, path, log); err != nil {
		if s.config.KeepTempOnFailure {
			log.Warn().Str(logging.FieldPath, path).Msg("install failed, candidate table kept")
		} else {
			s.discardTemp(path, log)
		}
		return err
	}

	s.discardTemp(path, log)
	return nil
}

func (s *Service) discardTemp(path string, log zerolog.Logger) {
	if err := s.fs.RemoveFile(path); err != nil {
		log.Warn().Err(err).Str(logging.FieldPath, path).Msg("failed to remove temp file")
	}
}

// snapshot saves current before it is replaced by next. Nothing is saved when
// snapshots are disabled or the table would not change.
func (s *Service) snapshot(ctx context.Context, reason string, current, next []string, log zerolog.Logger) error {
	if s.snapshots == nil || slices.Equal(current, next) {
		return nil
	}

	info, err := s.snapshots.Save(ctx, domain.Snapshot{
		ID:        s.newID(),
		Username:  s.config.Username,
		Reason:    reason,
		CreatedAt: s.now(),
		Lines:     slices.Clone(current),
	})
	if err != nil {
		return fmt.Errorf("failed to snapshot crontab: %w", err)
	}

	log.Debug().Str("snapshot_id", info.ID).Int(logging.FieldCount, info.LineCount).Msg("crontab snapshot saved")

	if s.config.SnapshotKeep > 0 {
		pruned, err := s.snapshots.Prune(ctx, s.config.Username, s.config.SnapshotKeep)
		if err != nil {
			log.Warn().Err(err).Msg("failed to prune snapshots")
		} else if pruned > 0 {
			log.Debug().Int(logging.FieldCount, pruned).Msg("old snapshots pruned")
		}
	}

	return nil
}

func (s *Service) command(template, file string) (string, error) {
	if s.config.Username != "" {
		if err := validation.ValidateUsername(s.config.Username); err != nil {
			return "", &domain.ArgumentError{Name: "username", Value: s.config.Username, Reason: err}
		}
	}
	return composeCommand(template, s.config.BinPath, s.config.Username, file), nil
}

func (s *Service) isNoTable(res domain.ProcessResult) bool {
	return !res.Success() &&
		strings.Contains(strings.ToLower(res.CombinedOutput()), strings.ToLower(s.config.NoTablePhrase))
}

// useCaseLogger prefers the logger carried by ctx, as set up by the caller.
func (s *Service) useCaseLogger(ctx context.Context, usecase string) zerolog.Logger {
	base := s.log
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		base = *l
	}
	log := logging.ForUseCase(base, usecase)
	if s.config.Username != "" {
		log = log.With().Str(logging.FieldUser, s.config.Username).Logger()
	}
	return log
}

// operationLogger tags a state-changing use case with a fresh operation id.
func (s *Service) operationLogger(ctx context.Context, usecase string) zerolog.Logger {
	return s.useCaseLogger(ctx, usecase).With().Str(logging.FieldOperation, s.newID()).Logger()
}
