package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/cronkeeper/internal/app"
	inmocks "github.com/bnema/cronkeeper/internal/boundaries/in/mocks"
	"github.com/bnema/cronkeeper/internal/boundaries/out"
	outmocks "github.com/bnema/cronkeeper/internal/boundaries/out/mocks"
	"github.com/bnema/cronkeeper/internal/domain"
	"github.com/bnema/cronkeeper/internal/testutils"
	"github.com/bnema/cronkeeper/pkg/version"
)

type cliHarness struct {
	svc     *inmocks.MockCrontabService
	jobs    *outmocks.MockJobSource
	opts    *rootOptions
	opened  []app.Options
	answers []bool
	asked   []string
}

func newHarness(t *testing.T, username string) *cliHarness {
	t.Helper()

	h := &cliHarness{
		svc:  inmocks.NewMockCrontabService(t),
		jobs: outmocks.NewMockJobSource(t),
	}
	h.opts = &rootOptions{
		open: func(o app.Options) (*app.App, error) {
			h.opened = append(h.opened, o)
			a := &app.App{Log: zerolog.Nop(), Service: h.svc, Jobs: h.jobs}
			a.Config.Crontab.Username = username
			return a, nil
		},
		confirm: func(message string) (bool, error) {
			h.asked = append(h.asked, message)
			if len(h.answers) == 0 {
				return false, nil
			}
			answer := h.answers[0]
			h.answers = h.answers[1:]
			return answer, nil
		},
	}
	return h
}

func (h *cliHarness) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd(h.opts)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(testutils.TestContext(t))
	return stdout.String(), stderr.String(), err
}

// expectJobs makes the job file yield jobs and the service receive them.
func (h *cliHarness) expectJobs(jobs []domain.Job) {
	h.jobs.EXPECT().Load(mock.Anything).Return(out.JobSet{Jobs: jobs}, nil).Once()
	h.svc.EXPECT().SetJobs(jobs).Return().Once()
}

func backupJob() domain.Job {
	job := domain.NewJob("/usr/bin/backup")
	job.Minute = "0"
	job.Hour = "3"
	return job
}

func TestRoot_GlobalFlagsBecomeOverrides(t *testing.T) {
	h := newHarness(t, "www")
	h.svc.EXPECT().CurrentLines(mock.Anything).Return([]string{"0 3 * * * /usr/bin/backup"}, nil).Once()

	_, _, err := h.run(t, "list", "--user", "www", "--bin", "/usr/bin/crontab", "--log-level", "debug", "-c", "/etc/ck.toml")
	require.NoError(t, err)

	require.Len(t, h.opened, 1)
	o := h.opened[0]
	assert.Equal(t, "/etc/ck.toml", o.ConfigPath)
	assert.Equal(t, ".env", o.EnvFile)
	assert.False(t, o.EnvFileRequired)
	assert.Equal(t, "www", o.Overrides.Username)
	assert.Equal(t, "/usr/bin/crontab", o.Overrides.BinPath)
	assert.Equal(t, "debug", o.Overrides.LogLevel)
}

func TestRoot_ExplicitEnvFileIsRequired(t *testing.T) {
	h := newHarness(t, "")
	h.svc.EXPECT().CurrentLines(mock.Anything).Return([]string{}, nil).Once()

	_, _, err := h.run(t, "list", "--env-file", "/etc/cronkeeper/.env")
	require.NoError(t, err)

	require.Len(t, h.opened, 1)
	assert.Equal(t, "/etc/cronkeeper/.env", h.opened[0].EnvFile)
	assert.True(t, h.opened[0].EnvFileRequired)
}

func TestRoot_OpenError(t *testing.T) {
	h := newHarness(t, "")
	h.opts.open = func(app.Options) (*app.App, error) {
		return nil, errors.New("failed to load config: boom")
	}

	_, _, err := h.run(t, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestVersionCmd(t *testing.T) {
	h := newHarness(t, "")

	stdout, _, err := h.run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "cronkeeper "+version.Display())
	assert.Contains(t, stdout, "Commit:")
	assert.Empty(t, h.opened)
}

func TestSnapshotsListCmd(t *testing.T) {
	h := newHarness(t, "www")
	h.svc.EXPECT().Snapshots(mock.Anything).Return([]domain.SnapshotInfo{
		{ID: "0b9c4f0e-8f57-4a56-9a53-1c1f5d2e7a10", Username: "www", Reason: "apply", CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), LineCount: 2},
	}, nil).Once()

	stdout, _, err := h.run(t, "snapshots", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "0b9c4f0e-8f57-4a56-9a53-1c1f5d2e7a10")
	assert.Contains(t, stdout, "apply")
}

func TestSnapshotsListCmd_Empty(t *testing.T) {
	h := newHarness(t, "www")
	h.svc.EXPECT().Snapshots(mock.Anything).Return(nil, nil).Once()

	stdout, _, err := h.run(t, "snapshots", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No snapshots for www")
}

func TestSnapshotsListCmd_Disabled(t *testing.T) {
	h := newHarness(t, "www")
	h.svc.EXPECT().Snapshots(mock.Anything).Return(nil, domain.ErrSnapshotsDisabled).Once()

	_, _, err := h.run(t, "snapshots", "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSnapshotsDisabled)
	assert.Contains(t, err.Error(), "snapshots.enabled")
}

func TestSnapshotsRestoreCmd(t *testing.T) {
	const id = "0b9c4f0e-8f57-4a56-9a53-1c1f5d2e7a10"

	t.Run("confirmed", func(t *testing.T) {
		h := newHarness(t, "www")
		h.answers = []bool{true}
		h.svc.EXPECT().Restore(mock.Anything, id).Return(nil).Once()

		stdout, _, err := h.run(t, "snapshots", "restore", id)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Restored snapshot "+id)
		require.Len(t, h.asked, 1)
		assert.Contains(t, h.asked[0], "www")
	})

	t.Run("declined", func(t *testing.T) {
		h := newHarness(t, "www")
		h.answers = []bool{false}

		stdout, _, err := h.run(t, "snapshots", "restore", id)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Cancelled.")
	})

	t.Run("yes flag skips prompt", func(t *testing.T) {
		h := newHarness(t, "www")
		h.svc.EXPECT().Restore(mock.Anything, id).Return(nil).Once()

		_, _, err := h.run(t, "snapshots", "restore", "--yes", id)
		require.NoError(t, err)
		assert.Empty(t, h.asked)
	})
}
