package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/cronkeeper/internal/testutils"
)

const appConfig = `[crontab]
username = "www"
jobs_file = "/etc/cronkeeper/jobs.yaml"
temp_dir = "/tmp/cronkeeper"
head_lines = ["SHELL=/bin/sh"]

[snapshots]
enabled = true
dir = "/var/lib/cronkeeper/snapshots"
keep = 2

[logging]
format = "json"
`

const appJobs = `
jobs:
  - min: "0"
    hour: "3"
    command: /usr/bin/backup
`

func newTestApp(t *testing.T, config, jobs string) (*App, *testutils.FakeCrontab, afero.Fs) {
	t.Helper()

	fs := testutils.CreateTempConfig(t, config)
	if jobs != "" {
		require.NoError(t, afero.WriteFile(fs, "/etc/cronkeeper/jobs.yaml", []byte(jobs), 0644))
	}
	fake := testutils.NewFakeCrontab(fs)

	a, err := New(Options{
		ConfigPath: "/cronkeeper.toml",
		Fs:         fs,
		Runner:     fake,
		LogOutput:  &bytes.Buffer{},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	return a, fake, fs
}

func TestNew_AppliesJobFile(t *testing.T) {
	a, fake, _ := newTestApp(t, appConfig, appJobs)
	ctx := a.Context(testutils.TestContext(t))

	require.NoError(t, a.LoadJobs(ctx))
	require.NoError(t, a.Service.Apply(ctx))

	table, ok := fake.Table("www")
	require.True(t, ok)
	assert.Equal(t, []string{"SHELL=/bin/sh", "0 3 * * * /usr/bin/backup"}, table)
}

func TestNew_JobFileHeadLinesReplaceConfig(t *testing.T) {
	jobs := `
head_lines:
  - MAILTO=ops@example.com
jobs:
  - line: "*/5 * * * * php /app/yii queue/run"
`
	a, _, _ := newTestApp(t, appConfig, jobs)
	ctx := a.Context(testutils.TestContext(t))

	require.NoError(t, a.LoadJobs(ctx))

	lines, err := a.Service.DesiredLines(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"MAILTO=ops@example.com", "", "*/5 * * * * php /app/yii queue/run"}, lines)
}

func TestNew_MissingJobFile(t *testing.T) {
	a, _, _ := newTestApp(t, appConfig, "")

	err := a.LoadJobs(testutils.TestContext(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/etc/cronkeeper/jobs.yaml not found")
}

func TestNew_SnapshotsWired(t *testing.T) {
	a, fake, fs := newTestApp(t, appConfig, appJobs)
	ctx := a.Context(testutils.TestContext(t))
	fake.SetTable("www", []string{"1 1 * * * old"})

	require.NoError(t, a.LoadJobs(ctx))
	require.NoError(t, a.Service.Apply(ctx))

	infos, err := a.Service.Snapshots(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "www", infos[0].Username)

	exists, err := afero.DirExists(fs, "/var/lib/cronkeeper/snapshots/www")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNew_SnapshotsDisabled(t *testing.T) {
	a, _, _ := newTestApp(t, testutils.LoadFixtureConfig(t, "minimal.toml"), "")

	_, err := a.Service.Snapshots(testutils.TestContext(t))
	assert.Error(t, err)
}

func TestNew_InvalidMergePattern(t *testing.T) {
	fs := testutils.CreateTempConfig(t, "[crontab.merge_filter]\npattern = \"([\"\n")

	_, err := New(Options{ConfigPath: "/cronkeeper.toml", Fs: fs, LogOutput: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid merge filter")
}

func TestNew_UnsupportedLogFormat(t *testing.T) {
	fs := testutils.CreateTempConfig(t, "[logging]\nformat = \"xml\"\n")

	_, err := New(Options{ConfigPath: "/cronkeeper.toml", Fs: fs})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set up logging")
}

func TestApp_Watch(t *testing.T) {
	dir := t.TempDir()
	jobsPath := filepath.Join(dir, "jobs.yaml")
	require.NoError(t, os.WriteFile(jobsPath, []byte(appJobs), 0600))

	config := "[crontab]\n" +
		"jobs_file = \"" + jobsPath + "\"\n" +
		"temp_dir = \"" + filepath.Join(dir, "tmp") + "\"\n"
	configPath := filepath.Join(dir, "cronkeeper.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0600))

	fake := testutils.NewFakeCrontab(afero.NewOsFs())
	a, err := New(Options{ConfigPath: configPath, Runner: fake, LogOutput: &bytes.Buffer{}})
	require.NoError(t, err)
	defer a.Close()

	ctx, cancel := context.WithCancel(a.Context(testutils.TestContext(t)))
	done := make(chan error, 1)
	go func() { done <- a.Watch(ctx) }()

	testutils.AssertEventuallyTrue(t, func() bool {
		table, _ := fake.Table("tester")
		return len(table) == 1
	}, 2*time.Second, "initial apply")

	updated := appJobs + "  - min: \"30\"\n    command: /usr/bin/report\n"
	require.NoError(t, os.WriteFile(jobsPath, []byte(updated), 0600))

	testutils.AssertEventuallyTrue(t, func() bool {
		table, _ := fake.Table("tester")
		return len(table) == 2
	}, 3*time.Second, "apply after change")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}
