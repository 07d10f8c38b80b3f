package testutils

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// TestContext creates a test context with timeout
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// CreateTempConfig creates an in-memory filesystem holding a cronkeeper.toml
func CreateTempConfig(t *testing.T, content string) afero.Fs {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "/cronkeeper.toml", []byte(content), 0644)
	require.NoError(t, err)
	return fs
}

// WriteTempFile writes content to name inside a fresh temporary directory and
// returns the file path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// AssertEventuallyTrue retries a condition until it's true or times out
func AssertEventuallyTrue(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("Condition never became true: %s", message)
}

// LoadFixtureConfig returns a configuration fixture by name
func LoadFixtureConfig(t *testing.T, filename string) string {
	content := `[crontab]
bin_path = "/usr/bin/crontab"
username = "www"
jobs_file = "/etc/cronkeeper/jobs.yaml"
head_lines = ["MAILTO=ops@example.com"]
keep_temp_on_failure = false
strict_remove_all = true

[crontab.merge_filter]
contains = "/app/yii"

[process]
timeout = "30s"

[snapshots]
enabled = true
dir = "/var/lib/cronkeeper/snapshots"
keep = 5

[logging]
level = "debug"
format = "json"`

	switch filename {
	case "minimal.toml":
		return `[crontab]
username = "www"`
	case "invalid.toml":
		return `[crontab
username = "www"`
	default:
		return content
	}
}
