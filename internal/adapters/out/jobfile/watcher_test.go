package jobfile

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/cronkeeper/internal/boundaries/out"
)

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cronkeeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jobs:\n  - command: pwd\n"), 0600))

	watcher := NewWatcher(NewFile(nil, path, zerolog.Nop()), 20*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan out.JobSet, 4)
	done := make(chan error, 1)
	go func() {
		done <- watcher.Watch(ctx, func(_ context.Context, set out.JobSet) {
			changes <- set
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("jobs:\n  - command: ls\n  - command: id\n"), 0600))

	select {
	case set := <-changes:
		require.Len(t, set.Jobs, 2)
		assert.Equal(t, "ls", set.Jobs[0].Command)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after file change")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cronkeeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jobs: []\n"), 0600))

	watcher := NewWatcher(NewFile(nil, path, zerolog.Nop()), 20*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan out.JobSet, 4)
	go func() {
		_ = watcher.Watch(ctx, func(_ context.Context, set out.JobSet) {
			changes <- set
		})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0600))

	select {
	case <-changes:
		t.Fatal("reload triggered by an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_SkipsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cronkeeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jobs: []\n"), 0600))

	watcher := NewWatcher(NewFile(nil, path, zerolog.Nop()), 20*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan out.JobSet, 4)
	go func() {
		_ = watcher.Watch(ctx, func(_ context.Context, set out.JobSet) {
			changes <- set
		})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("jobs: ["), 0600))

	select {
	case <-changes:
		t.Fatal("invalid job file was delivered")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_CallbacksNeverOverlap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cronkeeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jobs: []\n"), 0600))

	watcher := NewWatcher(NewFile(nil, path, zerolog.Nop()), 20*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var active, maxActive, calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watcher.Watch(ctx, func(_ context.Context, _ out.JobSet) {
			n := active.Add(1)
			for {
				m := maxActive.Load()
				if n <= m || maxActive.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(300 * time.Millisecond)
			active.Add(-1)
			calls.Add(1)
		})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("jobs:\n  - command: ls\n"), 0600))
	time.Sleep(150 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("jobs:\n  - command: id\n"), 0600))

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(1), maxActive.Load())

	// Start one more slow call, then stop while it runs.
	require.NoError(t, os.WriteFile(path, []byte("jobs:\n  - command: pwd\n"), 0600))
	require.Eventually(t, func() bool { return active.Load() == 1 }, 5*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.Equal(t, int32(0), active.Load(), "Watch returned while a callback was running")
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.Equal(t, int32(1), maxActive.Load())
}
