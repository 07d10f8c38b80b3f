package jobfile

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/bnema/cronkeeper/internal/boundaries/out"
	"github.com/bnema/cronkeeper/internal/logging"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 250 * time.Millisecond

const (
	restartBackoffBase = 250 * time.Millisecond
	restartBackoffMax  = 5 * time.Second
)

// ChangeFunc receives the reloaded job set.
type ChangeFunc func(ctx context.Context, set out.JobSet)

// Watcher reloads a job source when its file changes.
type Watcher struct {
	source   out.JobSource
	debounce time.Duration
	log      zerolog.Logger
}

// NewWatcher creates a watcher for source. A zero debounce uses DefaultDebounce.
func NewWatcher(source out.JobSource, debounce time.Duration, log zerolog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{source: source, debounce: debounce, log: logging.ForAdapter(log, "jobfile-watcher")}
}

// Watch blocks until ctx is done, calling onChange after each debounced
// change of the file. The parent directory is watched so editors that
// replace the file by rename are followed. Files that fail to load are
// logged and skipped.
//
// onChange runs on a single goroutine, so calls never overlap; changes seen
// while it runs collapse into one more call. Watch returns only after the
// last call has finished.
func (w *Watcher) Watch(ctx context.Context, onChange ChangeFunc) error {
	path := w.source.Path()
	dir := filepath.Dir(path)
	file := filepath.Base(path)

	pending := make(chan struct{}, 1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-pending:
				w.deliver(ctx, onChange)
			}
		}
	}()
	defer wg.Wait()

	var (
		timerMu sync.Mutex
		timer   *time.Timer
	)
	defer func() {
		timerMu.Lock()
		if timer != nil {
			timer.Stop()
		}
		timerMu.Unlock()
	}()

	reload := func() {
		timerMu.Lock()
		defer timerMu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		w.log.Debug().Str(logging.FieldPath, path).Msg("job file change detected; scheduling reload")
		timer = time.AfterFunc(w.debounce, func() {
			select {
			case pending <- struct{}{}:
			default:
			}
		})
	}

	backoff := restartBackoffBase
	for {
		if ctx.Err() != nil {
			return nil
		}

		fw, err := fsnotify.NewWatcher()
		if err == nil {
			if err = fw.Add(dir); err != nil {
				_ = fw.Close()
			}
		}
		if err != nil {
			w.log.Warn().Err(err).Str("dir", dir).Dur("backoff", backoff).Msg("job file watch failed; retrying")
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, restartBackoffMax)
			continue
		}

		backoff = restartBackoffBase
		w.log.Debug().Str("dir", dir).Str("file", file).Msg("job file watcher started")

		broken := false
		for !broken {
			select {
			case <-ctx.Done():
				_ = fw.Close()
				return nil
			case ev, ok := <-fw.Events:
				if !ok {
					broken = true
					break
				}
				if filepath.Base(ev.Name) == file &&
					ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove|fsnotify.Chmod) != 0 {
					reload()
				}
			case err, ok := <-fw.Errors:
				if !ok {
					broken = true
					break
				}
				if err == nil {
					continue
				}
				if strings.Contains(strings.ToLower(err.Error()), "overflow") {
					w.log.Warn().Err(err).Msg("job file watch overflow; forcing reload")
					reload()
					continue
				}
				w.log.Warn().Err(err).Str("dir", dir).Msg("job file watch error")
			}
		}

		_ = fw.Close()
		w.log.Warn().Str("dir", dir).Msg("job file watcher stopped; restarting")
	}
}

func (w *Watcher) deliver(ctx context.Context, onChange ChangeFunc) {
	if ctx.Err() != nil {
		return
	}
	set, err := w.source.Load(ctx)
	if err != nil {
		w.log.Warn().Err(err).Str(logging.FieldPath, w.source.Path()).Msg("job file reload failed")
		return
	}
	onChange(ctx, set)
}
