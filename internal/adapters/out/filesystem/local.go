// Package filesystem implements the file-backed output ports on top of an
// afero filesystem.
package filesystem

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/bnema/cronkeeper/internal/logging"
	"github.com/bnema/cronkeeper/pkg/validation"
)

// Local implements out.FileSystem.
type Local struct {
	fs  afero.Fs
	log zerolog.Logger
}

// NewLocal creates a filesystem adapter. A nil fs means the OS filesystem.
func NewLocal(fs afero.Fs, log zerolog.Logger) *Local {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Local{fs: fs, log: logging.ForAdapter(log, "filesystem")}
}

// WriteFile writes content to path with owner-only permissions.
func (l *Local) WriteFile(path string, content []byte) (int, error) {
	path = validation.ExpandHome(path)

	f, err := l.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return 0, err
	}

	n, err := f.Write(content)
	if err != nil {
		_ = f.Close()
		return n, err
	}
	if err := f.Close(); err != nil {
		return n, err
	}

	l.log.Debug().Str(logging.FieldPath, path).Int("bytes", n).Msg("file written")
	return n, nil
}

// FileExists reports whether path exists.
func (l *Local) FileExists(path string) (bool, error) {
	return afero.Exists(l.fs, validation.ExpandHome(path))
}

// CreateTempFile creates an empty file named after prefix in dir.
func (l *Local) CreateTempFile(dir, prefix string) (string, error) {
	dir = validation.ExpandHome(dir)
	if dir != "" {
		if err := l.fs.MkdirAll(dir, 0700); err != nil {
			return "", fmt.Errorf("failed to create temp directory: %w", err)
		}
	}

	f, err := afero.TempFile(l.fs, dir, prefix+"-*")
	if err != nil {
		return "", err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		_ = l.fs.Remove(name)
		return "", err
	}

	return name, nil
}

// RemoveFile removes path.
func (l *Local) RemoveFile(path string) error {
	return l.fs.Remove(validation.ExpandHome(path))
}
