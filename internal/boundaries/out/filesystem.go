package out

// FileSystem defines the file operations the crontab workflow depends on.
type FileSystem interface {
	// WriteFile writes content to path, truncating an existing file, and
	// returns the number of bytes written.
	WriteFile(path string, content []byte) (int, error)

	// FileExists reports whether path exists.
	FileExists(path string) (bool, error)

	// CreateTempFile creates an empty file in dir whose name starts with
	// prefix and returns its path. An empty dir means the system default.
	CreateTempFile(dir, prefix string) (string, error)

	// RemoveFile removes path.
	RemoveFile(path string) error
}
