// Package logging builds the process logger and holds the structured field
// names shared by every layer.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Field names used across layers.
const (
	FieldLayer     = "layer"
	FieldUseCase   = "usecase"
	FieldAdapter   = "adapter"
	FieldComponent = "component"
	FieldOperation = "op_id"
	FieldUser      = "user"
	FieldPath      = "path"
	FieldCommand   = "command"
	FieldExitCode  = "exit_code"
	FieldCount     = "count"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// FileConfig configures the optional rotating log file.
type FileConfig struct {
	Enabled    bool
	Path       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// Config configures the process logger.
type Config struct {
	Level  string
	Format string
	File   FileConfig
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup builds a logger writing to out (stderr when nil) and, when enabled,
// to a rotating file. The returned closer releases the file.
func Setup(cfg Config, out io.Writer) (zerolog.Logger, io.Closer, error) {
	if out == nil {
		out = os.Stderr
	}

	level, levelErr := parseLevel(cfg.Level)

	var console io.Writer
	switch strings.ToLower(cfg.Format) {
	case "", FormatConsole:
		console = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	case FormatJSON:
		console = out
	default:
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	writer := console
	var closer io.Closer = nopCloser{}

	if cfg.File.Enabled {
		if cfg.File.Path == "" {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("log file path is required when file logging is enabled")
		}

		// owner only
		if err := os.MkdirAll(filepath.Dir(cfg.File.Path), 0700); err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
		}

		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSize,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAge,
			Compress:   cfg.File.Compress,
		}
		writer = io.MultiWriter(console, fileWriter)
		closer = fileWriter
	}

	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()

	if levelErr != nil {
		logger.Warn().Str("invalid_level", cfg.Level).Msg("invalid log level, using info")
	}

	return logger, closer, nil
}

func parseLevel(raw string) (zerolog.Level, error) {
	if raw == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel, fmt.Errorf("invalid log level %q", raw)
	}
	return level, nil
}

// ForUseCase returns a child logger tagged for a use case operation.
func ForUseCase(log zerolog.Logger, usecase string) zerolog.Logger {
	return log.With().Str(FieldLayer, "usecase").Str(FieldUseCase, usecase).Logger()
}

// ForAdapter returns a child logger tagged for a driven adapter.
func ForAdapter(log zerolog.Logger, adapter string) zerolog.Logger {
	return log.With().Str(FieldLayer, "adapter").Str(FieldAdapter, adapter).Logger()
}
