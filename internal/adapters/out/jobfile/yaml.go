// Package jobfile loads declared cron jobs from a YAML file.
package jobfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/bnema/cronkeeper/internal/boundaries/out"
	"github.com/bnema/cronkeeper/internal/domain"
	"github.com/bnema/cronkeeper/internal/logging"
)

// document is the on-disk layout:
//
//	head_lines:
//	  - MAILTO=ops@example.com
//	jobs:
//	  - min: "0"
//	    hour: "3"
//	    command: /usr/local/bin/backup
//	  - line: "*/5 * * * * /usr/bin/php /app/yii queue/run"
type document struct {
	HeadLines []string `yaml:"head_lines"`
	Jobs      []entry  `yaml:"jobs"`
}

// entry is one job, given either by field or as a whole line. Unset schedule
// fields default to "*".
type entry struct {
	Line       string  `yaml:"line"`
	Minute     *string `yaml:"min"`
	Hour       *string `yaml:"hour"`
	DayOfMonth *string `yaml:"day"`
	Month      *string `yaml:"month"`
	DayOfWeek  *string `yaml:"week_day"`
	Year       *string `yaml:"year"`
	Command    *string `yaml:"command"`
}

func (e entry) hasFields() bool {
	return e.Minute != nil || e.Hour != nil || e.DayOfMonth != nil || e.Month != nil ||
		e.DayOfWeek != nil || e.Year != nil || e.Command != nil
}

func (e entry) job() (domain.Job, error) {
	if e.Line != "" {
		if e.hasFields() {
			return domain.Job{}, fmt.Errorf("line cannot be combined with job fields")
		}
		return domain.ParseLine(e.Line)
	}

	job := domain.NewJob("")
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&job.Minute, e.Minute)
	set(&job.Hour, e.Hour)
	set(&job.DayOfMonth, e.DayOfMonth)
	set(&job.Month, e.Month)
	set(&job.DayOfWeek, e.DayOfWeek)
	set(&job.Year, e.Year)
	set(&job.Command, e.Command)
	return job, nil
}

// File implements out.JobSource for a YAML job file.
type File struct {
	fs   afero.Fs
	path string
	log  zerolog.Logger
}

// NewFile creates a job file source. A nil fs means the OS filesystem.
func NewFile(fs afero.Fs, path string, log zerolog.Logger) *File {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &File{fs: fs, path: path, log: logging.ForAdapter(log, "jobfile")}
}

// Path returns the job file path.
func (f *File) Path() string {
	return f.path
}

// Load reads and decodes the job file. Unknown keys are rejected. HeadLines
// is nil when the file does not declare head_lines.
func (f *File) Load(_ context.Context) (out.JobSet, error) {
	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		return out.JobSet{}, fmt.Errorf("failed to read job file: %w", err)
	}

	set, err := Decode(data)
	if err != nil {
		return out.JobSet{}, fmt.Errorf("%s: %w", f.path, err)
	}

	f.log.Debug().
		Str(logging.FieldPath, f.path).
		Int(logging.FieldCount, len(set.Jobs)).
		Msg("job file loaded")

	return set, nil
}

// Decode parses job file content.
func Decode(data []byte) (out.JobSet, error) {
	var doc document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return out.JobSet{}, fmt.Errorf("failed to parse job file: %w", err)
	}

	set := out.JobSet{
		HeadLines: doc.HeadLines,
		Jobs:      make([]domain.Job, 0, len(doc.Jobs)),
	}
	for i, e := range doc.Jobs {
		job, err := e.job()
		if err != nil {
			return out.JobSet{}, fmt.Errorf("job %d: %w", i+1, err)
		}
		set.Jobs = append(set.Jobs, job)
	}

	return set, nil
}
