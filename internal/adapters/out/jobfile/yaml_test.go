package jobfile

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/cronkeeper/internal/domain"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantHead  []string
		wantJobs  []domain.Job
		wantError string
	}{
		{
			name: "fields with defaults",
			content: `
jobs:
  - min: "0"
    hour: "0"
    command: pwd
`,
			wantJobs: []domain.Job{{Minute: "0", Hour: "0", DayOfMonth: "*", Month: "*", DayOfWeek: "*", Command: "pwd"}},
		},
		{
			name: "numbers and year",
			content: `
jobs:
  - min: 30
    hour: 2
    day: 1
    month: JAN
    week_day: "*"
    year: 2030
    command: /usr/bin/backup --full
`,
			wantJobs: []domain.Job{{Minute: "30", Hour: "2", DayOfMonth: "1", Month: "JAN", DayOfWeek: "*", Year: "2030", Command: "/usr/bin/backup --full"}},
		},
		{
			name: "line form",
			content: `
head_lines:
  - MAILTO=ops@example.com
jobs:
  - line: "*/5 * * * * php /app/yii queue/run"
`,
			wantHead: []string{"MAILTO=ops@example.com"},
			wantJobs: []domain.Job{{Minute: "*/5", Hour: "*", DayOfMonth: "*", Month: "*", DayOfWeek: "*", Command: "php /app/yii queue/run"}},
		},
		{
			name:     "empty document",
			content:  "",
			wantJobs: []domain.Job{},
		},
		{
			name: "explicit empty head lines",
			content: `
head_lines: []
jobs: []
`,
			wantHead: []string{},
			wantJobs: []domain.Job{},
		},
		{
			name: "line and fields together",
			content: `
jobs:
  - line: "* * * * * ls"
    command: pwd
`,
			wantError: "job 1: line cannot be combined",
		},
		{
			name: "short line",
			content: `
jobs:
  - line: "* * * ls"
`,
			wantError: "job 1",
		},
		{
			name: "unknown key",
			content: `
jobs:
  - minute: "0"
    command: pwd
`,
			wantError: "failed to parse job file",
		},
		{
			name:      "malformed yaml",
			content:   "jobs: [",
			wantError: "failed to parse job file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Decode([]byte(tt.content))
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHead, set.HeadLines)
			assert.Equal(t, tt.wantJobs, set.Jobs)
		})
	}
}

func TestDecode_ShortLineIsFormatError(t *testing.T) {
	_, err := Decode([]byte("jobs:\n  - line: \"* * ls\"\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidLine)
}

func TestDecode_DoesNotValidate(t *testing.T) {
	set, err := Decode([]byte("jobs:\n  - min: \"99x\"\n"))
	require.NoError(t, err)
	require.Len(t, set.Jobs, 1)
	assert.ErrorIs(t, set.Jobs[0].Validate(), domain.ErrInvalidJob)
}

func TestFile_Load(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/cronkeeper.yaml", []byte("jobs:\n  - command: ls\n"), 0644))

	source := NewFile(fs, "/etc/cronkeeper.yaml", zerolog.Nop())
	assert.Equal(t, "/etc/cronkeeper.yaml", source.Path())

	set, err := source.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, set.Jobs, 1)
	assert.Equal(t, domain.NewJob("ls"), set.Jobs[0])
	assert.Nil(t, set.HeadLines)
}

func TestFile_LoadMissing(t *testing.T) {
	source := NewFile(afero.NewMemMapFs(), "/missing.yaml", zerolog.Nop())

	_, err := source.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFile_LoadReportsPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("jobs: {"), 0644))

	_, err := NewFile(fs, "/bad.yaml", zerolog.Nop()).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/bad.yaml")
}
