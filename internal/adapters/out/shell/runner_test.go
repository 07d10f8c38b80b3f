package shell

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run(t *testing.T) {
	tests := []struct {
		name       string
		command    string
		wantOutput []string
		wantCode   int
	}{
		{
			name:       "stdout lines",
			command:    "echo a; echo 'b c'",
			wantOutput: []string{"a", "b c"},
		},
		{
			name:     "no output",
			command:  "true",
			wantCode: 0,
		},
		{
			name:       "non-zero exit is not an error",
			command:    "echo 'no crontab for tester'; exit 1",
			wantOutput: []string{"no crontab for tester"},
			wantCode:   1,
		},
		{
			name:       "stderr is captured",
			command:    "echo oops 1>&2; exit 3",
			wantOutput: []string{"oops"},
			wantCode:   3,
		},
		{
			name:       "redirection is interpreted by the shell",
			command:    "printf 'x\\ny\\n' > /dev/null; echo done 2>&1",
			wantOutput: []string{"done"},
		},
	}

	runner := NewRunner("", 0, zerolog.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := runner.Run(context.Background(), tt.command)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutput, res.Output)
			assert.Equal(t, tt.wantCode, res.ExitCode)
		})
	}
}

func TestRunner_Timeout(t *testing.T) {
	runner := NewRunner(DefaultShell, 50*time.Millisecond, zerolog.Nop())

	_, err := runner.Run(context.Background(), "sleep 5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestRunner_CancelledContext(t *testing.T) {
	runner := NewRunner(DefaultShell, 0, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, "true")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_MissingShell(t *testing.T) {
	runner := NewRunner("/nonexistent/shell", 0, zerolog.Nop())

	_, err := runner.Run(context.Background(), "true")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute command")
}

func TestSplitOutput(t *testing.T) {
	assert.Nil(t, splitOutput(nil))
	assert.Nil(t, splitOutput([]byte("\n")))
	assert.Equal(t, []string{"a", "", "b"}, splitOutput([]byte("a\n\nb\n")))
}
