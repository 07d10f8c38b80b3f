package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderBlock(t *testing.T) {
	assert.Nil(t, HeaderBlock(nil))
	assert.Equal(t,
		[]string{"# crontab created by my application", "SHELL=/bin/sh", ""},
		HeaderBlock([]string{"# crontab created by my application", "SHELL=/bin/sh"}),
	)
}

func TestTableContent(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{name: "no lines", lines: nil, want: ""},
		{name: "empty slice", lines: []string{}, want: ""},
		{name: "one line", lines: []string{"0 0 * * * pwd"}, want: "0 0 * * * pwd\n"},
		{name: "header and jobs", lines: []string{"SHELL=/bin/sh", "", "0 0 * * * pwd"}, want: "SHELL=/bin/sh\n\n0 0 * * * pwd\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TableContent(tt.lines))
		})
	}
}

func TestSplitTableLines(t *testing.T) {
	out := SplitTableLines([]string{"  0 0 * * * pwd  ", "", "\t", "SHELL=/bin/sh\n\n0 1 * * * ls"})
	assert.Equal(t, []string{"0 0 * * * pwd", "SHELL=/bin/sh", "0 1 * * * ls"}, out)
	assert.Empty(t, SplitTableLines(nil))
}

func TestProcessResult(t *testing.T) {
	r := ProcessResult{Output: []string{"no crontab for bob"}, ExitCode: 1}
	assert.False(t, r.Success())
	assert.Equal(t, "no crontab for bob", r.CombinedOutput())
	assert.True(t, ProcessResult{}.Success())
}
