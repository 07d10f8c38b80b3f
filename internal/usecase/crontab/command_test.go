package crontab

import (
	"testing"

	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeCommand(t *testing.T) {
	def := DefaultCommandTemplates()

	tests := []struct {
		name     string
		template string
		bin      string
		user     string
		file     string
		want     string
	}{
		{
			name:     "list without user",
			template: def.List,
			bin:      "crontab",
			want:     "crontab  -l 2>&1",
		},
		{
			name:     "list with user",
			template: def.List,
			bin:      "/usr/bin/crontab",
			user:     "www",
			want:     "/usr/bin/crontab  -u www -l 2>&1",
		},
		{
			name:     "install quotes the file",
			template: def.Install,
			bin:      "crontab",
			file:     "/tmp/my table",
			want:     `crontab  < '/tmp/my table' 2>&1`,
		},
		{
			name:     "remove all with user",
			template: def.RemoveAll,
			bin:      "crontab",
			user:     "www-data",
			want:     "crontab  -u www-data -r 2>&1",
		},
		{
			name:     "bin path is used verbatim",
			template: "{crontab} {user} -l",
			bin:      "sudo crontab",
			want:     "sudo crontab  -l",
		},
		{
			name:     "substituted values are not expanded again",
			template: def.Install,
			bin:      "crontab",
			file:     "/tmp/a {user}",
			user:     "www",
			want:     "crontab  -u www < '/tmp/a {user}' 2>&1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := composeCommand(tt.template, tt.bin, tt.user, tt.file)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComposeCommand_FileIsOneArgument(t *testing.T) {
	hostile := []string{
		"/tmp/a b",
		"/tmp/a'b",
		`/tmp/a"b`,
		"/tmp/a;rm -rf ~",
		"/tmp/$(id)",
		"/tmp/`id`",
		"/tmp/a\nb",
	}

	for _, file := range hostile {
		t.Run(file, func(t *testing.T) {
			cmd := composeCommand("{crontab} {user} < {file}", "crontab", "", file)

			words, err := shellquote.Split(cmd)
			require.NoError(t, err)
			require.Equal(t, []string{"crontab", "<", file}, words)
		})
	}
}

func TestCommandTemplates_WithDefaults(t *testing.T) {
	got := CommandTemplates{List: "custom -l"}.withDefaults()

	assert.Equal(t, "custom -l", got.List)
	assert.Equal(t, DefaultCommandTemplates().Install, got.Install)
	assert.Equal(t, DefaultCommandTemplates().RemoveAll, got.RemoveAll)
}
