package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplay(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "release", raw: "1.2.3", want: "v1.2.3"},
		{name: "prefixed release", raw: "v0.4.0", want: "v0.4.0"},
		{name: "prerelease", raw: "v1.0.0-rc.1", want: "v1.0.0-rc.1"},
		{name: "short", raw: "2.1", want: "v2.1.0"},
		{name: "dev build", raw: "dev", want: "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, display(tt.raw))
		})
	}
}

func TestSet(t *testing.T) {
	oldVersion, oldCommit, oldDate := version, commit, buildDate
	t.Cleanup(func() { version, commit, buildDate = oldVersion, oldCommit, oldDate })

	Set("1.0.0", "abc123", "")

	assert.Equal(t, "1.0.0", Version())
	assert.Equal(t, "v1.0.0", Display())
	assert.Equal(t, "abc123", Commit())
	assert.Equal(t, oldDate, BuildDate())
}
