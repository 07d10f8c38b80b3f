package domain

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeFilter_Drops(t *testing.T) {
	tests := []struct {
		name   string
		filter MergeFilter
		line   string
		want   bool
	}{
		{name: "substring present", filter: SubstringFilter("yii"), line: "0 0 * * * php /app/yii cron", want: true},
		{name: "substring absent", filter: SubstringFilter("yii"), line: "0 0 * * * pwd", want: false},
		{name: "predicate true", filter: PredicateFilter(func(l string) bool { return strings.HasPrefix(l, "#") }), line: "# managed", want: true},
		{name: "predicate false", filter: PredicateFilter(func(l string) bool { return strings.HasPrefix(l, "#") }), line: "0 0 * * * pwd", want: false},
		{name: "pattern match", filter: PatternFilter{Pattern: regexp.MustCompile(`\bbackup\.sh$`)}, line: "0 3 * * * /opt/backup.sh", want: true},
		{name: "pattern miss", filter: PatternFilter{Pattern: regexp.MustCompile(`\bbackup\.sh$`)}, line: "0 3 * * * /opt/backup.sh --dry", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Drops(tt.line))
		})
	}
}

func TestNewMergeFilter(t *testing.T) {
	t.Run("nothing configured", func(t *testing.T) {
		f, err := NewMergeFilter("", "")
		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("substring wins", func(t *testing.T) {
		f, err := NewMergeFilter("managed-by-app", "ignored(")
		require.NoError(t, err)
		assert.Equal(t, SubstringFilter("managed-by-app"), f)
	})

	t.Run("pattern", func(t *testing.T) {
		f, err := NewMergeFilter("", `^\S+ \S+ \S+ \S+ \S+ /usr/bin/app`)
		require.NoError(t, err)
		require.IsType(t, PatternFilter{}, f)
		assert.True(t, f.Drops("0 0 * * * /usr/bin/app sync"))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		f, err := NewMergeFilter("", "(")
		assert.Nil(t, f)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}
