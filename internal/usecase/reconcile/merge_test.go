package reconcile

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/bnema/cronkeeper/internal/domain"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name    string
		current []string
		desired []string
		filter  domain.MergeFilter
		want    []string
	}{
		{
			name:    "appends after current lines",
			current: []string{"a", "b"},
			desired: []string{"c"},
			want:    []string{"a", "b", "c"},
		},
		{
			name:    "substring filter drops matching current lines",
			current: []string{"keep", "drop-me"},
			desired: []string{"new"},
			filter:  domain.SubstringFilter("drop-me"),
			want:    []string{"keep", "new"},
		},
		{
			name:    "predicate filter drops matching current lines",
			current: []string{"keep", "drop-me"},
			desired: []string{"new"},
			filter:  domain.PredicateFilter(func(l string) bool { return strings.Contains(l, "drop-me") }),
			want:    []string{"keep", "new"},
		},
		{
			name:    "pattern filter",
			current: []string{"0 0 * * * /app/yii a", "0 1 * * * other"},
			desired: []string{"0 2 * * * /app/yii b"},
			filter:  domain.PatternFilter{Pattern: regexp.MustCompile(`/app/yii`)},
			want:    []string{"0 1 * * * other", "0 2 * * * /app/yii b"},
		},
		{
			name:    "skips desired lines already installed",
			current: []string{"x"},
			desired: []string{"x", "y"},
			want:    []string{"x", "y"},
		},
		{
			name:    "skips duplicates within desired",
			current: nil,
			desired: []string{"y", "z", "y"},
			want:    []string{"y", "z"},
		},
		{
			name:    "keeps duplicates already in current",
			current: []string{"x", "x"},
			desired: []string{"x"},
			want:    []string{"x", "x"},
		},
		{
			name:    "filter may drop a line that is re-added",
			current: []string{"managed a", "other"},
			desired: []string{"managed a"},
			filter:  domain.SubstringFilter("managed"),
			want:    []string{"other", "managed a"},
		},
		{
			name:    "empty inputs",
			current: nil,
			desired: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.current, tt.desired, tt.filter)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMerge_Idempotent(t *testing.T) {
	currents := [][]string{
		nil,
		{"a"},
		{"a", "b", "drop 1", "c"},
		{"x", "x", "y"},
	}
	desireds := [][]string{
		nil,
		{"n1"},
		{"n1", "a", "n2"},
		{"y", "n3", "n3"},
	}
	filters := []domain.MergeFilter{
		nil,
		domain.SubstringFilter("drop"),
		domain.PredicateFilter(func(l string) bool { return l == "b" }),
	}

	for _, current := range currents {
		for _, desired := range desireds {
			for _, filter := range filters {
				once := Merge(current, desired, filter)
				twice := Merge(once, desired, filter)
				if diff := cmp.Diff(once, twice, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("Merge not idempotent for current=%v desired=%v (-once +twice):\n%s", current, desired, diff)
				}
			}
		}
	}
}

func TestMerge_DoesNotAliasCurrent(t *testing.T) {
	current := make([]string, 2, 10)
	current[0], current[1] = "a", "b"

	got := Merge(current, []string{"c"}, nil)
	got[0] = "mutated"

	if current[0] != "a" {
		t.Fatalf("Merge result aliases current: %v", current)
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name    string
		current []string
		owned   []string
		want    []string
	}{
		{
			name:    "removes owned lines only",
			current: []string{"0 0 * * * pwd", "0 0 * * * ls"},
			owned:   []string{"0 0 * * * pwd"},
			want:    []string{"0 0 * * * ls"},
		},
		{
			name:    "keeps unmanaged lines in order",
			current: []string{"MAILTO=ops", "1 * * * * a", "2 * * * * b", "3 * * * * c"},
			owned:   []string{"2 * * * * b", "9 * * * * absent"},
			want:    []string{"MAILTO=ops", "1 * * * * a", "3 * * * * c"},
		},
		{
			name:    "everything owned",
			current: []string{"a", "b"},
			owned:   []string{"b", "a", ""},
			want:    []string{},
		},
		{
			name:    "exact match only",
			current: []string{"0 0 * * * pwd "},
			owned:   []string{"0 0 * * * pwd"},
			want:    []string{"0 0 * * * pwd "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subtract(tt.current, tt.owned)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Subtract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
