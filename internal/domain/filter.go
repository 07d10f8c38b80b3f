package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// MergeFilter decides which installed lines are dropped before new lines are
// merged in. A nil MergeFilter keeps every installed line.
//
// The set of variants is closed: SubstringFilter, PredicateFilter and
// PatternFilter.
type MergeFilter interface {
	Drops(line string) bool
	mergeFilter()
}

// SubstringFilter drops every line containing the substring.
type SubstringFilter string

func (f SubstringFilter) Drops(line string) bool { return strings.Contains(line, string(f)) }
func (SubstringFilter) mergeFilter()             {}

// PredicateFilter drops every line for which the function returns true.
type PredicateFilter func(line string) bool

func (f PredicateFilter) Drops(line string) bool { return f(line) }
func (PredicateFilter) mergeFilter()             {}

// PatternFilter drops every line matching the regular expression.
type PatternFilter struct {
	Pattern *regexp.Regexp
}

func (f PatternFilter) Drops(line string) bool { return f.Pattern.MatchString(line) }
func (PatternFilter) mergeFilter()             {}

// NewMergeFilter builds a filter from configuration values. contains wins
// over pattern; both empty yields a nil filter.
func NewMergeFilter(contains, pattern string) (MergeFilter, error) {
	if contains != "" {
		return SubstringFilter(contains), nil
	}
	if pattern == "" {
		return nil, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &ArgumentError{Name: "merge filter pattern", Value: pattern, Reason: fmt.Errorf("%w: %v", ErrInvalidArgument, err)}
	}
	return PatternFilter{Pattern: re}, nil
}
