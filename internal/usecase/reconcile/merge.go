// Package reconcile computes crontab line sets. It performs no I/O.
package reconcile

import "github.com/bnema/cronkeeper/internal/domain"

// Merge returns the installed lines surviving filter, followed by every
// desired line not already present. Order is preserved and no line is
// added twice, so merging the same desired lines again is a no-op.
//
// A nil filter keeps every installed line.
func Merge(current, desired []string, filter domain.MergeFilter) []string {
	result := make([]string, 0, len(current)+len(desired))
	seen := make(map[string]struct{}, len(current)+len(desired))

	for _, line := range current {
		if filter != nil && filter.Drops(line) {
			continue
		}
		result = append(result, line)
		seen[line] = struct{}{}
	}

	for _, line := range desired {
		if _, ok := seen[line]; ok {
			continue
		}
		result = append(result, line)
		seen[line] = struct{}{}
	}

	return result
}

// Subtract returns the lines of current not present in owned, in order.
func Subtract(current, owned []string) []string {
	drop := make(map[string]struct{}, len(owned))
	for _, line := range owned {
		drop[line] = struct{}{}
	}

	remaining := make([]string, 0, len(current))
	for _, line := range current {
		if _, ok := drop[line]; ok {
			continue
		}
		remaining = append(remaining, line)
	}
	return remaining
}
