package domain

import "strings"

// HeaderBlock returns the header lines followed by one blank separator line,
// or nil when there are no header lines.
func HeaderBlock(headLines []string) []string {
	if len(headLines) == 0 {
		return nil
	}
	block := make([]string, 0, len(headLines)+1)
	block = append(block, headLines...)
	return append(block, "")
}

// TableContent joins lines into crontab file content: newline separated with
// a single trailing newline. No lines yield an empty string.
func TableContent(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// SplitTableLines splits installer output into table lines. Lines are trimmed
// and blank lines dropped.
func SplitTableLines(output []string) []string {
	lines := make([]string, 0, len(output))
	for _, raw := range output {
		for _, l := range strings.Split(raw, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				lines = append(lines, l)
			}
		}
	}
	return lines
}
