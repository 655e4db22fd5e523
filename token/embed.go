package token

import (
	"strings"
)

// Dedent removes the whitespace prefix common to every non-blank line of s
// and terminates each line with '\n'.  Relative indentation is kept.
func Dedent(s string) string {
	lines := splitLines(s)
	common := -1
	for _, ln := range lines {
		first := strings.IndexFunc(ln, func(r rune) bool {
			return r != ' ' && r != '\t'
		})
		if first < 0 {
			continue
		}
		if common < 0 || first < common {
			common = first
		}
	}
	var b strings.Builder
	b.Grow(len(s) + 1)
	for _, ln := range lines {
		if common >= 0 && len(ln) > common {
			ln = ln[common:]
		}
		b.WriteString(ln)
		b.WriteByte('\n')
	}
	return b.String()
}

// splitLines splits s on '\n'.  A trailing newline does not produce an empty
// final line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
