package util

import "strings"

// NormalizeText cleans up text extracted from documents before it is sent for analysis.
// Tabs become spaces, repeated spaces and repeated newlines collapse to one and
// the result is trimmed.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\t", " ")

	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	for _, r := range s {
		if (r == ' ' || r == '\n') && r == prev {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return strings.TrimSpace(b.String())
}
