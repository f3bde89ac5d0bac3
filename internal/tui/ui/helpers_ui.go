package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncateString flattens s to one line and cuts it to maxLen cells,
// appending "…" if truncated. Wide characters count as two cells.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	s = strings.Join(strings.Fields(s), " ")
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}

	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxLen-1 { // -1 for ellipsis
			return s[:i] + "…"
		}
		w += rw
	}

	return s
}
