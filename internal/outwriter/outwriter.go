// Package outwriter has output and writer logic for metrics, rankings and
// source breakdowns.
package outwriter

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// defaultTableWidth is used when the terminal width cannot be detected.
const defaultTableWidth = 100

// LogCacheHit notes that the snapshot came from the memoization store.
func LogCacheHit() {
	_, _ = fmt.Fprintln(os.Stderr, "Snapshot served from cache")
}

// terminalWidth returns the current terminal width, or the default when
// output is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultTableWidth
}

// truncateLabel shortens a label to maxWidth runes with an ellipsis.
func truncateLabel(label string, maxWidth int) string {
	if maxWidth <= 3 {
		return label
	}
	runes := []rune(label)
	if len(runes) <= maxWidth {
		return label
	}
	return string(runes[:maxWidth-3]) + "..."
}
