package schema

import (
	"fmt"
	"math"
	"strings"
)

// Round2 rounds a currency or percentage figure to 2 decimal places, the
// precision handed to presentation layers.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatCurrency renders an amount as a dollar figure with thousands
// separators, e.g. 1234567.8 -> "$1,234,568".
func FormatCurrency(v float64) string {
	neg := v < 0
	whole := int64(math.Round(math.Abs(v)))

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

// FormatPercent renders a ratio already scaled to 0-100, e.g. 23.456 -> "23.5%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// AbbreviateName formats "Sarah Johnson" to "Sarah J" for narrow table
// columns. Single-word names pass through unchanged.
func AbbreviateName(name string) string {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) <= 1 {
		return strings.TrimSpace(name)
	}

	last := []rune(parts[len(parts)-1])
	if len(last) == 0 {
		return strings.Join(parts[:len(parts)-1], " ")
	}
	return strings.Join(parts[:len(parts)-1], " ") + " " + string(last[0])
}
