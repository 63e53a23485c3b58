package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"procsweep/internal/session"
)

// truncate fits s into maxLen cells, padding with spaces if shorter
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w <= maxLen {
		return s + strings.Repeat(" ", maxLen-w)
	}
	return ansi.Truncate(s, maxLen, "…")
}

// padLeft right-aligns s in a field of width cells
func padLeft(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

// formatMemory renders megabytes with two decimals
func formatMemory(mb float64) string {
	return fmt.Sprintf("%.2f", mb)
}

// sortIndicator returns the arrow shown next to the active column header
func sortIndicator(col session.SortColumn, active session.SortColumn, ascending bool) string {
	if col != active {
		return ""
	}
	if ascending {
		return " ↑"
	}
	return " ↓"
}

// scrollOffset returns the first row to draw so that selected stays inside
// a window of height rows
func scrollOffset(selected, total, height int) int {
	if height <= 0 || total <= height || selected < height {
		return 0
	}
	offset := selected - height + 1
	if offset > total-height {
		offset = total - height
	}
	return offset
}
