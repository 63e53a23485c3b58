package tui

import (
	"testing"

	"procsweep/internal/session"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"pads short strings", "vim", 6, "vim   "},
		{"exact fit", "bash", 4, "bash"},
		{"truncates with ellipsis", "chromium-browser", 8, "chromiu…"},
		{"wide runes count as two cells", "日本語", 4, "日…"},
		{"zero width", "bash", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadLeft(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"1.50", 6, "  1.50"},
		{"MEMORY ↓", 10, "  MEMORY ↓"},
		{"toolong", 3, "toolong"},
	}

	for _, tt := range tests {
		if got := padLeft(tt.input, tt.width); got != tt.want {
			t.Errorf("padLeft(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestFormatMemory(t *testing.T) {
	tests := []struct {
		mb   float64
		want string
	}{
		{0, "0.00"},
		{10, "10.00"},
		{1.005, "1.00"},
		{1536.25, "1536.25"},
	}

	for _, tt := range tests {
		if got := formatMemory(tt.mb); got != tt.want {
			t.Errorf("formatMemory(%v) = %q, want %q", tt.mb, got, tt.want)
		}
	}
}

func TestSortIndicator(t *testing.T) {
	if got := sortIndicator(session.SortPID, session.SortPID, true); got != " ↑" {
		t.Errorf("ascending indicator = %q", got)
	}
	if got := sortIndicator(session.SortMemory, session.SortMemory, false); got != " ↓" {
		t.Errorf("descending indicator = %q", got)
	}
	if got := sortIndicator(session.SortName, session.SortPID, true); got != "" {
		t.Errorf("inactive column indicator = %q", got)
	}
}

func TestScrollOffset(t *testing.T) {
	tests := []struct {
		name                    string
		selected, total, height int
		want                    int
	}{
		{"everything fits", 5, 10, 20, 0},
		{"selection in first window", 3, 100, 10, 0},
		{"selection just below window", 10, 100, 10, 1},
		{"selection at the end", 99, 100, 10, 90},
		{"unknown height", 50, 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scrollOffset(tt.selected, tt.total, tt.height); got != tt.want {
				t.Errorf("scrollOffset(%d, %d, %d) = %d, want %d",
					tt.selected, tt.total, tt.height, got, tt.want)
			}
		})
	}
}
