package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Frame carries what every view needs besides the dashboard state
type Frame struct {
	Width   int
	Height  int
	Spinner string // current spinner frame
	Model   string // model name, empty when offline
}

// ContentWidth returns the usable width inside the app padding
func (f Frame) ContentWidth() int {
	return max(f.Width-4, 20)
}

// truncate shortens s to at most n runes, adding an ellipsis when cut
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

// wrap word-wraps s to width
func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

func padRight(s string, length int) string {
	if n := lipgloss.Width(s); n < length {
		return s + strings.Repeat(" ", length-n)
	}
	return s
}
