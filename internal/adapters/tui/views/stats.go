package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"roommind/internal/adapters/tui/styles"
	"roommind/internal/application/dashboard"
)

const barWidth = 30

// Stats renders the weekly mode distribution and the coach insight
func Stats(s dashboard.State, f Frame) string {
	var b strings.Builder

	b.WriteString(RenderSection("Mode Distribution"))
	b.WriteString("\n")
	for _, share := range s.Distribution {
		filled := share.Percent * barWidth / 100
		bar := lipgloss.NewStyle().Foreground(styles.ModeColor(share.Mode)).Render(strings.Repeat("█", filled))
		rest := RenderMuted(strings.Repeat("░", barWidth-filled))
		fmt.Fprintf(&b, "  %s %s%s %3d%%\n", padRight(string(share.Mode), 14), bar, rest, share.Percent)
	}
	b.WriteString("\n")

	b.WriteString(RenderSection("Focus"))
	b.WriteString("\n")
	b.WriteString(quickStats(s.Stats))
	b.WriteString("\n\n")

	b.WriteString(RenderSection("AI Coach"))
	b.WriteString("\n")
	switch {
	case s.Busy(dashboard.CoachTarget):
		b.WriteString(RenderBusy(f, "Asking your coach..."))
	case s.Insight == "":
		b.WriteString(RenderMuted("Nothing generated yet. Press r for a tip."))
	default:
		b.WriteString(styles.Card.Render(wrap(s.Insight, max(f.ContentWidth()-4, 20))))
	}
	b.WriteString("\n\n")
	b.WriteString(RenderHelpLine(Keys.Refresh))

	return b.String()
}
