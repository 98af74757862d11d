package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"roommind/internal/adapters/tui/styles"
	"roommind/internal/application/dashboard"
	"roommind/internal/domain"
)

// Dashboard renders the home tab: mode selector, schedule and quick stats
func Dashboard(s dashboard.State, f Frame) string {
	var b strings.Builder

	b.WriteString(RenderSection("Environment Mode"))
	b.WriteString("\n")
	b.WriteString(modeSelector(s.Mode))
	b.WriteString("\n\n")

	b.WriteString(RenderSection("Today's Flow"))
	b.WriteString("\n")
	for _, e := range s.Timeline {
		b.WriteString(timelineLine(e))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(RenderSection("Quick Stats"))
	b.WriteString("\n")
	b.WriteString(quickStats(s.Stats))
	b.WriteString("\n\n")

	b.WriteString(RenderMuted(fmt.Sprintf("Room: %d anchors, %d holograms placed", len(s.Anchors), len(s.Placements))))
	b.WriteString("\n\n")
	b.WriteString(RenderHelpLine(Keys.Left, Keys.Right))

	return b.String()
}

func modeSelector(active domain.ProductivityMode) string {
	parts := make([]string, 0, len(domain.Modes))
	for _, m := range domain.Modes {
		style := lipgloss.NewStyle().Padding(0, 1)
		if m == active {
			style = style.Background(styles.ModeColor(m)).Foreground(styles.Black).Bold(true)
		} else {
			style = style.Foreground(styles.ModeColor(m))
		}
		parts = append(parts, style.Render(string(m)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func timelineLine(e domain.TimelineEntry) string {
	glyph := "○"
	switch e.Status {
	case domain.StatusCompleted:
		glyph = "✓"
	case domain.StatusActive:
		glyph = "▶"
	}

	title := lipgloss.NewStyle().Foreground(styles.TimelineColor(e.Kind)).Render(e.Title)
	if e.Status == domain.StatusActive {
		title = lipgloss.NewStyle().Foreground(styles.TimelineColor(e.Kind)).Bold(true).Render(e.Title)
	}
	return fmt.Sprintf("  %s %s  %s", glyph, RenderMuted(e.Start+"-"+e.End), title)
}

func quickStats(st domain.UserStats) string {
	return fmt.Sprintf("  Focus score %s • Deep work %s • Tasks done %s",
		styles.Success.Render(fmt.Sprintf("%d/100", st.FocusScore)),
		styles.Success.Render(FormatMinutes(st.FocusMinutes)),
		styles.Success.Render(fmt.Sprintf("%d", st.TasksCompleted)),
	)
}

// FormatMinutes renders minutes as "4h 12m"
func FormatMinutes(m int) string {
	if m < 60 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", m/60, m%60)
}
