package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"roommind/internal/adapters/canvas"
	"roommind/internal/application/dashboard"
	"roommind/internal/domain"
)

// RoomMap renders the room plan with the suggested holograms
func RoomMap(s dashboard.State, f Frame) string {
	var b strings.Builder

	b.WriteString(RenderSection("Spatial Room Map"))
	b.WriteString("\n")

	cols := f.ContentWidth()
	rows := max(f.Height-16-len(s.Placements), 8)
	b.WriteString(ColorRaster(canvas.Rasterize(s.Scene(), cols, rows)))
	b.WriteString("\n")
	b.WriteString(legend())
	b.WriteString("\n\n")

	b.WriteString(RenderSection("Spatial Intelligence"))
	b.WriteString("\n")
	switch {
	case s.Busy(dashboard.PlanTarget):
		b.WriteString(RenderBusy(f, "Analyzing room layout..."))
	case s.PlanState == domain.PlanIdle:
		b.WriteString(RenderMuted("Press a to suggest hologram placements for this room."))
	case len(s.Placements) == 0:
		b.WriteString(RenderMuted("No placements suggested."))
	default:
		for _, p := range s.Placements {
			b.WriteString(placementLine(p, cols))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(RenderHelpLine(Keys.Analyze))

	return b.String()
}

func placementLine(p domain.PlacementSuggestion, width int) string {
	color := lipgloss.Color(canvas.Color(domain.Primitive{Style: string(p.Type)}))
	name := lipgloss.NewStyle().Foreground(color).Bold(true).Render(p.Name)
	where := RenderMuted(fmt.Sprintf("(%s on %s)", p.Type, p.ParentAnchorID))
	line := fmt.Sprintf("  • %s %s", name, where)
	if p.Reason != "" {
		line += "\n    " + RenderMuted(truncate(p.Reason, max(width-4, 10)))
	}
	return line
}

// ColorRaster renders a raster, coloring runs of cells that share a color
func ColorRaster(r canvas.Raster) string {
	lines := make([]string, r.Rows)
	for y, row := range r.Cells {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].Color == row[start].Color {
				continue
			}
			b.WriteString(colorRun(row[start:x]))
			start = x
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func colorRun(cells []canvas.Cell) string {
	runes := make([]rune, len(cells))
	for i, c := range cells {
		runes[i] = c.Rune
	}
	if cells[0].Color == "" {
		return string(runes)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(cells[0].Color)).Render(string(runes))
}

func legend() string {
	entries := []struct {
		glyph string
		style string
		label string
	}{
		{"─", string(domain.AnchorWall), "wall"},
		{"┌┐", string(domain.AnchorTable), "table"},
		{"∙", string(domain.AnchorOpenSpace), "open space"},
		{"╌", string(domain.AnchorWindow), "window"},
		{"┌┐", string(domain.HologramBoard), "board"},
		{"▬", string(domain.HologramTimeline), "timeline"},
		{"o", string(domain.HologramSphere), "sphere"},
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		c := lipgloss.Color(canvas.Color(domain.Primitive{Style: e.style}))
		parts = append(parts, lipgloss.NewStyle().Foreground(c).Render(e.glyph)+" "+RenderMuted(e.label))
	}
	return strings.Join(parts, "  ")
}
