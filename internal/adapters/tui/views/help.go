package views

import (
	"strings"

	"roommind/internal/adapters/tui/styles"
)

// Help renders the key reference
func Help() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("RoomMind Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Mixed reality productivity dashboard"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("1 2 3 4", "Dashboard / Room Map / Notes / Stats"))
	b.WriteString(helpLine("tab / shift+tab", "Next / previous tab"))
	b.WriteString(helpLine("j / k / ↑ / ↓", "Select note"))
	b.WriteString(helpLine("h / l / ← / →", "Change productivity mode"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("AI"))
	b.WriteString("\n")
	b.WriteString(helpLine("a", "Analyze room and place holograms"))
	b.WriteString(helpLine("s", "Summarize the selected note"))
	b.WriteString(helpLine("t", "Extract tasks from the selected note"))
	b.WriteString(helpLine("r", "Refresh the coach tip"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Notes"))
	b.WriteString("\n")
	b.WriteString(helpLine("n", "New note"))
	b.WriteString(helpLine("e", "Edit note in $EDITOR"))
	b.WriteString(helpLine("y", "Copy summary and tasks"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return b.String()
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}
