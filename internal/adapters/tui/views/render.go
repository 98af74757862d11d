package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"roommind/internal/adapters/tui/styles"
	"roommind/internal/application/dashboard"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderSection renders a section heading
func RenderSection(title string) string {
	return styles.Section.Render(title)
}

// RenderMuted renders muted/secondary text
func RenderMuted(text string) string {
	return styles.MutedText.Render(text)
}

// RenderBusy renders a spinner frame followed by a label
func RenderBusy(f Frame, label string) string {
	return styles.Spinner.Render(f.Spinner) + " " + RenderMuted(label)
}

// TabBar renders the tab strip with the active tab highlighted
func TabBar(active dashboard.Tab) string {
	tabs := make([]string, 0, len(dashboard.Tabs))
	for i, t := range dashboard.Tabs {
		label := fmt.Sprintf("%d %s", i+1, t)
		if t == active {
			tabs = append(tabs, styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// StatusLine renders the bottom bar: mode, model and the last status message
func StatusLine(s dashboard.State, f Frame) string {
	mode := lipgloss.NewStyle().
		Background(styles.ModeColor(s.Mode)).
		Foreground(styles.Black).
		Bold(true).
		Padding(0, 1).
		Render(string(s.Mode))

	model := "offline mode"
	if f.Model != "" {
		model = f.Model
	}

	status := s.Status
	statusStyle := styles.StatusText
	if strings.HasSuffix(status, dashboard.FallbackSuffix) {
		statusStyle = styles.Fallback
	}
	if s.AnyBusy() {
		status = f.Spinner + " " + status
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top,
		mode,
		styles.StatusBar.Render(model),
		statusStyle.Render(" "+status),
	)
	return line + "\n" + RenderHelpLine(Keys.Help, Keys.NextTab, Keys.Quit)
}
