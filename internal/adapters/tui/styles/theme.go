package styles

import (
	"github.com/charmbracelet/lipgloss"

	"roommind/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#14B8A6") // Teal
	Secondary = lipgloss.Color("#3B82F6") // Blue
	Muted     = lipgloss.Color("#64748B") // Slate
	Warning   = lipgloss.Color("#F59E0B") // Amber
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")
	Panel     = lipgloss.Color("#1E293B")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	Section = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	// Tabs
	Tab = lipgloss.NewStyle().
		Foreground(Muted).
		Padding(0, 2)

	TabActive = lipgloss.NewStyle().
			Foreground(White).
			Background(Primary).
			Bold(true).
			Padding(0, 2)

	// Panels
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Panel).
		Padding(0, 1)

	// List items
	Item = lipgloss.NewStyle()

	ItemSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	Tag = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(Panel).
			Foreground(White).
			Padding(0, 1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Fallback = lipgloss.NewStyle().
			Foreground(Warning)

	Spinner = lipgloss.NewStyle().
		Foreground(Primary)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// ModeColor returns the accent color for a productivity mode
func ModeColor(mode domain.ProductivityMode) lipgloss.Color {
	return lipgloss.Color(mode.Accent())
}

// TimelineColor returns the color for a timeline block kind
func TimelineColor(kind domain.TimelineKind) lipgloss.Color {
	switch kind {
	case domain.TimelineWork:
		return Secondary
	case domain.TimelineMeeting:
		return lipgloss.Color("#A855F7")
	default:
		return Primary
	}
}
