package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"roommind/internal/adapters/tui/styles"
	"roommind/internal/application/dashboard"
	"roommind/internal/domain"
)

const noteListWidth = 30

// Notes renders the note list next to the active note
func Notes(s dashboard.State, f Frame) string {
	list := noteList(s, f)
	detailWidth := max(f.ContentWidth()-noteListWidth-2, 20)
	detail := noteDetail(s, f, detailWidth)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(noteListWidth).MarginRight(2).Render(list),
		detail,
	)
	return body + "\n\n" + RenderHelpLine(Keys.Up, Keys.Down, Keys.Summarize, Keys.Tasks, Keys.Edit, Keys.New, Keys.Copy)
}

// noteListPageSize fits the list under the header, tab bar and help line
func noteListPageSize(f Frame) int {
	return max(f.Height-12, 3)
}

func noteList(s dashboard.State, f Frame) string {
	var b strings.Builder
	b.WriteString(RenderSection("Notes"))
	b.WriteString("\n")

	if len(s.Notes) == 0 {
		b.WriteString(RenderMuted("No notes. Press n to create one."))
		return b.String()
	}

	active := 0
	for i, n := range s.Notes {
		if n.ID == s.ActiveNoteID {
			active = i
		}
	}
	page := PageFor(active, len(s.Notes), noteListPageSize(f))

	for _, n := range s.Notes[page.Start:page.End] {
		title := truncate(n.Title, noteListWidth-2)
		if title == "" {
			title = "(untitled)"
		}
		if n.ID == s.ActiveNoteID {
			b.WriteString(styles.ItemSelected.Render(padRight(" "+title, noteListWidth)))
		} else {
			b.WriteString(styles.Item.Render(" " + title))
		}
		b.WriteString("\n")
	}
	if page.Count > 1 {
		b.WriteString(RenderMuted(fmt.Sprintf("page %d/%d", page.Number, page.Count)))
	}
	return b.String()
}

func noteDetail(s dashboard.State, f Frame, width int) string {
	note, ok := s.ActiveNote()
	if !ok {
		return RenderMuted("Select a note.")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(note.Title))
	b.WriteString("\n")
	b.WriteString(noteMeta(note))
	b.WriteString("\n\n")
	b.WriteString(wrap(note.Body, width))
	b.WriteString("\n\n")

	b.WriteString(RenderSection("AI Summary"))
	b.WriteString("\n")
	switch {
	case s.Busy(dashboard.SummaryTarget(note.ID)):
		b.WriteString(RenderBusy(f, "Summarizing..."))
	case note.HasSummary():
		b.WriteString(wrap(note.AISummary, width))
	default:
		b.WriteString(RenderMuted("Nothing generated yet. Press s to summarize."))
	}
	b.WriteString("\n\n")

	b.WriteString(RenderSection("Tasks"))
	b.WriteString("\n")
	tasks, extracted := s.TasksFor(note.ID)
	switch {
	case s.Busy(dashboard.TasksTarget(note.ID)):
		b.WriteString(RenderBusy(f, "Extracting tasks..."))
	case !extracted:
		b.WriteString(RenderMuted("Nothing generated yet. Press t to extract tasks."))
	case len(tasks) == 0:
		b.WriteString(RenderMuted("No tasks found."))
	default:
		for _, t := range tasks {
			b.WriteString("  ☐ " + truncate(t, width-4) + "\n")
		}
	}

	return b.String()
}

func noteMeta(n *domain.Note) string {
	var parts []string
	if !n.CreatedAt.IsZero() {
		parts = append(parts, RenderMuted(n.CreatedAt.Format("Jan 2, 2006 15:04")))
	}
	for _, t := range n.Tags {
		parts = append(parts, styles.Tag.Render("#"+t))
	}
	return strings.Join(parts, "  ")
}

// ClipboardText returns what is copied for a note: its summary and tasks
func ClipboardText(n *domain.Note, tasks []string) string {
	var b strings.Builder
	b.WriteString(n.Title)
	b.WriteString("\n")
	if n.HasSummary() {
		b.WriteString("\n")
		b.WriteString(n.AISummary)
		b.WriteString("\n")
	}
	if len(tasks) > 0 {
		b.WriteString("\nTasks:\n")
		for _, t := range tasks {
			fmt.Fprintf(&b, "- [ ] %s\n", t)
		}
	}
	return b.String()
}
