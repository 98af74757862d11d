package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roommind/internal/application/dashboard"
	"roommind/internal/domain"
	"roommind/internal/ports"
)

type stubAI struct{}

func (stubAI) Summarize(ctx context.Context, text string) ports.Result[string] {
	return ports.OK("- " + text[:5])
}

func (stubAI) ExtractTasks(ctx context.Context, text string) ports.Result[[]string] {
	return ports.OK([]string{"Review contrast"})
}

func (stubAI) AnalyzeRoomLayout(ctx context.Context, anchors []domain.SpatialAnchor) ports.Result[[]domain.PlacementSuggestion] {
	return ports.OK([]domain.PlacementSuggestion{
		{Name: "Deep Work Board", Type: domain.HologramBoard, ParentAnchorID: "a1", Reason: "wall"},
	})
}

func (stubAI) CoachInsight(ctx context.Context, stats domain.UserStats) ports.Result[string] {
	return ports.OK("Keep going.")
}

func (stubAI) IsAvailable() bool { return true }

func newTestApp() *App {
	a := NewApp(context.Background(), stubAI{}, dashboard.DefaultSeed())
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return a
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press sends a key and returns the command it produced
func press(a *App, k string) tea.Cmd {
	_, cmd := a.Update(keyMsg(k))
	return cmd
}

// collect runs cmd and flattens batches into messages
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// deliver feeds the dashboard actions produced by cmd back into the app
func deliver(a *App, cmd tea.Cmd) {
	for _, msg := range collect(cmd) {
		if action, ok := msg.(dashboard.Action); ok {
			a.Update(action)
		}
	}
}

func TestTabSwitching(t *testing.T) {
	a := newTestApp()

	press(a, "2")
	assert.Equal(t, dashboard.TabRoomMap, a.State().Tab)

	press(a, "tab")
	assert.Equal(t, dashboard.TabNotes, a.State().Tab)

	press(a, "1")
	assert.Equal(t, dashboard.TabDashboard, a.State().Tab)
}

func TestModeCycling(t *testing.T) {
	a := newTestApp()

	press(a, "l")
	assert.Equal(t, domain.ModeStudy, a.State().Mode)

	press(a, "h")
	press(a, "h")
	assert.Equal(t, domain.ModeRelax, a.State().Mode)
}

func TestSummarizeActiveNote(t *testing.T) {
	a := newTestApp()
	press(a, "3")

	cmd := press(a, "s")
	require.NotNil(t, cmd)
	assert.True(t, a.State().Busy(dashboard.SummaryTarget("1")))
	assert.Nil(t, press(a, "s"), "second request while busy must be ignored")

	deliver(a, cmd)

	note, ok := a.State().ActiveNote()
	require.True(t, ok)
	assert.Equal(t, "- Need ", note.AISummary)
	assert.False(t, a.State().AnyBusy())
}

func TestSummaryForDeselectedNoteIsDiscarded(t *testing.T) {
	a := newTestApp()
	press(a, "3")

	cmd := press(a, "s")
	press(a, "j")
	require.Equal(t, "2", a.State().ActiveNoteID)

	deliver(a, cmd)

	for _, n := range a.State().Notes {
		assert.Empty(t, n.AISummary, n.ID)
	}
}

func TestExtractTasks(t *testing.T) {
	a := newTestApp()
	press(a, "3")

	deliver(a, press(a, "t"))

	tasks, ok := a.State().TasksFor("1")
	require.True(t, ok)
	assert.Equal(t, []string{"Review contrast"}, tasks)
}

func TestAnalyzeRoom(t *testing.T) {
	a := newTestApp()
	press(a, "2")

	deliver(a, press(a, "a"))

	require.Len(t, a.State().Placements, 1)
	assert.Equal(t, domain.PlanSucceeded, a.State().PlanState)
	assert.Contains(t, a.View(), "Deep Work Board")
}

func TestStatsFetchesInsightOnFirstVisit(t *testing.T) {
	a := newTestApp()

	deliver(a, press(a, "4"))
	assert.Equal(t, "Keep going.", a.State().Insight)

	press(a, "1")
	assert.Nil(t, press(a, "4"), "insight is only fetched once automatically")
}

func TestCopy(t *testing.T) {
	a := newTestApp()
	var copied string
	a.copy = func(s string) error {
		copied = s
		return nil
	}
	press(a, "3")

	press(a, "y")
	assert.Empty(t, copied)
	assert.Equal(t, "Nothing to copy yet", a.State().Status)

	deliver(a, press(a, "s"))
	deliver(a, press(a, "t"))
	press(a, "y")

	assert.Contains(t, copied, "Project Alpha Brainstorm")
	assert.Contains(t, copied, "- [ ] Review contrast")
}

func TestNewNote(t *testing.T) {
	a := newTestApp()
	press(a, "3")

	press(a, "n")
	for _, r := range "Standup" {
		press(a, string(r))
	}
	press(a, "enter")

	require.Len(t, a.State().Notes, 3)
	note, ok := a.State().ActiveNote()
	require.True(t, ok)
	assert.Equal(t, "Standup", note.Title)
	assert.Equal(t, "No editor configured", a.State().Status)
}

func TestNewNoteCancelled(t *testing.T) {
	a := newTestApp()
	press(a, "3")

	press(a, "n")
	press(a, "x")
	press(a, "esc")

	assert.Len(t, a.State().Notes, 2)
	assert.Equal(t, dashboard.TabNotes, a.State().Tab, "keys typed into the input must not switch tabs")
}

func TestAnchorUpdatesAreApplied(t *testing.T) {
	ch := make(chan []domain.SpatialAnchor, 1)
	a := NewApp(context.Background(), stubAI{}, dashboard.DefaultSeed(), WithAnchorUpdates(ch))

	ch <- domain.MockAnchors()[:1]
	deliver(a, a.Init())

	assert.Len(t, a.State().Anchors, 1)
	assert.Equal(t, uint64(1), a.State().AnchorsVersion)
}

func TestHelpToggle(t *testing.T) {
	a := newTestApp()

	press(a, "?")
	assert.Contains(t, a.View(), "RoomMind Help")

	press(a, "2")
	assert.Equal(t, dashboard.TabDashboard, a.State().Tab, "keys are swallowed while help is open")

	press(a, "esc")
	assert.True(t, strings.Contains(a.View(), "Room Map"))
}

func TestQuit(t *testing.T) {
	a := newTestApp()
	msgs := collect(press(a, "q"))
	require.Len(t, msgs, 1)
	assert.IsType(t, tea.QuitMsg{}, msgs[0])
}
