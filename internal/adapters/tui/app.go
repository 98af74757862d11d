package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"roommind/internal/adapters/editor"
	"roommind/internal/adapters/tui/styles"
	"roommind/internal/adapters/tui/views"
	"roommind/internal/application/commands"
	"roommind/internal/application/dashboard"
	"roommind/internal/domain"
	"roommind/internal/ports"
)

// App is the main TUI application model. All session data lives in a
// dashboard.State; AI calls run as commands and come back as actions.
type App struct {
	ctx     context.Context
	ai      ports.AIAssistant
	notes   *commands.NoteAssistant
	planner *commands.Planner
	editor  ports.EditorOpener
	logger  *zap.Logger
	updates <-chan []domain.SpatialAnchor
	copy    func(string) error
	model   string

	state    dashboard.State
	spinner  spinner.Model
	input    textinput.Model
	creating bool
	help     bool

	width  int
	height int
}

// Option configures the App
type Option func(*App)

// WithEditor enables editing note bodies in an external editor
func WithEditor(ed ports.EditorOpener) Option {
	return func(a *App) { a.editor = ed }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithAnchorUpdates feeds anchor sets from a watcher into the session
func WithAnchorUpdates(ch <-chan []domain.SpatialAnchor) Option {
	return func(a *App) { a.updates = ch }
}

// WithModelName shows the backing model in the status bar
func WithModelName(name string) Option {
	return func(a *App) { a.model = name }
}

// NewApp creates a new TUI application
func NewApp(ctx context.Context, ai ports.AIAssistant, seed dashboard.Seed, opts ...Option) *App {
	input := textinput.New()
	input.Placeholder = "Note title"
	input.Prompt = "Title: "
	input.CharLimit = 120

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	a := &App{
		ctx:     ctx,
		ai:      ai,
		logger:  zap.NewNop(),
		copy:    clipboard.WriteAll,
		state:   dashboard.New(seed),
		spinner: s,
		input:   input,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.notes = commands.NewNoteAssistant(ai, a.logger)
	a.planner = commands.NewPlanner(ai, a.logger)
	return a
}

// State returns the current session state
func (a *App) State() dashboard.State {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.waitForAnchors()
}

type editorFinishedMsg struct {
	noteID string
	path   string
	err    error
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		if !a.state.AnyBusy() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case dashboard.AnchorsUpdated:
		a.dispatch(msg)
		return a, a.waitForAnchors()

	case dashboard.Action:
		a.dispatch(msg)
		return a, nil

	case editorFinishedMsg:
		return a, a.finishEdit(msg)

	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	return a, nil
}

func (a *App) dispatch(action dashboard.Action) {
	a.state = dashboard.Reduce(a.state, action)
}

func (a *App) notify(format string, args ...any) {
	a.dispatch(dashboard.Notify{Message: fmt.Sprintf(format, args...)})
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.creating {
		return a.handleInput(msg)
	}

	if a.help {
		if key.Matches(msg, views.Keys.Help, views.Keys.Cancel, views.Keys.Quit) {
			a.help = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, views.Keys.Quit):
		return tea.Quit
	case key.Matches(msg, views.Keys.Help):
		a.help = true
		return nil
	case key.Matches(msg, views.Keys.Tab1):
		return a.selectTab(dashboard.TabDashboard)
	case key.Matches(msg, views.Keys.Tab2):
		return a.selectTab(dashboard.TabRoomMap)
	case key.Matches(msg, views.Keys.Tab3):
		return a.selectTab(dashboard.TabNotes)
	case key.Matches(msg, views.Keys.Tab4):
		return a.selectTab(dashboard.TabStats)
	case key.Matches(msg, views.Keys.NextTab):
		return a.selectTab((a.state.Tab + 1) % dashboard.Tab(len(dashboard.Tabs)))
	case key.Matches(msg, views.Keys.PrevTab):
		return a.selectTab((a.state.Tab + dashboard.Tab(len(dashboard.Tabs)) - 1) % dashboard.Tab(len(dashboard.Tabs)))
	}

	switch a.state.Tab {
	case dashboard.TabDashboard:
		switch {
		case key.Matches(msg, views.Keys.Left):
			a.dispatch(dashboard.SelectMode{Mode: domain.PrevMode(a.state.Mode)})
		case key.Matches(msg, views.Keys.Right):
			a.dispatch(dashboard.SelectMode{Mode: domain.NextMode(a.state.Mode)})
		}
	case dashboard.TabRoomMap:
		if key.Matches(msg, views.Keys.Analyze) {
			return a.requestPlan()
		}
	case dashboard.TabNotes:
		return a.handleNotesKey(msg)
	case dashboard.TabStats:
		if key.Matches(msg, views.Keys.Refresh) {
			return a.requestCoach()
		}
	}
	return nil
}

func (a *App) selectTab(tab dashboard.Tab) tea.Cmd {
	a.dispatch(dashboard.SelectTab{Tab: tab})
	if tab == dashboard.TabStats && a.state.Insight == "" {
		return a.requestCoach()
	}
	return nil
}

func (a *App) handleNotesKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, views.Keys.Up):
		a.moveSelection(-1)
	case key.Matches(msg, views.Keys.Down):
		a.moveSelection(1)
	case key.Matches(msg, views.Keys.Summarize):
		return a.requestSummary()
	case key.Matches(msg, views.Keys.Tasks):
		return a.requestTasks()
	case key.Matches(msg, views.Keys.Edit):
		return a.editActive()
	case key.Matches(msg, views.Keys.New):
		a.creating = true
		a.input.SetValue("")
		return a.input.Focus()
	case key.Matches(msg, views.Keys.Copy):
		a.copyActive()
	}
	return nil
}

func (a *App) moveSelection(delta int) {
	notes := a.state.Notes
	if len(notes) == 0 {
		return
	}
	idx := 0
	for i, n := range notes {
		if n.ID == a.state.ActiveNoteID {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(notes)) % len(notes)
	a.dispatch(dashboard.SelectNote{ID: notes[idx].ID})
}

func (a *App) handleInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, views.Keys.Confirm):
		title := strings.TrimSpace(a.input.Value())
		if title == "" {
			return nil
		}
		a.creating = false
		a.input.Blur()
		a.dispatch(dashboard.AddNote{Note: domain.NewNote(title, "", nil, time.Now())})
		return a.editActive()
	case key.Matches(msg, views.Keys.Cancel):
		a.creating = false
		a.input.Blur()
		return nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return cmd
}

// request marks target as in flight and runs fn with the allocated
// sequence number. A target already in flight is not requested again.
func (a *App) request(target dashboard.Target, action dashboard.Action, fn func(seq uint64) tea.Msg) tea.Cmd {
	if a.state.Busy(target) {
		return nil
	}
	a.dispatch(action)
	seq, ok := a.state.Pending(target)
	if !ok {
		return nil
	}
	a.logger.Debug("AI request", zap.String("target", target.Kind.String()), zap.String("note", target.NoteID), zap.Uint64("seq", seq))
	return tea.Batch(a.spinner.Tick, func() tea.Msg { return fn(seq) })
}

func (a *App) requestSummary() tea.Cmd {
	note, ok := a.state.ActiveNote()
	if !ok {
		return nil
	}
	return a.request(dashboard.SummaryTarget(note.ID), dashboard.RequestSummary{NoteID: note.ID}, func(seq uint64) tea.Msg {
		res := a.notes.Summarize(a.ctx, note)
		return dashboard.SummaryReady{NoteID: note.ID, Seq: seq, Summary: res.Value, Fallback: res.Fallback}
	})
}

func (a *App) requestTasks() tea.Cmd {
	note, ok := a.state.ActiveNote()
	if !ok {
		return nil
	}
	return a.request(dashboard.TasksTarget(note.ID), dashboard.RequestTasks{NoteID: note.ID}, func(seq uint64) tea.Msg {
		res := a.ai.ExtractTasks(a.ctx, note.Body)
		return dashboard.TasksReady{NoteID: note.ID, Seq: seq, Tasks: res.Value, Fallback: res.Fallback}
	})
}

func (a *App) requestPlan() tea.Cmd {
	anchors := a.state.Anchors
	return a.request(dashboard.PlanTarget, dashboard.RequestPlan{}, func(seq uint64) tea.Msg {
		res := a.planner.Plan(a.ctx, anchors)
		return dashboard.PlanReady{Seq: seq, Placements: res.Placements, Fallback: res.Fallback}
	})
}

func (a *App) requestCoach() tea.Cmd {
	stats := a.state.Stats
	return a.request(dashboard.CoachTarget, dashboard.RequestCoach{}, func(seq uint64) tea.Msg {
		insight := commands.NewCoachCommand(a.ai, stats).Execute(a.ctx)
		return dashboard.CoachReady{Seq: seq, Insight: insight}
	})
}

func (a *App) waitForAnchors() tea.Cmd {
	if a.updates == nil {
		return nil
	}
	ch := a.updates
	return func() tea.Msg {
		anchors, ok := <-ch
		if !ok {
			return nil
		}
		return dashboard.AnchorsUpdated{Anchors: anchors}
	}
}

func (a *App) editActive() tea.Cmd {
	note, ok := a.state.ActiveNote()
	if !ok {
		return nil
	}
	if a.editor == nil {
		a.notify("No editor configured")
		return nil
	}

	path, err := editor.WriteNoteFile(note.Body)
	if err != nil {
		a.notify("Edit failed: %v", err)
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{noteID: note.ID, path: path, err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{noteID: note.ID, path: path, err: err}
	})
}

func (a *App) finishEdit(msg editorFinishedMsg) tea.Cmd {
	body, readErr := editor.ReadNoteFile(msg.path)
	switch {
	case msg.err != nil:
		a.notify("Editor failed: %v", msg.err)
	case readErr != nil:
		a.notify("Edit failed: %v", readErr)
	default:
		a.dispatch(dashboard.EditNoteBody{ID: msg.noteID, Body: body})
		a.notify("Note saved")
	}
	return nil
}

func (a *App) copyActive() {
	note, ok := a.state.ActiveNote()
	if !ok {
		return
	}
	tasks, _ := a.state.TasksFor(note.ID)
	if !note.HasSummary() && len(tasks) == 0 {
		a.notify("Nothing to copy yet")
		return
	}
	if err := a.copy(views.ClipboardText(note, tasks)); err != nil {
		a.notify("Copy failed: %v", err)
		return
	}
	a.notify("Copied to clipboard")
}

// View renders the current view
func (a *App) View() string {
	if a.help {
		return styles.App.Render(views.Help())
	}

	f := views.Frame{
		Width:   a.width,
		Height:  a.height,
		Spinner: a.spinner.View(),
		Model:   a.model,
	}

	var body string
	switch a.state.Tab {
	case dashboard.TabRoomMap:
		body = views.RoomMap(a.state, f)
	case dashboard.TabNotes:
		body = views.Notes(a.state, f)
	case dashboard.TabStats:
		body = views.Stats(a.state, f)
	default:
		body = views.Dashboard(a.state, f)
	}

	if a.creating {
		body = styles.InputLabel.Render("New note") + "\n" + styles.InputField.Render(a.input.View()) + "\n\n" + body
	}

	return styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		views.TabBar(a.state.Tab),
		"",
		body,
		"",
		views.StatusLine(a.state, f),
	))
}
