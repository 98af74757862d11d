// Package dashboard holds the session state of the dashboard and the pure
// reducer that applies actions to it.
package dashboard

import (
	"roommind/internal/domain"
)

// Tab is a top-level view of the dashboard
type Tab int

const (
	TabDashboard Tab = iota
	TabRoomMap
	TabNotes
	TabStats
)

// Tabs lists every tab in display order
var Tabs = []Tab{TabDashboard, TabRoomMap, TabNotes, TabStats}

func (t Tab) String() string {
	switch t {
	case TabRoomMap:
		return "Room Map"
	case TabNotes:
		return "Notes"
	case TabStats:
		return "Stats"
	default:
		return "Dashboard"
	}
}

// TargetKind is the kind of AI operation tracked by the in-flight table
type TargetKind int

const (
	TargetSummary TargetKind = iota
	TargetTasks
	TargetPlan
	TargetCoach
)

func (k TargetKind) String() string {
	switch k {
	case TargetTasks:
		return "tasks"
	case TargetPlan:
		return "plan"
	case TargetCoach:
		return "coach"
	default:
		return "summary"
	}
}

// Target identifies one AI operation. NoteID is empty for room-wide targets.
type Target struct {
	Kind   TargetKind
	NoteID string
}

// SummaryTarget returns the summary target for a note
func SummaryTarget(noteID string) Target { return Target{Kind: TargetSummary, NoteID: noteID} }

// TasksTarget returns the tasks target for a note
func TasksTarget(noteID string) Target { return Target{Kind: TargetTasks, NoteID: noteID} }

var (
	PlanTarget  = Target{Kind: TargetPlan}
	CoachTarget = Target{Kind: TargetCoach}
)

// State is the whole session state of the dashboard. States are values:
// Reduce never modifies the maps or slices of the state it receives.
type State struct {
	Tab  Tab
	Mode domain.ProductivityMode

	Notes        []*domain.Note
	ActiveNoteID string
	Tasks        map[string][]string

	Anchors        []domain.SpatialAnchor
	AnchorsVersion uint64
	Placements     []domain.PlacementSuggestion
	PlanState      domain.PlanState
	planVersion    uint64

	Stats        domain.UserStats
	Timeline     []domain.TimelineEntry
	Distribution []domain.ModeShare
	Insight      string

	inFlight map[Target]uint64
	seq      uint64

	Status string
}

// Seed is the data a session starts from
type Seed struct {
	Notes        []*domain.Note
	Anchors      []domain.SpatialAnchor
	Stats        domain.UserStats
	Timeline     []domain.TimelineEntry
	Distribution []domain.ModeShare
}

// DefaultSeed returns the built-in sample session
func DefaultSeed() Seed {
	return Seed{
		Notes:        domain.MockNotes(),
		Anchors:      domain.MockAnchors(),
		Stats:        domain.MockStats(),
		Timeline:     domain.MockTimeline(),
		Distribution: domain.MockModeDistribution(),
	}
}

// New creates the initial state. The first note, if any, is active.
func New(seed Seed) State {
	s := State{
		Tab:          TabDashboard,
		Mode:         domain.ModeDeepWork,
		Notes:        seed.Notes,
		Tasks:        map[string][]string{},
		Anchors:      seed.Anchors,
		Placements:   []domain.PlacementSuggestion{},
		Stats:        seed.Stats,
		Timeline:     seed.Timeline,
		Distribution: seed.Distribution,
		inFlight:     map[Target]uint64{},
	}
	if len(seed.Notes) > 0 {
		s.ActiveNoteID = seed.Notes[0].ID
	}
	return s
}

// Busy reports whether an operation for target is in flight
func (s State) Busy(target Target) bool {
	_, ok := s.inFlight[target]
	return ok
}

// Pending returns the sequence number of the in-flight request for target
func (s State) Pending(target Target) (uint64, bool) {
	seq, ok := s.inFlight[target]
	return seq, ok
}

// AnyBusy reports whether any AI operation is in flight
func (s State) AnyBusy() bool {
	return len(s.inFlight) > 0
}

// ActiveNote returns the active note
func (s State) ActiveNote() (*domain.Note, bool) {
	return domain.FindNote(s.Notes, s.ActiveNoteID)
}

// TasksFor returns the extracted tasks for a note
func (s State) TasksFor(noteID string) ([]string, bool) {
	tasks, ok := s.Tasks[noteID]
	return tasks, ok
}

// Scene renders the current anchors and placements
func (s State) Scene() domain.Scene {
	return domain.RenderScene(s.Anchors, s.Placements)
}
