package dashboard

import "roommind/internal/domain"

// Action is an event applied to State by Reduce
type Action interface {
	action()
}

type (
	// SelectTab switches the visible tab
	SelectTab struct{ Tab Tab }

	// SelectMode switches the productivity mode
	SelectMode struct{ Mode domain.ProductivityMode }

	// SelectNote makes a note active
	SelectNote struct{ ID string }

	// AddNote appends a note and makes it active
	AddNote struct{ Note *domain.Note }

	// EditNoteBody replaces the body of a note
	EditNoteBody struct {
		ID   string
		Body string
	}

	// AnchorsUpdated replaces the room anchors
	AnchorsUpdated struct{ Anchors []domain.SpatialAnchor }

	// Notify sets the status line
	Notify struct{ Message string }

	// RequestSummary marks a summary of a note as in flight
	RequestSummary struct{ NoteID string }

	// SummaryReady delivers a summary for a previous RequestSummary
	SummaryReady struct {
		NoteID   string
		Seq      uint64
		Summary  string
		Fallback bool
	}

	// RequestTasks marks a task extraction for a note as in flight
	RequestTasks struct{ NoteID string }

	// TasksReady delivers tasks for a previous RequestTasks
	TasksReady struct {
		NoteID   string
		Seq      uint64
		Tasks    []string
		Fallback bool
	}

	// RequestPlan marks a room analysis as in flight
	RequestPlan struct{}

	// PlanReady delivers placements for a previous RequestPlan
	PlanReady struct {
		Seq        uint64
		Placements []domain.PlacementSuggestion
		Fallback   bool
	}

	// RequestCoach marks a coach insight as in flight
	RequestCoach struct{}

	// CoachReady delivers a coach insight
	CoachReady struct {
		Seq      uint64
		Insight  string
		Fallback bool
	}
)

func (SelectTab) action()      {}
func (SelectMode) action()     {}
func (SelectNote) action()     {}
func (AddNote) action()        {}
func (EditNoteBody) action()   {}
func (AnchorsUpdated) action() {}
func (Notify) action()         {}
func (RequestSummary) action() {}
func (SummaryReady) action()   {}
func (RequestTasks) action()   {}
func (TasksReady) action()     {}
func (RequestPlan) action()    {}
func (PlanReady) action()      {}
func (RequestCoach) action()   {}
func (CoachReady) action()     {}
