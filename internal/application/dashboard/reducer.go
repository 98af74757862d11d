package dashboard

import (
	"fmt"
	"maps"
	"slices"

	"roommind/internal/domain"
)

// Reduce applies an action and returns the next state. It is pure: s is
// left untouched and unchanged notes keep their pointer identity.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SelectTab:
		if slices.Contains(Tabs, a.Tab) {
			s.Tab = a.Tab
		}

	case SelectMode:
		s.Mode = a.Mode
		s.Status = fmt.Sprintf("Mode: %s", a.Mode)

	case SelectNote:
		if _, ok := domain.FindNote(s.Notes, a.ID); ok {
			s.ActiveNoteID = a.ID
		}

	case AddNote:
		if a.Note == nil {
			return s
		}
		s.Notes = append(slices.Clip(s.Notes), a.Note)
		s.ActiveNoteID = a.Note.ID
		s.Status = fmt.Sprintf("Created note: %s", a.Note.Title)

	case EditNoteBody:
		s.Notes = domain.WithBody(s.Notes, a.ID, a.Body)

	case AnchorsUpdated:
		s.Anchors = a.Anchors
		s.AnchorsVersion++
		s.Placements, _ = domain.FilterPlacements(a.Anchors, s.Placements)
		s.Status = fmt.Sprintf("Room updated: %d anchors", len(a.Anchors))

	case Notify:
		s.Status = a.Message

	case RequestSummary:
		if _, ok := domain.FindNote(s.Notes, a.NoteID); ok {
			s = s.begin(SummaryTarget(a.NoteID))
		}

	case SummaryReady:
		var ok bool
		if s, ok = s.finish(SummaryTarget(a.NoteID), a.Seq); !ok {
			return s
		}
		if a.NoteID != s.ActiveNoteID {
			s.Status = "Discarded summary for an inactive note"
			return s
		}
		s.Notes = domain.WithSummary(s.Notes, a.NoteID, a.Summary)
		s.Status = statusFor("Summary ready", a.Fallback)

	case RequestTasks:
		if _, ok := domain.FindNote(s.Notes, a.NoteID); ok {
			s = s.begin(TasksTarget(a.NoteID))
		}

	case TasksReady:
		var ok bool
		if s, ok = s.finish(TasksTarget(a.NoteID), a.Seq); !ok {
			return s
		}
		if a.NoteID != s.ActiveNoteID {
			s.Status = "Discarded tasks for an inactive note"
			return s
		}
		s.Tasks = maps.Clone(s.Tasks)
		if s.Tasks == nil {
			s.Tasks = map[string][]string{}
		}
		s.Tasks[a.NoteID] = a.Tasks
		s.Status = statusFor(fmt.Sprintf("%d tasks extracted", len(a.Tasks)), a.Fallback)

	case RequestPlan:
		if s.Busy(PlanTarget) {
			return s
		}
		s = s.begin(PlanTarget)
		s.PlanState = domain.PlanRequesting
		s.planVersion = s.AnchorsVersion

	case PlanReady:
		var ok bool
		if s, ok = s.finish(PlanTarget, a.Seq); !ok {
			return s
		}
		s.PlanState = domain.PlanSucceeded
		if s.planVersion != s.AnchorsVersion {
			s.Status = "Room changed during analysis, run it again"
			return s
		}
		s.Placements, _ = domain.FilterPlacements(s.Anchors, a.Placements)
		s.Status = statusFor(fmt.Sprintf("%d placements suggested", len(s.Placements)), a.Fallback)

	case RequestCoach:
		s = s.begin(CoachTarget)

	case CoachReady:
		var ok bool
		if s, ok = s.finish(CoachTarget, a.Seq); !ok {
			return s
		}
		s.Insight = a.Insight
	}

	return s
}

// begin marks target as in flight with a fresh sequence number. A target
// already in flight is left as is.
func (s State) begin(target Target) State {
	if s.Busy(target) {
		return s
	}
	s.seq++
	s.inFlight = maps.Clone(s.inFlight)
	if s.inFlight == nil {
		s.inFlight = map[Target]uint64{}
	}
	s.inFlight[target] = s.seq
	return s
}

// finish clears target if seq matches the in-flight request. It reports
// false when the result belongs to no pending request.
func (s State) finish(target Target, seq uint64) (State, bool) {
	pending, ok := s.inFlight[target]
	if !ok || pending != seq {
		return s, false
	}
	s.inFlight = maps.Clone(s.inFlight)
	delete(s.inFlight, target)
	return s, true
}

// FallbackSuffix marks status messages for results that are fallback values
const FallbackSuffix = " (offline fallback)"

func statusFor(msg string, fallback bool) string {
	if fallback {
		return msg + FallbackSuffix
	}
	return msg
}
