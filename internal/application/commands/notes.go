package commands

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"roommind/internal/domain"
	"roommind/internal/ports"
)

const defaultSummarizeLimit = 4

// NoteAssistant runs AI operations over notes without mutating them
type NoteAssistant struct {
	ai     ports.AIAssistant
	logger *zap.Logger
}

// NewNoteAssistant creates a new NoteAssistant
func NewNoteAssistant(ai ports.AIAssistant, logger *zap.Logger) *NoteAssistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoteAssistant{ai: ai, logger: logger}
}

// Summarize returns the summary for a single note
func (n *NoteAssistant) Summarize(ctx context.Context, note *domain.Note) ports.Result[string] {
	return n.ai.Summarize(ctx, note.Body)
}

// SummarizeActive summarizes the note with id activeID and returns a new
// slice where only that note is replaced. Unknown ids return notes as-is.
func (n *NoteAssistant) SummarizeActive(ctx context.Context, notes []*domain.Note, activeID string) []*domain.Note {
	note, ok := domain.FindNote(notes, activeID)
	if !ok {
		n.logger.Debug("no active note to summarize", zap.String("id", activeID))
		return notes
	}

	res := n.Summarize(ctx, note)
	return domain.WithSummary(notes, activeID, res.Value)
}

// ExtractTasksFor returns the tasks found in the note body
func (n *NoteAssistant) ExtractTasksFor(ctx context.Context, note *domain.Note) []string {
	if note == nil {
		return []string{}
	}
	return n.ai.ExtractTasks(ctx, note.Body).Value
}

// SummarizeAll summarizes every note with at most limit calls in flight.
// The result holds a fresh copy of every note.
func (n *NoteAssistant) SummarizeAll(ctx context.Context, notes []*domain.Note, limit int) []*domain.Note {
	if limit < 1 {
		limit = defaultSummarizeLimit
	}

	summaries := make([]string, len(notes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, note := range notes {
		g.Go(func() error {
			summaries[i] = n.Summarize(gctx, note).Value
			return nil
		})
	}
	_ = g.Wait()

	out := notes
	for i, note := range notes {
		out = domain.WithSummary(out, note.ID, summaries[i])
	}
	return out
}
