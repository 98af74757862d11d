package mcp

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"roommind/internal/application"
	"roommind/internal/application/commands"
	"roommind/internal/application/dashboard"
	"roommind/internal/domain"
	"roommind/internal/ports"
)

// Session is the in-memory state shared by all tool calls of one server
type Session struct {
	ai      ports.AIAssistant
	source  ports.AnchorSource
	planner *commands.Planner
	notes   *commands.NoteAssistant
	stats   domain.UserStats

	mu       sync.Mutex
	noteList []*domain.Note
}

// NewSession creates a session seeded with notes and stats
func NewSession(ai ports.AIAssistant, source ports.AnchorSource, seed dashboard.Seed, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		ai:       ai,
		source:   source,
		planner:  commands.NewPlanner(ai, logger),
		notes:    commands.NewNoteAssistant(ai, logger),
		stats:    seed.Stats,
		noteList: seed.Notes,
	}
}

// Notes returns the current notes
func (s *Session) Notes() []*domain.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.noteList
}

func (s *Session) note(id string) (*domain.Note, error) {
	if err := application.ValidateRequired("noteID", id); err != nil {
		return nil, err
	}
	n, ok := domain.FindNote(s.Notes(), id)
	if !ok {
		return nil, fmt.Errorf("note %s: %w", id, application.ErrNotFound)
	}
	return n, nil
}

func (s *Session) storeSummary(id, summary string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.noteList = domain.WithSummary(s.noteList, id, summary)
}

func (s *Session) anchors(ctx context.Context) ([]domain.SpatialAnchor, error) {
	anchors, err := s.source.Anchors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load anchors: %w", err)
	}
	return anchors, nil
}
