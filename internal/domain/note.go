package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Note is a user note. Notes are shared by pointer and never mutated in
// place; updates produce a copy.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	AISummary string    `json:"aiSummary,omitempty"`
}

// NewNote creates a note with a fresh ID
func NewNote(title, body string, tags []string, now time.Time) *Note {
	return &Note{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(title),
		Body:      body,
		Tags:      append([]string(nil), tags...),
		CreatedAt: now,
	}
}

// HasSummary reports whether an AI summary has been generated
func (n *Note) HasSummary() bool {
	return n.AISummary != ""
}

func (n *Note) clone() *Note {
	c := *n
	c.Tags = append([]string(nil), n.Tags...)
	return &c
}

// FindNote returns the note with the given ID
func FindNote(notes []*Note, id string) (*Note, bool) {
	for _, n := range notes {
		if n.ID == id {
			return n, true
		}
	}
	return nil, false
}

// WithSummary returns a new slice where only the note with the given ID is
// replaced by a copy carrying summary. All other entries are the same
// pointers as in notes. If no note matches, notes is returned unchanged.
func WithSummary(notes []*Note, id, summary string) []*Note {
	return replaceNote(notes, id, func(n *Note) { n.AISummary = summary })
}

// WithBody is like WithSummary but replaces the note body. The previous
// summary is kept; it describes the old body until regenerated.
func WithBody(notes []*Note, id, body string) []*Note {
	return replaceNote(notes, id, func(n *Note) { n.Body = body })
}

func replaceNote(notes []*Note, id string, update func(*Note)) []*Note {
	idx := -1
	for i, n := range notes {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return notes
	}

	out := make([]*Note, len(notes))
	copy(out, notes)
	updated := notes[idx].clone()
	update(updated)
	out[idx] = updated
	return out
}
