package ports

import "context"

// ResponseShape tells the model which structured output to produce
type ResponseShape int

const (
	// ShapeText is free-form text
	ShapeText ResponseShape = iota
	// ShapeStringList is a JSON array of strings
	ShapeStringList
	// ShapePlacements is a JSON object {"placements": [...]}
	ShapePlacements
)

func (s ResponseShape) String() string {
	switch s {
	case ShapeStringList:
		return "string-list"
	case ShapePlacements:
		return "placements"
	default:
		return "text"
	}
}

// GenerateRequest is a single prompt sent to a TextModel
type GenerateRequest struct {
	Prompt string
	Shape  ResponseShape
}

// TextModel is the remote generative model, consumed as an opaque
// text-completion service.
type TextModel interface {
	// Generate returns the raw text of the model response
	Generate(ctx context.Context, req GenerateRequest) (string, error)

	// Name identifies the backing model, e.g. "gemini-2.5-flash"
	Name() string
}
