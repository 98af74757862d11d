package ports

import (
	"context"

	"roommind/internal/domain"
)

// Result is the outcome of a best-effort AI call. Value is always usable:
// when Fallback is true it holds the degraded value and Cause says why.
type Result[T any] struct {
	Value    T
	Fallback bool
	Cause    error // for logging only, never shown to the user
}

// OK wraps a value produced by the model
func OK[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// FallbackOf wraps a degraded value and the failure that caused it
func FallbackOf[T any](v T, cause error) Result[T] {
	return Result[T]{Value: v, Fallback: true, Cause: cause}
}

// AIAssistant defines the AI gateway used by the dashboard. Every method
// always returns a usable value; failures are folded into Result.Fallback.
type AIAssistant interface {
	// Summarize condenses a note body into a short actionable bullet list
	Summarize(ctx context.Context, text string) Result[string]

	// ExtractTasks pulls actionable tasks out of free text
	ExtractTasks(ctx context.Context, text string) Result[[]string]

	// AnalyzeRoomLayout suggests hologram placements for the given anchors.
	// Returned placements only reference anchors from the input.
	AnalyzeRoomLayout(ctx context.Context, anchors []domain.SpatialAnchor) Result[[]domain.PlacementSuggestion]

	// CoachInsight returns a short motivational tip for the given stats
	CoachInsight(ctx context.Context, stats domain.UserStats) Result[string]

	// IsAvailable returns true if a model is configured
	IsAvailable() bool
}
