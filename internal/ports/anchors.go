package ports

import (
	"context"

	"roommind/internal/domain"
)

// AnchorSource provides the current set of room anchors
type AnchorSource interface {
	// Anchors returns the current anchors
	Anchors(ctx context.Context) ([]domain.SpatialAnchor, error)

	// Watch emits a full anchor set every time the source changes, until
	// ctx is cancelled. Sources that never change return a nil channel.
	Watch(ctx context.Context) (<-chan []domain.SpatialAnchor, error)
}
