package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roommind/internal/domain"
)

func planAnchors() []domain.SpatialAnchor {
	return []domain.SpatialAnchor{
		{ID: "w1", Type: domain.AnchorWall, Dimensions: domain.Size{Width: 200, Height: 10}},
		{ID: "t1", Type: domain.AnchorTable, Position: domain.Vec3{X: 100, Y: 150}, Dimensions: domain.Size{Width: 120, Height: 60}},
	}
}

func TestPlanner_Plan(t *testing.T) {
	ai := &fakeAI{placements: []domain.PlacementSuggestion{
		{Name: "Main Board", Type: domain.HologramBoard, ParentAnchorID: "w1"},
		{Name: "Ghost", Type: domain.HologramBoard, ParentAnchorID: "nope"},
		{Name: "Misplaced", Type: domain.HologramSphere, ParentAnchorID: "t1"},
		{Name: "Schedule", Type: domain.HologramTimeline, ParentAnchorID: "t1"},
	}}
	p := NewPlanner(ai, nil)
	require.Equal(t, domain.PlanIdle, p.State())

	res := p.Plan(context.Background(), planAnchors())

	require.Len(t, res.Placements, 2)
	assert.Equal(t, "Main Board", res.Placements[0].Name)
	assert.Equal(t, "Schedule", res.Placements[1].Name)
	require.Len(t, res.Dropped, 2)
	assert.Equal(t, domain.DropUnknownAnchor, res.Dropped[0].Reason)
	assert.Equal(t, domain.DropIncompatibleType, res.Dropped[1].Reason)
	assert.False(t, res.Fallback)
	assert.False(t, res.Skipped)

	assert.Equal(t, domain.PlanSucceeded, p.State())
	assert.Equal(t, res.Placements, p.Current())
}

func TestPlanner_TransportFailure(t *testing.T) {
	p := NewPlanner(&fakeAI{fail: true}, nil)

	res := p.Plan(context.Background(), planAnchors())

	assert.NotNil(t, res.Placements)
	assert.Empty(t, res.Placements)
	assert.True(t, res.Fallback)
	assert.Equal(t, domain.PlanSucceeded, p.State())
}

func TestPlanner_FailureReplacesPreviousSet(t *testing.T) {
	ai := &fakeAI{placements: []domain.PlacementSuggestion{
		{Name: "Main Board", Type: domain.HologramBoard, ParentAnchorID: "w1"},
	}}
	p := NewPlanner(ai, nil)
	p.Plan(context.Background(), planAnchors())
	require.Len(t, p.Current(), 1)

	ai.fail = true
	p.Plan(context.Background(), planAnchors())

	assert.Empty(t, p.Current())
}

func TestPlanner_ConcurrentPlanIsSkipped(t *testing.T) {
	ai := &fakeAI{
		placements: []domain.PlacementSuggestion{{Name: "B", Type: domain.HologramBoard, ParentAnchorID: "w1"}},
		release:    make(chan struct{}),
		started:    make(chan struct{}, 1),
	}
	p := NewPlanner(ai, nil)

	done := make(chan PlanResult)
	go func() { done <- p.Plan(context.Background(), planAnchors()) }()
	<-ai.started

	assert.Equal(t, domain.PlanRequesting, p.State())
	skipped := p.Plan(context.Background(), planAnchors())
	assert.True(t, skipped.Skipped)
	assert.Empty(t, skipped.Placements)

	close(ai.release)
	first := <-done
	assert.False(t, first.Skipped)
	assert.Len(t, first.Placements, 1)
	assert.Equal(t, int32(1), ai.analyzeCalls.Load())
}
