package commands

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"roommind/internal/application"
	"roommind/internal/domain"
	"roommind/internal/ports"
)

// PlanResult contains the outcome of a planning run
type PlanResult struct {
	Placements []domain.PlacementSuggestion
	Dropped    []domain.DroppedPlacement
	Fallback   bool
	// Skipped is set when another run was already in progress and no
	// request was made. Placements then holds the current set.
	Skipped bool
}

// Planner asks the AI gateway for hologram placements and keeps the latest
// accepted set. It is safe for concurrent use.
type Planner struct {
	ai     ports.AIAssistant
	logger *zap.Logger

	mu      sync.Mutex
	state   domain.PlanState
	current []domain.PlacementSuggestion
}

// NewPlanner creates a new Planner
func NewPlanner(ai ports.AIAssistant, logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{
		ai:      ai,
		logger:  logger,
		current: []domain.PlacementSuggestion{},
	}
}

// Plan requests placements for anchors, filters them and replaces the
// current set. It never fails: on gateway failure the set becomes empty.
func (p *Planner) Plan(ctx context.Context, anchors []domain.SpatialAnchor) PlanResult {
	p.mu.Lock()
	if p.state == domain.PlanRequesting {
		current := p.current
		p.mu.Unlock()
		return PlanResult{Placements: current, Skipped: true}
	}
	p.state = domain.PlanRequesting
	p.mu.Unlock()

	res := p.ai.AnalyzeRoomLayout(ctx, anchors)
	kept, dropped := domain.FilterPlacements(anchors, res.Value)

	for _, err := range application.ReferentialErrors(dropped) {
		p.logger.Info("placement dropped", zap.Error(err))
	}
	for _, d := range dropped {
		if d.Reason == domain.DropIncompatibleType {
			p.logger.Info("placement dropped",
				zap.String("placement", d.Placement.Name),
				zap.String("type", string(d.Placement.Type)),
				zap.String("anchor", d.Placement.ParentAnchorID),
				zap.String("reason", string(d.Reason)))
		}
	}

	p.mu.Lock()
	p.current = kept
	p.state = domain.PlanSucceeded
	p.mu.Unlock()

	return PlanResult{
		Placements: kept,
		Dropped:    dropped,
		Fallback:   res.Fallback,
	}
}

// Current returns the latest accepted placements
func (p *Planner) Current() []domain.PlacementSuggestion {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// State returns the planner's lifecycle state
func (p *Planner) State() domain.PlanState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}
