package commands

import (
	"context"

	"roommind/internal/domain"
	"roommind/internal/ports"
)

// CoachCommand produces a motivational tip for the stats view
type CoachCommand struct {
	ai    ports.AIAssistant
	Stats domain.UserStats
}

// NewCoachCommand creates a new CoachCommand
func NewCoachCommand(ai ports.AIAssistant, stats domain.UserStats) *CoachCommand {
	return &CoachCommand{ai: ai, Stats: stats}
}

// Execute runs the coach command
func (c *CoachCommand) Execute(ctx context.Context) string {
	return c.ai.CoachInsight(ctx, c.Stats).Value
}
