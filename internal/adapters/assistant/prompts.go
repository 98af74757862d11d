package assistant

import (
	"fmt"

	"roommind/internal/domain"
)

func buildSummaryPrompt(text string) string {
	return fmt.Sprintf(`Summarize the following note into a concise, actionable bullet point list suitable for a mixed reality heads-up display. Keep it under 50 words.

Note Content:
%s`, text)
}

func buildTasksPrompt(text string) string {
	return fmt.Sprintf(`Extract the actionable tasks from the following note.

Return ONLY a JSON array of short task strings (no markdown, no code blocks), e.g.:
["Review contrast ratios", "Schedule architecture sync"]

If the note contains no tasks, return [].

Note Content:
%s`, text)
}

func buildRoomPrompt(anchors []domain.SpatialAnchor) string {
	return fmt.Sprintf(`I have a room layout with the following spatial anchors (id | label (type) at x,y size WxH):
%s

Suggest the best locations for holographic productivity elements. Use only these hologram types:
- Board: a "Deep Work" task board. Must be placed on a Wall anchor.
- Timeline: a schedule strip. Must be placed on a Table anchor.
- Sphere: a "Relax" ambient focus orb. Must be placed in an OpenSpace anchor.

Return ONLY a JSON object (no markdown, no code blocks):
{"placements": [{"name": "Deep Work Board", "type": "Board", "parentAnchorId": "a1", "reason": "Brief explanation"}]}

parentAnchorId must be one of the anchor ids listed above. Suggest at most one element per anchor.`, domain.DescribeAnchors(anchors))
}

func buildCoachPrompt(stats domain.UserStats) string {
	return fmt.Sprintf(`You are a productivity coach inside a mixed reality focus app.
Today's stats: focus score %d/100, %d minutes of deep work, %d tasks completed.

Give one specific, motivational tip in at most 2 sentences. No preamble, no lists.`,
		stats.FocusScore, stats.FocusMinutes, stats.TasksCompleted)
}
