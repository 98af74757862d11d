package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"roommind/internal/application/commands"
)

// RegisterAITools adds the tools backed by the AI gateway. AI failures are
// reported as their fallback values, not as tool errors.
func RegisterAITools(s *server.MCPServer, sess *Session) {
	s.AddTool(summarizeTool(), summarizeHandler(sess))
	s.AddTool(extractTasksTool(), extractTasksHandler(sess))
	s.AddTool(planRoomTool(), planRoomHandler(sess))
	s.AddTool(coachTool(), coachHandler(sess))
}

// --- summarize_note ---

func summarizeTool() mcp.Tool {
	return mcp.NewTool("summarize_note",
		mcp.WithDescription("Summarize a note into a short actionable bullet list. The summary is kept on the note for the rest of the session."),
		mcp.WithString("note_id",
			mcp.Description("ID of the note (see list_notes)"),
			mcp.Required(),
		),
	)
}

func summarizeHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		note, err := sess.note(req.GetString("note_id", ""))
		if err != nil {
			return toolError(err)
		}

		res := sess.notes.Summarize(ctx, note)
		sess.storeSummary(note.ID, res.Value)
		return mcp.NewToolResultText(res.Value), nil
	}
}

// --- extract_tasks ---

func extractTasksTool() mcp.Tool {
	return mcp.NewTool("extract_tasks",
		mcp.WithDescription("Extract actionable tasks from a note, or from free text."),
		mcp.WithString("note_id",
			mcp.Description("ID of the note to read"),
		),
		mcp.WithString("text",
			mcp.Description("Free text to read instead of a note"),
		),
	)
}

func extractTasksHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		noteID := req.GetString("note_id", "")
		text := req.GetString("text", "")

		var tasks []string
		switch {
		case noteID != "":
			note, err := sess.note(noteID)
			if err != nil {
				return toolError(err)
			}
			tasks = sess.notes.ExtractTasksFor(ctx, note)
		case strings.TrimSpace(text) != "":
			tasks = sess.ai.ExtractTasks(ctx, text).Value
		default:
			return toolError(fmt.Errorf("note_id or text is required"))
		}

		if len(tasks) == 0 {
			return mcp.NewToolResultText("No tasks found."), nil
		}
		var sb strings.Builder
		for _, t := range tasks {
			fmt.Fprintf(&sb, "- %s\n", t)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- plan_room ---

func planRoomTool() mcp.Tool {
	return mcp.NewTool("plan_room",
		mcp.WithDescription("Ask the AI where to place holographic productivity elements in the room. Replaces the current placements."),
	)
}

func planRoomHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		anchors, err := sess.anchors(ctx)
		if err != nil {
			return toolError(err)
		}

		res := sess.planner.Plan(ctx, anchors)

		var sb strings.Builder
		if res.Skipped {
			sb.WriteString("Analysis already in progress. Current placements:\n")
		}
		if len(res.Placements) == 0 {
			sb.WriteString("No placements suggested.\n")
		}
		for _, p := range res.Placements {
			sb.WriteString(formatPlacement(p))
			sb.WriteByte('\n')
		}
		for _, d := range res.Dropped {
			fmt.Fprintf(&sb, "dropped: %s (%s)\n", formatPlacement(d.Placement), d.Reason)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- coach_insight ---

func coachTool() mcp.Tool {
	return mcp.NewTool("coach_insight",
		mcp.WithDescription("Get a short motivational productivity tip based on today's focus stats."),
	)
}

func coachHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(commands.NewCoachCommand(sess.ai, sess.stats).Execute(ctx)), nil
	}
}
