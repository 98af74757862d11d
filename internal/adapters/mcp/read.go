package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"roommind/internal/adapters/canvas"
	"roommind/internal/domain"
)

const (
	defaultCols = 80
	defaultRows = 24
)

// RegisterReadTools adds the tools that only read session state.
func RegisterReadTools(s *server.MCPServer, sess *Session) {
	s.AddTool(listAnchorsTool(), listAnchorsHandler(sess))
	s.AddTool(listNotesTool(), listNotesHandler(sess))
	s.AddTool(renderRoomTool(), renderRoomHandler(sess))
}

// --- list_anchors ---

func listAnchorsTool() mcp.Tool {
	return mcp.NewTool("list_anchors",
		mcp.WithDescription("List the spatial anchors detected in the room (walls, tables, open spaces, windows)."),
	)
}

func listAnchorsHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		anchors, err := sess.anchors(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(anchors) == 0 {
			return mcp.NewToolResultText("No anchors."), nil
		}
		return mcp.NewToolResultText(domain.DescribeAnchors(anchors)), nil
	}
}

// --- list_notes ---

func listNotesTool() mcp.Tool {
	return mcp.NewTool("list_notes",
		mcp.WithDescription("List the notes of the session with their IDs."),
	)
}

func listNotesHandler(sess *Session) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return formatEntities(sess.Notes(), formatNote)
	}
}

// --- render_room ---

func renderRoomTool() mcp.Tool {
	return mcp.NewTool("render_room",
		mcp.WithDescription("Render the room plan with the current hologram placements. Run plan_room first to place holograms."),
		mcp.WithString("format",
			mcp.Description("Output format: text (default), svg or json"),
			mcp.Enum("text", "svg", "json"),
		),
		mcp.WithNumber("cols",
			mcp.Description("Text width in characters (text format only, at most 500)"),
		),
		mcp.WithNumber("rows",
			mcp.Description("Text height in lines (text format only, at most 200)"),
		),
	)
}

func renderRoomHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		anchors, err := sess.anchors(ctx)
		if err != nil {
			return toolError(err)
		}
		scene := domain.RenderScene(anchors, sess.planner.Current())

		switch format := req.GetString("format", "text"); format {
		case "text":
			cols := req.GetInt("cols", defaultCols)
			rows := req.GetInt("rows", defaultRows)
			return mcp.NewToolResultText(canvas.Rasterize(scene, cols, rows).String()), nil
		case "svg":
			var buf bytes.Buffer
			if err := canvas.WriteSVG(&buf, scene); err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(buf.String()), nil
		case "json":
			data, err := json.MarshalIndent(scene, "", "  ")
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(string(data)), nil
		default:
			return toolError(fmt.Errorf("unknown format: %s (expected text, svg or json)", format))
		}
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatNote(n *domain.Note) string {
	line := fmt.Sprintf("%s  %s", n.ID, n.Title)
	if len(n.Tags) > 0 {
		line += "  [" + strings.Join(n.Tags, ", ") + "]"
	}
	if n.HasSummary() {
		line += "  (summarized)"
	}
	return line
}

func formatPlacement(p domain.PlacementSuggestion) string {
	line := fmt.Sprintf("%s (%s on %s)", p.Name, p.Type, p.ParentAnchorID)
	if p.Reason != "" {
		line += ": " + p.Reason
	}
	return line
}
