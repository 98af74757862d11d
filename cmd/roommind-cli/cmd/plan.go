package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"roommind/internal/adapters/canvas"
	"roommind/internal/application/commands"
	"roommind/internal/domain"
)

var (
	renderFormat string
	renderPlan   bool
	renderCols   int
	renderRows   int
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Suggest hologram placements for the room",
	Long: `Ask the AI where to place the Deep Work board, the timeline and the
focus sphere. Suggestions that reference unknown anchors or the wrong
anchor type are listed as dropped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res := commands.NewPlanner(rt.AI, rt.Logger).Plan(cmd.Context(), seed.Anchors)

		out := cmd.OutOrStdout()
		if len(res.Placements) == 0 {
			fmt.Fprintln(out, "No placements suggested")
		}
		for _, p := range res.Placements {
			fmt.Fprintf(out, "%s (%s on %s): %s\n", p.Name, p.Type, p.ParentAnchorID, p.Reason)
		}
		for _, d := range res.Dropped {
			fmt.Fprintf(out, "dropped: %s (%s on %s): %s\n", d.Placement.Name, d.Placement.Type, d.Placement.ParentAnchorID, d.Reason)
		}
		return nil
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the room plan",
	Long: `Render the room plan as text, SVG or the JSON scene description.

Examples:
  roommind-cli render
  roommind-cli render --plan --format svg > room.svg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		placements := []domain.PlacementSuggestion{}
		if renderPlan {
			placements = commands.NewPlanner(rt.AI, rt.Logger).Plan(cmd.Context(), seed.Anchors).Placements
		}
		return writeScene(cmd.OutOrStdout(), domain.RenderScene(seed.Anchors, placements))
	},
}

func writeScene(w io.Writer, scene domain.Scene) error {
	switch renderFormat {
	case "text":
		_, err := fmt.Fprintln(w, canvas.Rasterize(scene, renderCols, renderRows).String())
		return err
	case "svg":
		return canvas.WriteSVG(w, scene)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(scene)
	default:
		return fmt.Errorf("unknown format %q (expected text, svg or json)", renderFormat)
	}
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "text", "output format: text, svg or json")
	renderCmd.Flags().BoolVar(&renderPlan, "plan", false, "run the placement planner before rendering")
	renderCmd.Flags().IntVar(&renderCols, "cols", 80, "text width in characters")
	renderCmd.Flags().IntVar(&renderRows, "rows", 24, "text height in lines")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(renderCmd)
}
