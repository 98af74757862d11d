package canvas

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roommind/internal/domain"
)

func mockScene() domain.Scene {
	return domain.RenderScene(domain.MockAnchors(), []domain.PlacementSuggestion{
		{Name: "Deep Work Board", Type: domain.HologramBoard, ParentAnchorID: "a1"},
		{Name: "Relax Orb", Type: domain.HologramSphere, ParentAnchorID: "a3"},
	})
}

func TestRasterize_Dimensions(t *testing.T) {
	r := Rasterize(mockScene(), 61, 21)

	lines := r.Lines()
	require.Len(t, lines, 21)
	for _, l := range lines {
		assert.Equal(t, 61, len([]rune(l)))
	}
}

func TestRasterize_ClampsSize(t *testing.T) {
	r := Rasterize(mockScene(), 50000, 50000)

	assert.Equal(t, MaxCols, r.Cols)
	assert.Equal(t, MaxRows, r.Rows)
	require.Len(t, r.Cells, MaxRows)
	assert.Len(t, r.Cells[0], MaxCols)
}

func TestRasterize_Deterministic(t *testing.T) {
	assert.Equal(t, Rasterize(mockScene(), 80, 24).String(), Rasterize(mockScene(), 80, 24).String())
}

func TestRasterize_WallAndLabels(t *testing.T) {
	// 61x21 maps 10 room units to one column and 20 to one row.
	r := Rasterize(mockScene(), 61, 21)
	lines := r.Lines()

	wallRow := []rune(lines[3])
	assert.Equal(t, '─', wallRow[10])
	assert.Equal(t, '─', wallRow[30])
	assert.Equal(t, domain.RoleAnchor, r.Cells[3][10].Role)
	assert.Equal(t, Color(domain.Primitive{Style: "Wall"}), r.Cells[3][10].Color)

	assert.Contains(t, r.String(), "Main Wall")
	assert.Contains(t, r.String(), "Work Desk")
}

func TestRasterize_PlacementsDrawn(t *testing.T) {
	withPlacements := Rasterize(mockScene(), 120, 40)
	anchorsOnly := Rasterize(domain.RenderScene(domain.MockAnchors(), nil), 120, 40)

	assert.NotEqual(t, anchorsOnly.String(), withPlacements.String())

	found := false
	for _, row := range withPlacements.Cells {
		for _, c := range row {
			if c.Role == domain.RolePlacement {
				found = true
			}
		}
	}
	assert.True(t, found)
}

func TestRasterize_TinyCanvas(t *testing.T) {
	r := Rasterize(mockScene(), 0, 0)
	assert.Equal(t, 1, r.Cols)
	assert.Equal(t, 1, r.Rows)
}

func TestRasterize_DiagonalLine(t *testing.T) {
	scene := domain.Scene{Width: 100, Height: 100, Primitives: []domain.Primitive{
		{Kind: domain.KindLine, Role: domain.RoleAnchor, From: domain.Point{X: 0, Y: 0}, To: domain.Point{X: 100, Y: 100}},
	}}
	r := Rasterize(scene, 11, 11)

	for i := 0; i < 11; i++ {
		assert.Equal(t, '*', r.Cells[i][i].Rune, "cell %d", i)
	}
}

func TestWriteSVG(t *testing.T) {
	scene := domain.RenderScene([]domain.SpatialAnchor{
		{ID: "w", Type: domain.AnchorWindow, Position: domain.Vec3{X: 10, Y: 20}, Dimensions: domain.Size{Width: 50, Height: 5}, Label: "<North>"},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, scene))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="600" height="400"`))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Equal(t, 27+1, strings.Count(out, "<line "))
	assert.Contains(t, out, `<line x1="10" y1="20" x2="60" y2="20" stroke="#38BDF8" stroke-width="2" stroke-dasharray="6 4"/>`)
	assert.Contains(t, out, "&lt;North&gt;")
}
