package canvas

import (
	"math"
	"strings"

	"roommind/internal/domain"
)

// Cell is one character of a rasterized scene
type Cell struct {
	Rune  rune
	Role  domain.Role
	Color string
}

// Raster is a scene drawn onto a character grid
type Raster struct {
	Cols, Rows int
	Cells      [][]Cell
}

// Lines returns the raster as plain text, one string per row
func (r Raster) Lines() []string {
	lines := make([]string, r.Rows)
	for y, row := range r.Cells {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.Rune)
		}
		lines[y] = b.String()
	}
	return lines
}

// String returns the raster as plain text
func (r Raster) String() string {
	return strings.Join(r.Lines(), "\n")
}

type rasterizer struct {
	Raster
	sx, sy float64
}

// Raster size bounds
const (
	MaxCols = 500
	MaxRows = 200
)

// Rasterize draws scene onto a cols x rows grid, clamped to MaxCols x
// MaxRows. Primitives are drawn in scene order, so later ones overwrite
// earlier ones. Grid lines are drawn as dots at their intersections only.
func Rasterize(scene domain.Scene, cols, rows int) Raster {
	cols = min(max(cols, 1), MaxCols)
	rows = min(max(rows, 1), MaxRows)
	r := &rasterizer{
		Raster: Raster{Cols: cols, Rows: rows, Cells: make([][]Cell, rows)},
		sx:     float64(cols-1) / scene.Width,
		sy:     float64(rows-1) / scene.Height,
	}
	for y := range r.Cells {
		r.Cells[y] = make([]Cell, cols)
		for x := range r.Cells[y] {
			r.Cells[y][x] = Cell{Rune: ' '}
		}
	}

	r.drawGrid(scene)
	for _, p := range scene.Primitives {
		switch p.Kind {
		case domain.KindLine:
			if p.Role != domain.RoleGrid {
				r.drawLine(p)
			}
		case domain.KindRect:
			r.drawRect(p)
		case domain.KindCircle:
			r.drawCircle(p)
		case domain.KindText:
			r.drawText(p)
		}
	}
	return r.Raster
}

func (r *rasterizer) cell(pt domain.Point) (int, int) {
	return int(math.Round(pt.X * r.sx)), int(math.Round(pt.Y * r.sy))
}

func (r *rasterizer) set(x, y int, ch rune, p domain.Primitive) {
	if x < 0 || y < 0 || x >= r.Cols || y >= r.Rows {
		return
	}
	r.Cells[y][x] = Cell{Rune: ch, Role: p.Role, Color: Color(p)}
}

func (r *rasterizer) drawGrid(scene domain.Scene) {
	grid := domain.Primitive{Role: domain.RoleGrid}
	for gx := 0.0; gx <= scene.Width; gx += domain.SceneGridStep {
		for gy := 0.0; gy <= scene.Height; gy += domain.SceneGridStep {
			x, y := r.cell(domain.Point{X: gx, Y: gy})
			r.set(x, y, '·', grid)
		}
	}
}

func (r *rasterizer) drawLine(p domain.Primitive) {
	x0, y0 := r.cell(p.Abs(p.From))
	x1, y1 := r.cell(p.Abs(p.To))

	switch {
	case y0 == y1:
		ch := '─'
		if p.Dashed {
			ch = '╌'
		}
		for x := min(x0, x1); x <= max(x0, x1); x++ {
			r.set(x, y0, ch, p)
		}
	case x0 == x1:
		ch := '│'
		if p.Dashed {
			ch = '╎'
		}
		for y := min(y0, y1); y <= max(y0, y1); y++ {
			r.set(x0, y, ch, p)
		}
	default:
		r.bresenham(x0, y0, x1, y1, '*', p)
	}
}

func (r *rasterizer) bresenham(x0, y0, x1, y1 int, ch rune, p domain.Primitive) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		r.set(x0, y0, ch, p)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (r *rasterizer) drawRect(p domain.Primitive) {
	x0, y0 := r.cell(p.Abs(p.From))
	x1, y1 := r.cell(p.Abs(domain.Point{X: p.From.X + p.Width, Y: p.From.Y + p.Height}))

	if y0 == y1 || x0 == x1 {
		for x := x0; x <= x1; x++ {
			for y := y0; y <= y1; y++ {
				r.set(x, y, '▬', p)
			}
		}
		return
	}

	for x := x0 + 1; x < x1; x++ {
		r.set(x, y0, '─', p)
		r.set(x, y1, '─', p)
	}
	for y := y0 + 1; y < y1; y++ {
		r.set(x0, y, '│', p)
		r.set(x1, y, '│', p)
	}
	r.set(x0, y0, '┌', p)
	r.set(x1, y0, '┐', p)
	r.set(x0, y1, '└', p)
	r.set(x1, y1, '┘', p)
}

func (r *rasterizer) drawCircle(p domain.Primitive) {
	c := p.Abs(p.Center)
	ch := 'o'
	if p.Dashed {
		ch = '∙'
	}

	steps := max(16, int(p.Radius*max(r.sx, r.sy)*8))
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x, y := r.cell(domain.Point{X: c.X + p.Radius*math.Cos(a), Y: c.Y + p.Radius*math.Sin(a)})
		r.set(x, y, ch, p)
	}
}

func (r *rasterizer) drawText(p domain.Primitive) {
	runes := []rune(p.Text)
	x, y := r.cell(p.Abs(p.From))
	x -= len(runes) / 2
	for i, ch := range runes {
		r.set(x+i, y, ch, p)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
