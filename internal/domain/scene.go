package domain

import "math"

// Scene canvas size and grid spacing, in room units
const (
	SceneWidth    = 600.0
	SceneHeight   = 400.0
	SceneGridStep = 40.0
)

// Placement layout policy, in room units
const (
	boardWidthRatio = 0.6
	boardHeight     = 30.0
	boardInset      = 10.0
	timelineInset   = 8.0
	timelineHeight  = 12.0
	labelGap        = 12.0
)

// PrimitiveKind is the drawable shape of a Primitive
type PrimitiveKind string

const (
	KindLine   PrimitiveKind = "line"
	KindRect   PrimitiveKind = "rect"
	KindCircle PrimitiveKind = "circle"
	KindText   PrimitiveKind = "text"
)

// Role says which layer of the scene a primitive belongs to
type Role string

const (
	RoleGrid      Role = "grid"
	RoleAnchor    Role = "anchor"
	RolePlacement Role = "placement"
	RoleLabel     Role = "label"
)

// Point is a 2D position on the room plan
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Primitive is one drawable element. Geometry is local to Origin.
//
//	line:   From -> To
//	rect:   From is the top-left corner, Width x Height
//	circle: Center, Radius
//	text:   From is the baseline anchor point, centered horizontally
type Primitive struct {
	Kind   PrimitiveKind `json:"kind"`
	Role   Role          `json:"role"`
	Ref    string        `json:"ref,omitempty"`   // anchor ID or placement name
	Style  string        `json:"style,omitempty"` // anchor or hologram type
	Origin Point         `json:"origin"`
	From   Point         `json:"from"`
	To     Point         `json:"to"`
	Width  float64       `json:"width,omitempty"`
	Height float64       `json:"height,omitempty"`
	Center Point         `json:"center"`
	Radius float64       `json:"radius,omitempty"`
	Dashed bool          `json:"dashed,omitempty"`
	Text   string        `json:"text,omitempty"`
}

// Abs translates a local point by the primitive origin
func (p Primitive) Abs(local Point) Point {
	return Point{X: p.Origin.X + local.X, Y: p.Origin.Y + local.Y}
}

// Scene is a retained-mode description of the room plan
type Scene struct {
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Primitives []Primitive `json:"primitives"`
}

// ByRole returns the primitives with the given role, in scene order
func (s Scene) ByRole(role Role) []Primitive {
	var out []Primitive
	for _, p := range s.Primitives {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out
}

// RenderScene builds the room plan for anchors and placements. It is pure:
// identical inputs yield identical scenes. Placements whose parent anchor is
// missing are skipped.
func RenderScene(anchors []SpatialAnchor, placements []PlacementSuggestion) Scene {
	s := Scene{Width: SceneWidth, Height: SceneHeight}
	s.Primitives = append(s.Primitives, gridPrimitives()...)

	for _, a := range anchors {
		s.Primitives = append(s.Primitives, anchorPrimitives(a)...)
	}

	idx := IndexAnchors(anchors)
	for _, p := range placements {
		parent, ok := idx[p.ParentAnchorID]
		if !ok {
			continue
		}
		s.Primitives = append(s.Primitives, placementPrimitives(parent, p)...)
	}

	return s
}

func gridPrimitives() []Primitive {
	var out []Primitive
	for x := 0.0; x <= SceneWidth; x += SceneGridStep {
		out = append(out, Primitive{Kind: KindLine, Role: RoleGrid, From: Point{X: x}, To: Point{X: x, Y: SceneHeight}})
	}
	for y := 0.0; y <= SceneHeight; y += SceneGridStep {
		out = append(out, Primitive{Kind: KindLine, Role: RoleGrid, From: Point{Y: y}, To: Point{X: SceneWidth, Y: y}})
	}
	return out
}

func anchorPrimitives(a SpatialAnchor) []Primitive {
	origin := Point{X: a.Position.X, Y: a.Position.Y}
	w, h := a.Dimensions.Width, a.Dimensions.Height
	base := Primitive{Role: RoleAnchor, Ref: a.ID, Style: string(a.Type), Origin: origin}

	shape := base
	label := Primitive{Kind: KindText, Role: RoleLabel, Ref: a.ID, Style: string(a.Type), Origin: origin, Text: a.Label}

	switch a.Type {
	case AnchorWall, AnchorWindow:
		shape.Kind = KindLine
		shape.To = Point{X: w}
		shape.Dashed = a.Type == AnchorWindow
		label.From = Point{X: w / 2, Y: -10}
	case AnchorTable:
		shape.Kind = KindRect
		shape.Width, shape.Height = w, h
		label.From = Point{X: w / 2, Y: h/2 + 5}
	case AnchorOpenSpace:
		shape.Kind = KindCircle
		shape.Center = Point{X: w / 2, Y: h / 2}
		shape.Radius = w / 2
		shape.Dashed = true
		label.From = Point{X: w / 2, Y: h/2 + 5}
	default:
		return []Primitive{label}
	}

	return []Primitive{shape, label}
}

func placementPrimitives(parent SpatialAnchor, p PlacementSuggestion) []Primitive {
	origin := Point{X: parent.Position.X, Y: parent.Position.Y}
	w, h := parent.Dimensions.Width, parent.Dimensions.Height
	shape := Primitive{Role: RolePlacement, Ref: p.Name, Style: string(p.Type), Origin: origin}
	label := Primitive{Kind: KindText, Role: RoleLabel, Ref: p.Name, Style: string(p.Type), Origin: origin, Text: p.Name}

	switch p.Type {
	case HologramBoard:
		bw := w * boardWidthRatio
		shape.Kind = KindRect
		shape.From = Point{X: (w - bw) / 2, Y: boardInset}
		shape.Width, shape.Height = bw, boardHeight
		label.From = Point{X: w / 2, Y: boardInset + boardHeight + labelGap}
	case HologramTimeline:
		shape.Kind = KindRect
		shape.From = Point{X: timelineInset, Y: timelineInset}
		shape.Width = math.Max(0, w-2*timelineInset)
		shape.Height = timelineHeight
		label.From = Point{X: w / 2, Y: timelineInset + timelineHeight + labelGap}
	case HologramSphere:
		r := math.Min(w, h) / 4
		shape.Kind = KindCircle
		shape.Center = Point{X: w / 2, Y: h / 2}
		shape.Radius = r
		label.From = Point{X: w / 2, Y: h/2 + r + labelGap}
	default:
		return nil
	}

	return []Primitive{shape, label}
}
