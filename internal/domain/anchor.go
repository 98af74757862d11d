package domain

import (
	"fmt"
	"strings"
)

// AnchorType is the kind of real-world surface an anchor stands for
type AnchorType string

const (
	AnchorWall      AnchorType = "Wall"
	AnchorTable     AnchorType = "Table"
	AnchorOpenSpace AnchorType = "OpenSpace"
	AnchorWindow    AnchorType = "Window"
)

// AnchorTypes lists every known anchor type in display order
var AnchorTypes = []AnchorType{AnchorWall, AnchorTable, AnchorOpenSpace, AnchorWindow}

// Valid reports whether t is one of the known anchor types
func (t AnchorType) Valid() bool {
	switch t {
	case AnchorWall, AnchorTable, AnchorOpenSpace, AnchorWindow:
		return true
	}
	return false
}

// Vec3 is a position in room space
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Size is the footprint of an anchor
type Size struct {
	Width  float64 `json:"width" yaml:"width" validate:"gt=0"`
	Height float64 `json:"height" yaml:"height" validate:"gt=0"`
}

// SpatialAnchor is a detected (or mocked) surface a hologram can attach to.
// Anchors are treated as immutable once created.
type SpatialAnchor struct {
	ID         string     `json:"id" yaml:"id" validate:"required"`
	Type       AnchorType `json:"type" yaml:"type" validate:"required,oneof=Wall Table OpenSpace Window"`
	Position   Vec3       `json:"position" yaml:"position"`
	Dimensions Size       `json:"dimensions" yaml:"dimensions"`
	Label      string     `json:"label" yaml:"label"`
}

// AnchorIndex maps anchor IDs to anchors for reference checks
type AnchorIndex map[string]SpatialAnchor

// IndexAnchors builds an AnchorIndex. Later duplicates win.
func IndexAnchors(anchors []SpatialAnchor) AnchorIndex {
	idx := make(AnchorIndex, len(anchors))
	for _, a := range anchors {
		idx[a.ID] = a
	}
	return idx
}

// Has reports whether an anchor with the given ID exists
func (idx AnchorIndex) Has(id string) bool {
	_, ok := idx[id]
	return ok
}

// DuplicateAnchorID returns the first repeated anchor ID, or "" if all are unique
func DuplicateAnchorID(anchors []SpatialAnchor) string {
	seen := make(map[string]struct{}, len(anchors))
	for _, a := range anchors {
		if _, ok := seen[a.ID]; ok {
			return a.ID
		}
		seen[a.ID] = struct{}{}
	}
	return ""
}

// DescribeAnchors renders anchors as a compact one-line-per-anchor description
// suitable for a model prompt, e.g.
//
//	a1 | Main Wall (Wall) at 100,50 size 200x10
func DescribeAnchors(anchors []SpatialAnchor) string {
	var b strings.Builder
	for i, a := range anchors {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s | %s (%s) at %s,%s size %sx%s",
			a.ID, a.Label, a.Type,
			formatNum(a.Position.X), formatNum(a.Position.Y),
			formatNum(a.Dimensions.Width), formatNum(a.Dimensions.Height))
	}
	return b.String()
}

func formatNum(f float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
}
