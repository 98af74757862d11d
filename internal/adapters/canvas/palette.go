// Package canvas turns a domain.Scene into terminal text or SVG.
package canvas

import "roommind/internal/domain"

// Color returns the hex color used to draw a primitive
func Color(p domain.Primitive) string {
	if p.Role == domain.RoleGrid {
		return "#1E293B"
	}
	switch p.Style {
	case string(domain.AnchorWall):
		return "#94A3B8"
	case string(domain.AnchorTable):
		return "#64748B"
	case string(domain.AnchorOpenSpace):
		return "#14B8A6"
	case string(domain.AnchorWindow):
		return "#38BDF8"
	case string(domain.HologramBoard):
		return "#3B82F6"
	case string(domain.HologramTimeline):
		return "#A855F7"
	case string(domain.HologramSphere):
		return "#4ADE80"
	default:
		return "#E2E8F0"
	}
}
