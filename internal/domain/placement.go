package domain

// HologramType is the kind of virtual element a placement renders
type HologramType string

const (
	HologramBoard    HologramType = "Board"
	HologramTimeline HologramType = "Timeline"
	HologramSphere   HologramType = "Sphere"
)

// HologramTypes lists every known hologram type
var HologramTypes = []HologramType{HologramBoard, HologramTimeline, HologramSphere}

// Valid reports whether t is one of the known hologram types
func (t HologramType) Valid() bool {
	switch t {
	case HologramBoard, HologramTimeline, HologramSphere:
		return true
	}
	return false
}

// CompatibleAnchor returns the anchor type a hologram of this type belongs on
func (t HologramType) CompatibleAnchor() (AnchorType, bool) {
	switch t {
	case HologramBoard:
		return AnchorWall, true
	case HologramTimeline:
		return AnchorTable, true
	case HologramSphere:
		return AnchorOpenSpace, true
	}
	return "", false
}

// PlacementSuggestion recommends rendering a hologram on a given anchor
type PlacementSuggestion struct {
	Name           string       `json:"name"`
	Type           HologramType `json:"type"`
	ParentAnchorID string       `json:"parentAnchorId"`
	Reason         string       `json:"reason"`
}

// DropReason explains why a placement was filtered out
type DropReason string

const (
	DropUnknownAnchor    DropReason = "unknown anchor"
	DropIncompatibleType DropReason = "incompatible anchor type"
)

// DroppedPlacement is a suggestion rejected by FilterPlacements
type DroppedPlacement struct {
	Placement PlacementSuggestion
	Reason    DropReason
}

// FilterPlacements keeps only placements whose parent anchor exists and whose
// hologram type matches the parent's anchor type. Input order is preserved.
// The returned slice is never nil.
func FilterPlacements(anchors []SpatialAnchor, placements []PlacementSuggestion) ([]PlacementSuggestion, []DroppedPlacement) {
	idx := IndexAnchors(anchors)
	known, dropped := KeepKnownParents(idx, placements)
	kept := make([]PlacementSuggestion, 0, len(known))

	for _, p := range known {
		parent := idx[p.ParentAnchorID]
		want, ok := p.Type.CompatibleAnchor()
		if !ok || want != parent.Type {
			dropped = append(dropped, DroppedPlacement{Placement: p, Reason: DropIncompatibleType})
			continue
		}
		kept = append(kept, p)
	}

	return kept, dropped
}

// KeepKnownParents drops placements whose parent anchor does not exist,
// without checking type compatibility.
func KeepKnownParents(idx AnchorIndex, placements []PlacementSuggestion) ([]PlacementSuggestion, []DroppedPlacement) {
	kept := make([]PlacementSuggestion, 0, len(placements))
	var dropped []DroppedPlacement
	for _, p := range placements {
		if !idx.Has(p.ParentAnchorID) {
			dropped = append(dropped, DroppedPlacement{Placement: p, Reason: DropUnknownAnchor})
			continue
		}
		kept = append(kept, p)
	}
	return kept, dropped
}

// PlanState is the lifecycle of a placement planning run
type PlanState int

const (
	PlanIdle PlanState = iota
	PlanRequesting
	PlanSucceeded
)

func (s PlanState) String() string {
	switch s {
	case PlanRequesting:
		return "requesting"
	case PlanSucceeded:
		return "succeeded"
	default:
		return "idle"
	}
}
