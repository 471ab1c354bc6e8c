// Package model defines the data types the guidance core operates over:
// edges, intersection views, turn instructions, steps, and maneuvers
// (spec.md §3). Edges are immutable inputs; everything downstream of them is
// produced once per traversal and never mutated outside its owning stage.
package model

import "github.com/jacostam/guidance-core/geo"

// NodeID identifies a traversed intersection in the map graph.
type NodeID int64

// EdgeRef identifies a directed edge. Two-way roads are modeled as two
// EdgeRefs (spec.md §3's Edge is already directed), one per direction; the
// graph resolves an edge's reverse when one exists.
type EdgeRef int64

// HighwayClass ranks the road class used by the road classifier (C1). Order
// matters: higher-priority classes have smaller values so that plain
// integer comparison reflects priority.
type HighwayClass int8

const (
	HighwayMotorway HighwayClass = iota
	HighwayMotorwayLink
	HighwayTrunk
	HighwayTrunkLink
	HighwayPrimary
	HighwayPrimaryLink
	HighwaySecondary
	HighwaySecondaryLink
	HighwayTertiary
	HighwayTertiaryLink
	HighwayResidential
	HighwayService
	HighwayFerryClass
	HighwayOther
)

// IsLinkClass reports whether a highway class is the "_link" (ramp/slip)
// variant of some mainline class.
func (h HighwayClass) IsLinkClass() bool {
	switch h {
	case HighwayMotorwayLink, HighwayTrunkLink, HighwayPrimaryLink, HighwaySecondaryLink, HighwayTertiaryLink:
		return true
	default:
		return false
	}
}

// TravelMode is the mode of travel an edge carries.
type TravelMode int8

const (
	ModeDriving TravelMode = iota
	ModeFerry
	ModeWalking
	ModeCycling
	ModeUnknown
)

// LaneIndication is a single allowed-turn tag for one lane, e.g. "through",
// "left", "slight_right". The zero value is the unknown/unset indication.
type LaneIndication string

const (
	LaneThrough     LaneIndication = "through"
	LaneLeft        LaneIndication = "left"
	LaneSlightLeft  LaneIndication = "slight_left"
	LaneSharpLeft   LaneIndication = "sharp_left"
	LaneRight       LaneIndication = "right"
	LaneSlightRight LaneIndication = "slight_right"
	LaneSharpRight  LaneIndication = "sharp_right"
	LaneUTurn       LaneIndication = "uturn"
	LaneNone        LaneIndication = ""
)

// Lane describes the turn indications painted on one physical lane, ordered
// left to right, plus whether the lane is currently a valid choice for the
// chosen maneuver.
type Lane struct {
	Indications []LaneIndication
	Valid       bool
}

// Edge is a directed, immutable input edge as described in spec.md §3.
type Edge struct {
	ID EdgeRef

	// From and To are the edge's endpoints; traversal moves From -> To.
	From, To NodeID

	// Name is the road's common name, empty when unnamed.
	Name string

	// Ref is the highway designation (e.g. "A1"), empty when absent.
	Ref string

	HighwayClass HighwayClass
	Mode         TravelMode

	// Lanes is the lane count; 0 means unknown.
	Lanes uint8

	// TurnLanes is the ordered left-to-right lane set, empty when the edge
	// carries no lane-level turn tagging.
	TurnLanes []Lane

	OneWay  bool
	Bridge  bool
	Tunnel  bool
	IsLink  bool
	IsRamp  bool

	Geometry geo.Polyline
}

// IsNamed reports whether the edge carries a usable name or ref.
func (e *Edge) IsNamed() bool {
	return e.Name != "" || e.Ref != ""
}

// HasSameRoad reports whether two edges represent "the same named road" for
// the purposes of name-change suppression and segregated-pair recognition:
// equal name when both are named, or equal ref when both carry one;
// otherwise name and ref must both match exactly, so two edges with no
// name and no ref count as the same road.
func (e *Edge) HasSameRoad(other *Edge) bool {
	if e == nil || other == nil {
		return false
	}
	if e.Name != "" && other.Name != "" {
		return e.Name == other.Name
	}
	if e.Ref != "" && other.Ref != "" {
		return e.Ref == other.Ref
	}
	return e.Name == other.Name && e.Ref == other.Ref
}
