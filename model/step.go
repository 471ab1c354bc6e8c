package model

import "github.com/jacostam/guidance-core/geo"

// Step is one pre-collapse segment bounded by traversed nodes (spec.md §3).
// Steps are created by the step builder (C4) and only ever mutated by the
// collapsing engine (C5) through its documented rewrites.
type Step struct {
	// EntryLocation is where this step begins: the node of the maneuver
	// that opened it (Instruction below), or the route's start point for
	// the first step.
	EntryLocation geo.Point

	// ArrivalLocation is where this step ends: the node of the next
	// maneuver, or the destination for the final step.
	ArrivalLocation geo.Point

	Name string
	Ref  string
	Mode TravelMode

	// Distance and Duration are aggregated across every edge folded into
	// this step.
	Distance float64
	Duration float64

	Instruction TurnInstruction
	View        *IntersectionView

	IsSliproad             bool
	IsLink                 bool
	LaneDescriptionChanged bool

	// Important is set by R7 when another allowed exit at this step's
	// intersection has priority at least as high as the chosen one; it
	// exempts the step from the name-change suppression rules R4/R5.
	Important bool

	Geometry geo.Polyline

	// Edges holds the underlying edge refs folded into this step, in
	// traversal order, so later collapsing rules can inspect the
	// first/last raw edge when names alone are not enough.
	Edges []EdgeRef
}

// Clone returns a shallow copy of s, safe for a collapsing rule to mutate
// without aliasing the input slice's backing step.
func (s *Step) Clone() *Step {
	clone := *s
	clone.Edges = append([]EdgeRef{}, s.Edges...)
	clone.Geometry = append(geo.Polyline{}, s.Geometry...)
	return &clone
}

// MergeInto returns a copy of s with next concatenated onto it: geometry
// concatenates, distance/duration sum, and the arrival location moves to
// next's. s itself is left unchanged.
func (s *Step) MergeInto(next *Step) *Step {
	merged := s.Clone()
	merged.Geometry = merged.Geometry.Concat(next.Geometry)
	merged.Distance += next.Distance
	merged.Duration += next.Duration
	merged.ArrivalLocation = next.ArrivalLocation
	merged.Edges = append(merged.Edges, next.Edges...)
	return merged
}
