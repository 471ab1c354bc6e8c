package model

import "github.com/jacostam/guidance-core/geo"

// Maneuver is a driver-facing action: the write-once output of the
// maneuver assembler (C6). The final list always begins with Depart and
// ends with Arrive (spec.md §3, invariant P1).
type Maneuver struct {
	Location geo.Point
	Type     TurnType
	Modifier TurnModifier

	// Name is the name of the road being entered, i.e. the next step's
	// name. Empty when that road is unnamed; the structural maneuver is
	// still surfaced (spec.md §4.6).
	Name string
	Ref  string
	Mode TravelMode
}

// Route is the complete output of the guidance core: the maneuver list
// plus the aggregate geometry/distance/duration the downstream renderer
// needs (spec.md §6, "Outputs to downstream").
type Route struct {
	Maneuvers []Maneuver
	Geometry  geo.Polyline
	Distance  float64
	Duration  float64
}
