// Package wire marshals a guidance core Route into the OSRM-shaped JSON
// response downstream renderers expect (spec.md §6, "outputs to
// downstream"). It is the only package in this module that encodes JSON;
// everything upstream of it works in model.Route's own types.
package wire

import (
	json "github.com/goccy/go-json"
	geojson "github.com/paulmach/go.geojson"
	"github.com/gotidy/ptr"

	"github.com/jacostam/guidance-core/geo"
	"github.com/jacostam/guidance-core/model"
)

// Maneuver is the wire representation of a model.Maneuver.
type Maneuver struct {
	Location  [2]float64 `json:"location"`
	Type      string     `json:"type"`
	Modifier  *string    `json:"modifier,omitempty"`
	Name      string     `json:"name"`
	Ref       *string    `json:"ref,omitempty"`
	Mode      string     `json:"mode"`
}

// Step mirrors one maneuver plus the geometry it introduces. The guidance
// core's internal Step is pre-collapse and never marshaled directly; this
// type is built from the post-collapse maneuver list.
type Step struct {
	Maneuver Maneuver         `json:"maneuver"`
	Geometry *geojson.Geometry `json:"geometry,omitempty"`
}

// Leg bundles the steps between two consecutive waypoints of a route. The
// guidance core only ever produces a single leg per call; multi-waypoint
// legs are a concern of the excluded routing/HTTP layer (spec.md §1).
type Leg struct {
	Steps    []Step  `json:"steps"`
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
}

// Route is the top-level wire document.
type Route struct {
	Legs     []Leg             `json:"legs"`
	Geometry *geojson.Geometry `json:"geometry,omitempty"`
	Distance float64           `json:"distance"`
	Duration float64           `json:"duration"`
}

// FromRoute builds the wire Route from a model.Route. The aggregate
// geometry is attached at the top level as a GeoJSON geometry encoded via
// paulmach/go.geojson; legs carry no geometry, and each Step's Geometry is
// left nil.
func FromRoute(r *model.Route) *Route {
	out := &Route{
		Distance: r.Distance,
		Duration: r.Duration,
		Geometry: geo.ToGeoJSON(r.Geometry),
	}

	leg := Leg{Distance: r.Distance, Duration: r.Duration}
	for _, m := range r.Maneuvers {
		leg.Steps = append(leg.Steps, Step{Maneuver: fromManeuver(m)})
	}
	out.Legs = []Leg{leg}
	return out
}

func fromManeuver(m model.Maneuver) Maneuver {
	wm := Maneuver{
		Location: [2]float64{m.Location.Lon, m.Location.Lat},
		Type:     m.Type.String(),
		Name:     m.Name,
		Mode:     modeString(m.Mode),
	}
	if mod := m.Modifier.String(); mod != "" {
		wm.Modifier = ptr.String(mod)
	}
	if m.Ref != "" {
		wm.Ref = ptr.String(m.Ref)
	}
	return wm
}

func modeString(m model.TravelMode) string {
	switch m {
	case model.ModeDriving:
		return "driving"
	case model.ModeFerry:
		return "ferry"
	case model.ModeWalking:
		return "walking"
	case model.ModeCycling:
		return "cycling"
	default:
		return "unknown"
	}
}

// Marshal renders a model.Route as the wire JSON document, using the
// teacher's own JSON engine rather than encoding/json.
func Marshal(r *model.Route) ([]byte, error) {
	return json.Marshal(FromRoute(r))
}
