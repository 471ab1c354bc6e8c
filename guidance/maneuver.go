package guidance

import (
	"github.com/jacostam/guidance-core/geo"
	"github.com/jacostam/guidance-core/model"
)

// assembleManeuvers implements C6 (spec.md §4.6): it turns the collapsed
// step list into the final maneuver list, prepending Depart and appending
// Arrive. A maneuver's name is the name of the road it enters, i.e. the
// next step's name; the final Arrive carries the last step's own name.
func assembleManeuvers(steps []*model.Step) []model.Maneuver {
	maneuvers := make([]model.Maneuver, 0, len(steps)+1)

	first := steps[0]
	maneuvers = append(maneuvers, model.Maneuver{
		Location: first.EntryLocation,
		Type:     model.Depart,
		Modifier: model.ModifierNone,
		Name:     first.Name,
		Ref:      first.Ref,
		Mode:     first.Mode,
	})

	for i := 1; i < len(steps); i++ {
		s := steps[i]
		maneuvers = append(maneuvers, model.Maneuver{
			Location: s.EntryLocation,
			Type:     s.Instruction.Type,
			Modifier: s.Instruction.Modifier,
			Name:     s.Name,
			Ref:      s.Ref,
			Mode:     s.Mode,
		})
	}

	last := steps[len(steps)-1]
	maneuvers = append(maneuvers, model.Maneuver{
		Location: last.ArrivalLocation,
		Type:     model.Arrive,
		Modifier: arriveSide(last),
		Name:     last.Name,
		Ref:      last.Ref,
		Mode:     last.Mode,
	})

	return maneuvers
}

// arriveSide implements spec.md §4.6's "arrive side": the geometric side
// of the destination relative to the final leg's own bearing, computed
// from the last step's own entry-to-arrival direction since no further
// edge exists to compare against.
func arriveSide(last *model.Step) model.TurnModifier {
	if len(last.Geometry) < 2 {
		return model.Straight
	}
	n := len(last.Geometry)
	approach := geo.Bearing(last.Geometry[n-2], last.Geometry[n-1])
	overall := geo.Bearing(last.EntryLocation, last.ArrivalLocation)
	angle := geo.TurnAngle(overall, approach)
	switch {
	case absFloat(angle) < 10:
		return model.Straight
	case angle > 0:
		return model.SlightRight
	default:
		return model.SlightLeft
	}
}

// aggregateRoute sums distance/duration and concatenates geometry across
// the final step list, the data the downstream renderer needs alongside
// the maneuver list (spec.md §6).
func aggregateRoute(steps []*model.Step, maneuvers []model.Maneuver) *model.Route {
	route := &model.Route{Maneuvers: maneuvers}
	for _, s := range steps {
		route.Distance += s.Distance
		route.Duration += s.Duration
		route.Geometry = route.Geometry.Concat(s.Geometry)
	}
	return route
}
