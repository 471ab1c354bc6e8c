package guidance

import (
	"sort"

	"github.com/jacostam/guidance-core/geo"
	"github.com/jacostam/guidance-core/graph"
	"github.com/jacostam/guidance-core/guidanceerr"
	"github.com/jacostam/guidance-core/model"
)

// buildIntersectionView implements C2 (spec.md §4.2): it enumerates every
// edge incident to node, sorts them clockwise by bearing measured from the
// reverse of in, and marks which are legal to enter given the restriction
// oracle. The reverse of in is always placed at index 0, and the chosen out
// edge must appear with EntryAllowed true.
func buildIntersectionView(g graph.Graph, node model.NodeID, in, out model.EdgeRef) (*model.IntersectionView, error) {
	incident := g.IncidentEdges(node)
	if len(incident) == 0 {
		return nil, guidanceerr.New("node has no incident edges")
	}

	allowed := map[model.EdgeRef]bool{}
	for _, e := range g.AllowedExits(in, node) {
		allowed[e] = true
	}

	inBearing := g.Bearing(in, node)
	reverseBearing := geo.NormalizeBearingDelta(inBearing + 180)
	if reverseBearing < 0 {
		reverseBearing += 360
	}

	inEdge := g.Edge(in)

	roads := make([]model.IncidentRoad, 0, len(incident))
	uturnIdx := -1
	for i, e := range incident {
		bearing := g.Bearing(e, node)
		deviation := geo.NormalizeBearingDelta(bearing - inBearing)

		candidate := g.Edge(e)
		road := model.IncidentRoad{
			Edge:         e,
			Bearing:      bearing,
			EntryAllowed: allowed[e],
			Priority:     classifyPriority(candidate, inEdge, deviation),
		}
		roads = append(roads, road)

		// The reverse of in is the edge back towards where we came from:
		// same endpoints as in, opposite direction.
		if candidate != nil && inEdge != nil && candidate.To == inEdge.From && candidate.From == inEdge.To {
			uturnIdx = i
		}
	}

	// Sort clockwise by bearing from the reverse of in. The u-turn
	// candidate, by construction, sits at angular distance 0 from the
	// reverse bearing, so a stable sort naturally keeps it first; we
	// reinforce that explicitly below rather than relying on float
	// equality.
	sort.SliceStable(roads, func(i, j int) bool {
		return clockwiseAngle(reverseBearing, roads[i].Bearing) < clockwiseAngle(reverseBearing, roads[j].Bearing)
	})

	if uturnIdx >= 0 {
		moveToFront(roads, incident[uturnIdx])
	} else {
		// No reverse edge exists (e.g. a true one-way dead end): synthesize
		// a non-enterable placeholder so index 0 still represents "back the
		// way we came" per the invariant in spec.md §3.
		roads = append([]model.IncidentRoad{{
			Edge:         in,
			Bearing:      reverseBearing,
			EntryAllowed: false,
			Priority:     model.RoadPriority{ClassRank: model.HighwayOther},
		}}, roads...)
	}

	outIdx := -1
	for i, r := range roads {
		if r.Edge == out {
			outIdx = i
			break
		}
	}
	if outIdx < 0 {
		return nil, guidanceerr.New("chosen departure edge is not incident to the traversed node")
	}
	if !roads[outIdx].EntryAllowed {
		return nil, guidanceerr.New("chosen departure edge is not an allowed exit")
	}

	return &model.IntersectionView{Roads: roads, OutIdx: outIdx}, nil
}

// clockwiseAngle returns the clockwise angular distance in [0,360) from
// from to to.
func clockwiseAngle(from, to float64) float64 {
	d := to - from
	for d < 0 {
		d += 360
	}
	for d >= 360 {
		d -= 360
	}
	return d
}

// moveToFront reorders roads in place so the entry with the given edge ref
// is first, preserving the relative clockwise order of the rest.
func moveToFront(roads []model.IncidentRoad, edge model.EdgeRef) {
	idx := -1
	for i, r := range roads {
		if r.Edge == edge {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return
	}
	found := roads[idx]
	copy(roads[1:idx+1], roads[0:idx])
	roads[0] = found
}
