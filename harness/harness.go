// Package harness builds synthetic intersection graphs from the small
// ASCII-grid-plus-way-table fixture format the guidance core's test suite
// uses to pin down maneuver sequences without any real map data (spec.md
// §6, "testing interface"). It implements graph.Graph directly, so a
// fixture can be fed straight into guidance.Build.
package harness

import (
	"fmt"
	"strings"

	"github.com/jacostam/guidance-core/geo"
	"github.com/jacostam/guidance-core/guidanceerr"
	"github.com/jacostam/guidance-core/model"
)

// CellMeters is the approximate real-world spacing a single grid cell in
// the ASCII fixture represents, used to convert grid coordinates into
// synthetic lon/lat degrees for bearing and distance math.
const CellMeters = 100.0

// cellDeg is the per-cell coordinate step; at small extents the distortion
// from treating it as literal degrees is negligible for fixture purposes.
const cellDeg = CellMeters / 111000.0

// Way describes one edge chain laid across previously placed grid nodes.
// Nodes is the sequence of node letters the way threads through, in
// traversal order; consecutive letters become one directed edge (and its
// reverse, unless OneWay).
type Way struct {
	Nodes        string             `yaml:"nodes"`
	Name         string             `yaml:"name"`
	Ref          string             `yaml:"ref"`
	HighwayClass model.HighwayClass `yaml:"highway_class"`
	Mode         model.TravelMode   `yaml:"mode"`
	Lanes        uint8              `yaml:"lanes"`
	TurnLanes    []model.Lane       `yaml:"turn_lanes"`
	OneWay       bool               `yaml:"one_way"`
	Bridge       bool               `yaml:"bridge"`
	Tunnel       bool               `yaml:"tunnel"`
	IsLink       bool               `yaml:"is_link"`
}

// Restriction pins down a turn-restriction oracle entry: travelling in on
// From and arriving at Via, only the edges in Allow (when non-empty) may
// be taken; entries in Deny are additionally removed regardless.
type Restriction struct {
	From  rune   `yaml:"from"`
	Via   rune   `yaml:"via"`
	Allow []rune `yaml:"allow"`
	Deny  []rune `yaml:"deny"`
}

// Graph is a fixture-backed implementation of graph.Graph.
type Graph struct {
	nodeID    map[rune]model.NodeID
	point     map[model.NodeID]geo.Point
	edges     map[model.EdgeRef]*model.Edge
	incident  map[model.NodeID][]model.EdgeRef
	reverseOf map[model.EdgeRef]model.EdgeRef
	restrict  []compiledRestriction
	nextEdge  model.EdgeRef
}

type compiledRestriction struct {
	from  model.EdgeRef
	via   model.NodeID
	allow map[model.EdgeRef]bool
	deny  map[model.EdgeRef]bool
}

// Load parses an ASCII grid (rows of node letters and spaces) and a list
// of ways threaded across it into a Graph. Node letters must be unique
// within the grid; '.'  or ' ' mark empty cells.
func Load(grid string, ways []Way, restrictions []Restriction) (*Graph, error) {
	g := &Graph{
		nodeID:   map[rune]model.NodeID{},
		point:    map[model.NodeID]geo.Point{},
		edges:    map[model.EdgeRef]*model.Edge{},
		incident: map[model.NodeID][]model.EdgeRef{},
		reverseOf: map[model.EdgeRef]model.EdgeRef{},
	}

	if err := g.placeNodes(grid); err != nil {
		return nil, err
	}
	for _, w := range ways {
		if err := g.addWay(w); err != nil {
			return nil, err
		}
	}
	for _, r := range restrictions {
		if err := g.addRestriction(r); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (g *Graph) placeNodes(grid string) error {
	var id model.NodeID
	for row, line := range strings.Split(grid, "\n") {
		for col, ch := range line {
			if ch == ' ' || ch == '.' || ch == '\t' {
				continue
			}
			if _, exists := g.nodeID[ch]; exists {
				return guidanceerr.New(fmt.Sprintf("duplicate node letter %q in fixture grid", ch))
			}
			g.nodeID[ch] = id
			g.point[id] = geo.Point{Lon: float64(col) * cellDeg, Lat: -float64(row) * cellDeg}
			id++
		}
	}
	if len(g.nodeID) == 0 {
		return guidanceerr.New("fixture grid has no nodes")
	}
	return nil
}

func (g *Graph) addWay(w Way) error {
	letters := []rune(w.Nodes)
	if len(letters) < 2 {
		return guidanceerr.New(fmt.Sprintf("way %q needs at least two nodes", w.Name))
	}

	for i := 0; i < len(letters)-1; i++ {
		from, ok1 := g.nodeID[letters[i]]
		to, ok2 := g.nodeID[letters[i+1]]
		if !ok1 || !ok2 {
			return guidanceerr.New(fmt.Sprintf("way %q references a node not present in the grid", w.Name))
		}

		fwd := g.newEdge(from, to, w)
		if !w.OneWay {
			rev := g.newEdge(to, from, w)
			g.reverseOf[fwd] = rev
			g.reverseOf[rev] = fwd
		}
	}
	return nil
}

func (g *Graph) newEdge(from, to model.NodeID, w Way) model.EdgeRef {
	id := g.nextEdge
	g.nextEdge++

	e := &model.Edge{
		ID:           id,
		From:         from,
		To:           to,
		Name:         w.Name,
		Ref:          w.Ref,
		HighwayClass: w.HighwayClass,
		Mode:         w.Mode,
		Lanes:        w.Lanes,
		TurnLanes:    w.TurnLanes,
		OneWay:       w.OneWay,
		Bridge:       w.Bridge,
		Tunnel:       w.Tunnel,
		IsLink:       w.IsLink,
		Geometry:     geo.Polyline{g.point[from], g.point[to]},
	}
	g.edges[id] = e
	g.incident[from] = append(g.incident[from], id)
	return id
}

func (g *Graph) addRestriction(r Restriction) error {
	fromNode, ok := g.nodeID[r.From]
	if !ok {
		return guidanceerr.New("restriction references a node not present in the grid")
	}
	via, ok := g.nodeID[r.Via]
	if !ok {
		return guidanceerr.New("restriction references a node not present in the grid")
	}

	var fromEdge model.EdgeRef
	found := false
	for _, e := range g.incident[fromNode] {
		if g.edges[e].To == via {
			fromEdge = e
			found = true
			break
		}
	}
	if !found {
		return guidanceerr.New("restriction's from/via pair has no matching edge")
	}

	cr := compiledRestriction{from: fromEdge, via: via}
	if len(r.Allow) > 0 {
		cr.allow = map[model.EdgeRef]bool{}
		for _, letter := range r.Allow {
			for _, e := range g.incident[via] {
				if g.edges[e].To == g.nodeID[letter] {
					cr.allow[e] = true
				}
			}
		}
	}
	if len(r.Deny) > 0 {
		cr.deny = map[model.EdgeRef]bool{}
		for _, letter := range r.Deny {
			for _, e := range g.incident[via] {
				if g.edges[e].To == g.nodeID[letter] {
					cr.deny[e] = true
				}
			}
		}
	}
	g.restrict = append(g.restrict, cr)
	return nil
}

// NodeOf resolves a grid letter to its NodeID, for tests that assemble
// paths directly from way names and letters.
func (g *Graph) NodeOf(letter rune) (model.NodeID, bool) {
	id, ok := g.nodeID[letter]
	return id, ok
}

// EdgeBetween finds the directed edge from one grid node to another, for
// tests assembling an explicit EdgeRef path.
func (g *Graph) EdgeBetween(from, to rune) (model.EdgeRef, bool) {
	fromID, ok := g.nodeID[from]
	if !ok {
		return 0, false
	}
	toID, ok := g.nodeID[to]
	if !ok {
		return 0, false
	}
	for _, e := range g.incident[fromID] {
		if g.edges[e].To == toID {
			return e, true
		}
	}
	return 0, false
}

func (g *Graph) IncidentEdges(n model.NodeID) []model.EdgeRef {
	return g.incident[n]
}

func (g *Graph) AllowedExits(from model.EdgeRef, via model.NodeID) []model.EdgeRef {
	reverse, hasReverse := g.reverseOf[from]

	var out []model.EdgeRef
	for _, e := range g.incident[via] {
		if hasReverse && e == reverse {
			continue
		}
		if g.restricted(from, via, e) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (g *Graph) restricted(from model.EdgeRef, via model.NodeID, candidate model.EdgeRef) bool {
	for _, cr := range g.restrict {
		if cr.from != from || cr.via != via {
			continue
		}
		if cr.allow != nil && !cr.allow[candidate] {
			return true
		}
		if cr.deny != nil && cr.deny[candidate] {
			return true
		}
	}
	return false
}

func (g *Graph) Bearing(e model.EdgeRef, at model.NodeID) float64 {
	edge := g.edges[e]
	if edge == nil {
		return 0
	}
	if edge.From == at {
		return geo.Bearing(g.point[edge.From], g.point[edge.To])
	}
	return geo.Bearing(g.point[edge.From], g.point[edge.To])
}

func (g *Graph) Distance(e model.EdgeRef) float64 {
	edge := g.edges[e]
	if edge == nil {
		return 0
	}
	return geo.HaversineMeters(g.point[edge.From], g.point[edge.To])
}

func (g *Graph) Duration(e model.EdgeRef) float64 {
	const walkingMetersPerSecond = 1.4
	const drivingMetersPerSecond = 13.9
	const ferryMetersPerSecond = 5.0

	edge := g.edges[e]
	if edge == nil {
		return 0
	}
	dist := g.Distance(e)
	switch edge.Mode {
	case model.ModeWalking:
		return dist / walkingMetersPerSecond
	case model.ModeFerry:
		return dist / ferryMetersPerSecond
	default:
		return dist / drivingMetersPerSecond
	}
}

func (g *Graph) Edge(e model.EdgeRef) *model.Edge {
	return g.edges[e]
}
