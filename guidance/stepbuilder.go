package guidance

import (
	"github.com/jacostam/guidance-core/geo"
	"github.com/jacostam/guidance-core/graph"
	"github.com/jacostam/guidance-core/guidancecfg"
	"github.com/jacostam/guidance-core/guidanceerr"
	"github.com/jacostam/guidance-core/model"
)

// edgeLocation returns the point a node's edge geometry places it at, for
// the given endpoint of that edge (isFrom selects edge.From over edge.To).
func edgeLocation(e *model.Edge, isFrom bool) geo.Point {
	if len(e.Geometry) == 0 {
		return geo.Point{}
	}
	if isFrom {
		return e.Geometry[0]
	}
	return e.Geometry[len(e.Geometry)-1]
}

// turnAtBoundary is the TurnInstruction and IntersectionView computed for
// one traversed internal node of the path, bundled for the step builder.
type turnAtBoundary struct {
	node        model.NodeID
	instruction model.TurnInstruction
	view        *model.IntersectionView
	laneChanged bool
}

// classifyBoundaries runs C2 and C3 over every internal node of path,
// returning one turnAtBoundary per node between consecutive edges.
func classifyBoundaries(g graph.Graph, cfg *guidancecfg.Config, path []model.EdgeRef) ([]turnAtBoundary, error) {
	boundaries := make([]turnAtBoundary, 0, len(path)-1)

	for i := 0; i < len(path)-1; i++ {
		in, out := path[i], path[i+1]
		inEdge, outEdge := g.Edge(in), g.Edge(out)
		if inEdge == nil || outEdge == nil {
			return nil, guidanceerr.New("path references an edge missing from the graph")
		}
		if inEdge.To != outEdge.From {
			return nil, guidanceerr.New("path is not contiguous: consecutive edges do not share a node")
		}
		node := inEdge.To

		view, err := buildIntersectionView(g, node, in, out)
		if err != nil {
			return nil, err
		}

		inBearing := g.Bearing(in, node)
		outBearing := g.Bearing(out, node)
		instr, laneChanged := classifyTurn(cfg, view, inEdge, outEdge, inBearing, outBearing)

		boundaries = append(boundaries, turnAtBoundary{node: node, instruction: instr, view: view, laneChanged: laneChanged})
	}

	return boundaries, nil
}

// buildSteps implements C4 (spec.md §4.4): it walks the edge sequence and
// opens a new step whenever the traversed node's turn is not NoTurn, the
// travel mode changes, or the name/ref changes on a non-suppressed turn.
func buildSteps(g graph.Graph, cfg *guidancecfg.Config, path []model.EdgeRef, boundaries []turnAtBoundary) ([]*model.Step, error) {
	if len(path) == 0 {
		return nil, guidanceerr.New("empty edge sequence")
	}

	first := g.Edge(path[0])
	if first == nil {
		return nil, guidanceerr.New("path references an edge missing from the graph")
	}

	current := newStepFromEdge(g, path[0])
	steps := make([]*model.Step, 0, len(path))

	for i := 1; i < len(path); i++ {
		edge := g.Edge(path[i])
		if edge == nil {
			return nil, guidanceerr.New("path references an edge missing from the graph")
		}
		b := boundaries[i-1]

		modeChanged := edge.Mode != current.Mode
		nameChanged := edge.Name != current.Name || edge.Ref != current.Ref
		opensNewStep := b.instruction.Type != model.NoTurn || modeChanged ||
			(nameChanged && b.instruction.Type != model.Suppressed)

		if opensNewStep {
			current.ArrivalLocation = edgeLocation(edge, true)
			steps = append(steps, current)
			prevArrival := current.ArrivalLocation
			current = newStepFromEdge(g, path[i])
			current.EntryLocation = prevArrival
			current.Instruction = b.instruction
			current.View = b.view
			current.LaneDescriptionChanged = b.laneChanged
		} else {
			appendEdge(current, g, path[i])
		}
	}

	current.ArrivalLocation = edgeLocation(g.Edge(path[len(path)-1]), false)
	steps = append(steps, current)

	return steps, nil
}

func newStepFromEdge(g graph.Graph, e model.EdgeRef) *model.Step {
	edge := g.Edge(e)
	step := &model.Step{
		Name:      edge.Name,
		Ref:       edge.Ref,
		Mode:      edge.Mode,
		Distance:  g.Distance(e),
		Duration:  g.Duration(e),
		Geometry:  append(geo.Polyline{}, edge.Geometry...),
		IsLink:    edge.IsLink || edge.HighwayClass.IsLinkClass(),
		Edges:     []model.EdgeRef{e},
	}
	step.EntryLocation = edgeLocation(edge, true)
	return step
}

func appendEdge(step *model.Step, g graph.Graph, e model.EdgeRef) {
	edge := g.Edge(e)
	step.Distance += g.Distance(e)
	step.Duration += g.Duration(e)
	step.Geometry = step.Geometry.Concat(edge.Geometry)
	step.Edges = append(step.Edges, e)
}
