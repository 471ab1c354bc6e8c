package harness

import (
	"github.com/jacostam/guidance-core/guidanceerr"
	"github.com/jacostam/guidance-core/model"
)

// Route finds the shortest edge sequence between two grid letters by
// unweighted breadth-first search. It stands in for the contraction-
// hierarchy shortest-path search the guidance core's §6 interface
// excludes: fixtures only need *some* deterministic path, not an optimal
// one by any real cost metric.
func (g *Graph) Route(from, to rune) ([]model.EdgeRef, error) {
	start, ok := g.nodeID[from]
	if !ok {
		return nil, guidanceerr.New("route start node not present in fixture grid")
	}
	goal, ok := g.nodeID[to]
	if !ok {
		return nil, guidanceerr.New("route destination node not present in fixture grid")
	}
	if start == goal {
		return nil, guidanceerr.New("route start and destination are the same node")
	}

	type via struct {
		edge model.EdgeRef
		prev model.NodeID
	}

	visited := map[model.NodeID]via{start: {}}
	queue := []model.NodeID{start}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node == goal {
			break
		}
		for _, e := range g.incident[node] {
			next := g.edges[e].To
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = via{edge: e, prev: node}
			queue = append(queue, next)
		}
	}

	if _, reached := visited[goal]; !reached {
		return nil, guidanceerr.New("no path found between fixture nodes")
	}

	var path []model.EdgeRef
	node := goal
	for node != start {
		step := visited[node]
		path = append([]model.EdgeRef{step.edge}, path...)
		node = step.prev
	}
	return path, nil
}
