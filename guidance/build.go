package guidance

import (
	"github.com/jacostam/guidance-core/graph"
	"github.com/jacostam/guidance-core/guidancecfg"
	"github.com/jacostam/guidance-core/guidanceerr"
	"github.com/jacostam/guidance-core/model"
)

// Build is the guidance core's single entry point: it turns a raw edge
// sequence into a complete Route (spec.md §2's data flow, C1 through C6).
// It is a pure function of (graph, path) with no I/O and no shared mutable
// state, callable synchronously from any number of concurrent requests
// (spec.md §5).
//
// Build is total over well-formed input: any path of length >= 1 yields a
// Route whose Maneuvers begin with Depart and end with Arrive. Malformed
// input is reported as guidanceerr.InvalidRouteInput (spec.md §7).
func Build(g graph.Graph, cfg *guidancecfg.Config, path []model.EdgeRef) (*model.Route, error) {
	if len(path) == 0 {
		return nil, guidanceerr.New("empty edge sequence")
	}
	if cfg == nil {
		cfg = guidancecfg.DefaultConfig()
	}

	boundaries, err := classifyBoundaries(g, cfg, path)
	if err != nil {
		return nil, err
	}

	steps, err := buildSteps(g, cfg, path, boundaries)
	if err != nil {
		return nil, err
	}

	steps = collapse(cfg, steps)

	maneuvers := assembleManeuvers(steps)
	return aggregateRoute(steps, maneuvers), nil
}
