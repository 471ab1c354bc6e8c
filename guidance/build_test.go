package guidance

import (
	"testing"

	"github.com/jacostam/guidance-core/guidancecfg"
	"github.com/jacostam/guidance-core/harness"
	"github.com/jacostam/guidance-core/model"
)

// TestBuildBridgeSuppression covers the "bridge on unnamed road" scenario:
// three collinear edges ab (unnamed), bc ("Bridge"), cd (unnamed). a->d
// must yield only Depart and Arrive; the middle "Bridge" name never
// surfaces as its own maneuver.
func TestBuildBridgeSuppression(t *testing.T) {
	g, err := harness.Load("abcd", []harness.Way{
		{Nodes: "ab", HighwayClass: model.HighwayResidential},
		{Nodes: "bc", Name: "Bridge", HighwayClass: model.HighwayResidential},
		{Nodes: "cd", HighwayClass: model.HighwayResidential},
	}, nil)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}

	path, err := g.Route('a', 'd')
	if err != nil {
		t.Fatalf("compute path: %v", err)
	}

	route, err := Build(g, guidancecfg.DefaultConfig(), path)
	if err != nil {
		t.Fatalf("build route: %v", err)
	}

	if len(route.Maneuvers) != 2 {
		t.Fatalf("expected [Depart, Arrive], got %d maneuvers: %+v", len(route.Maneuvers), route.Maneuvers)
	}
	if route.Maneuvers[0].Type != model.Depart {
		t.Errorf("first maneuver should be Depart, got %v", route.Maneuvers[0].Type)
	}
	if route.Maneuvers[1].Type != model.Arrive {
		t.Errorf("last maneuver should be Arrive, got %v", route.Maneuvers[1].Type)
	}
}

// TestBuildCloseTurnsDoNotCollapse covers the "close turns" scenario: two
// right-angle turns at short distance with different street names must
// both survive as independent maneuvers.
func TestBuildCloseTurnsDoNotCollapse(t *testing.T) {
	grid := "ab\n" + " cd"
	g, err := harness.Load(grid, []harness.Way{
		{Nodes: "ab", Name: "First", HighwayClass: model.HighwayResidential},
		{Nodes: "bc", Name: "Second", HighwayClass: model.HighwayResidential},
		{Nodes: "cd", Name: "Third", HighwayClass: model.HighwayResidential},
	}, nil)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}

	path, err := g.Route('a', 'd')
	if err != nil {
		t.Fatalf("compute path: %v", err)
	}

	route, err := Build(g, guidancecfg.DefaultConfig(), path)
	if err != nil {
		t.Fatalf("build route: %v", err)
	}

	if len(route.Maneuvers) != 4 {
		t.Fatalf("expected [Depart, Turn@b, Turn@c, Arrive], got %d: %+v", len(route.Maneuvers), route.Maneuvers)
	}
	if route.Maneuvers[1].Type != model.Turn || route.Maneuvers[1].Modifier != model.Right {
		t.Errorf("second maneuver should be Turn Right, got %v %v", route.Maneuvers[1].Type, route.Maneuvers[1].Modifier)
	}
	if route.Maneuvers[2].Type != model.Turn || route.Maneuvers[2].Modifier != model.Left {
		t.Errorf("third maneuver should be Turn Left, got %v %v", route.Maneuvers[2].Type, route.Maneuvers[2].Modifier)
	}
}

// TestBuildDepartAndArrive is a property test for P1: every route begins
// with Depart and ends with Arrive, regardless of path shape.
func TestBuildDepartAndArrive(t *testing.T) {
	g, err := harness.Load("ab", []harness.Way{
		{Nodes: "ab", Name: "Solo Street", HighwayClass: model.HighwayResidential},
	}, nil)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}

	path, err := g.Route('a', 'b')
	if err != nil {
		t.Fatalf("compute path: %v", err)
	}

	route, err := Build(g, guidancecfg.DefaultConfig(), path)
	if err != nil {
		t.Fatalf("build route: %v", err)
	}

	if len(route.Maneuvers) < 2 {
		t.Fatalf("expected at least Depart+Arrive, got %d", len(route.Maneuvers))
	}
	if route.Maneuvers[0].Type != model.Depart {
		t.Errorf("first maneuver should be Depart, got %v", route.Maneuvers[0].Type)
	}
	if route.Maneuvers[len(route.Maneuvers)-1].Type != model.Arrive {
		t.Errorf("last maneuver should be Arrive, got %v", route.Maneuvers[len(route.Maneuvers)-1].Type)
	}
}

// TestBuildEmptyPathRejected covers spec.md §7: an empty edge sequence is
// reported as a guidanceerr.InvalidRouteInput, never a panic or silent
// empty result.
func TestBuildEmptyPathRejected(t *testing.T) {
	g, err := harness.Load("ab", []harness.Way{
		{Nodes: "ab", Name: "Solo Street", HighwayClass: model.HighwayResidential},
	}, nil)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}

	if _, err := Build(g, guidancecfg.DefaultConfig(), nil); err == nil {
		t.Fatal("expected an error for an empty edge sequence")
	}
}
