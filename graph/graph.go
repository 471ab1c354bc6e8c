// Package graph declares the narrow interface the guidance core consumes
// from its upstream collaborators: map parsing, the contraction-hierarchy
// shortest-path search, and turn-restriction processing (spec.md §6, "the
// external interfaces"). The core never implements any of this; it only
// calls through it.
package graph

import "github.com/jacostam/guidance-core/model"

// Graph is the read-only view of the intersection graph the guidance core
// queries while walking a path. Implementations own the underlying map
// data; the core only ever reads through this interface, and never across
// goroutines concurrently for the same Graph (spec.md §5).
type Graph interface {
	// IncidentEdges enumerates the directed edges departing node n,
	// including the reverse of whichever edge a traversal arrived on, if
	// that reversal is geometrically valid. This is the NodeQuery
	// collaborator of spec.md §6.
	IncidentEdges(n model.NodeID) []model.EdgeRef

	// AllowedExits is the Restrictions oracle of spec.md §6: given the edge
	// a traversal arrived on and the node it arrived at, it returns the
	// subset of IncidentEdges(via) that turn restrictions and one-ways
	// permit as the next edge.
	AllowedExits(from model.EdgeRef, via model.NodeID) []model.EdgeRef

	// Bearing is the deterministic bearing of edge e measured at node at,
	// in degrees [0,360) (spec.md §6).
	Bearing(e model.EdgeRef, at model.NodeID) float64

	// Distance returns the length of edge e in meters.
	Distance(e model.EdgeRef) float64

	// Duration returns the traversal duration of edge e in seconds.
	Duration(e model.EdgeRef) float64

	// Edge resolves e to its attributes.
	Edge(e model.EdgeRef) *model.Edge
}
