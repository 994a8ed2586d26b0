// Package core defines the central Graph, Location, and Arc types for waymap:
// a small, static, weighted undirected location map.
//
// A Graph is created with a fixed number of locations and never grows or
// shrinks afterwards. Locations are plain integer indices in [0, LocationCount).
// Connections are weighted undirected links added one at a time; parallel
// connections between the same pair and self-loops are both permitted and are
// stored as-is, never merged.
//
// The adjacency structure is a per-location, insertion-ordered list of Arc
// values (the half of a connection visible from one endpoint). Adding a
// connection (u, v, w) appends Arc{v, w} to u's list and Arc{u, w} to v's,
// so adjacency is symmetric by construction.
//
// Errors:
//
//	ErrNegativeLocationCount - New called with a negative location count.
//	ErrLocationOutOfRange    - a location index falls outside [0, LocationCount).
//	ErrNegativeWeight        - a connection weight is negative.
//
// All validation is fail-fast: a rejected AddConnection leaves the graph
// untouched. Once built, a Graph is safe for concurrent readers; queries never
// mutate it.
package core
