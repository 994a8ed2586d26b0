// Package core declares Location, Arc, Graph, sentinel errors,
// and the New constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNegativeLocationCount indicates New was called with a negative count.
	ErrNegativeLocationCount = errors.New("core: location count must be non-negative")

	// ErrLocationOutOfRange indicates a location index outside [0, LocationCount).
	ErrLocationOutOfRange = errors.New("core: location index out of range")

	// ErrNegativeWeight indicates a connection with a negative weight.
	// Negative weights break the shortest-path precondition and are rejected
	// at construction time rather than detected later.
	ErrNegativeWeight = errors.New("core: connection weight must be non-negative")
)

// Location identifies a node in the graph by its integer index.
// Valid locations lie in [0, LocationCount); NoLocation marks "none".
type Location int

// NoLocation is the sentinel for an absent location, used by predecessor
// chains and anywhere a Location-valued field may be unset.
const NoLocation Location = -1

// Arc is one endpoint's view of an undirected connection: the neighbor it
// leads to and the weight of the link. Every connection (u, v, w) is stored
// as Arc{v, w} under u and Arc{u, w} under v.
type Arc struct {
	// To is the neighbor location this arc leads to.
	To Location

	// Weight is the non-negative cost of traversing the connection.
	Weight int64
}

// Graph is the in-memory location map: a fixed set of locations plus an
// insertion-ordered adjacency list per location.
//
// The location set is fixed at New and immutable afterwards; only connections
// are added. Parallel connections and self-loops are allowed. Graph carries
// no locks: mutate it during setup, then share it freely among readers.
type Graph struct {
	adjacency   [][]Arc // adjacency[u] lists u's arcs in insertion order
	connections int     // number of AddConnection calls accepted
}

// New creates an empty Graph with storage for locationCount locations.
// Returns ErrNegativeLocationCount if locationCount < 0.
// A zero-location graph is legal and simply accepts no connections.
// Complexity: O(L) allocation.
func New(locationCount int) (*Graph, error) {
	if locationCount < 0 {
		return nil, ErrNegativeLocationCount
	}

	return &Graph{adjacency: make([][]Arc, locationCount)}, nil
}
