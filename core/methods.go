// File: methods.go
// Role: Graph mutation and query APIs: AddConnection, Neighbors,
//       LocationCount, ConnectionCount, Degree, Contains.

package core

// AddConnection links locations u and v with an undirected connection of the
// given weight, appending Arc{v, weight} to u's list and Arc{u, weight} to
// v's list. A self-loop (u == v) appends a single arc pointing back at u.
//
// Parallel connections are not deduplicated: each call appends independently.
//
// Validation is all-or-nothing; on error the adjacency structure is unchanged.
//
// Errors:
//   - ErrLocationOutOfRange: u or v outside [0, LocationCount).
//   - ErrNegativeWeight: weight < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddConnection(u, v Location, weight int64) error {
	if !g.Contains(u) || !g.Contains(v) {
		return ErrLocationOutOfRange
	}
	if weight < 0 {
		return ErrNegativeWeight
	}

	g.adjacency[u] = append(g.adjacency[u], Arc{To: v, Weight: weight})
	if u != v {
		g.adjacency[v] = append(g.adjacency[v], Arc{To: u, Weight: weight})
	}
	g.connections++

	return nil
}

// Neighbors returns the arcs incident to loc in insertion order.
//
// The returned slice is a borrowed view of the graph's own storage, not a
// copy; callers must treat it as read-only.
//
// Errors:
//   - ErrLocationOutOfRange: loc outside [0, LocationCount).
//
// Complexity: O(1).
func (g *Graph) Neighbors(loc Location) ([]Arc, error) {
	if !g.Contains(loc) {
		return nil, ErrLocationOutOfRange
	}

	return g.adjacency[loc], nil
}

// LocationCount reports the fixed number of locations in the graph.
func (g *Graph) LocationCount() int { return len(g.adjacency) }

// ConnectionCount reports the number of connections accepted so far.
// Parallel connections and self-loops each count once.
func (g *Graph) ConnectionCount() int { return g.connections }

// Degree reports the number of arcs incident to loc (self-loops count once,
// parallel connections count individually).
// Returns ErrLocationOutOfRange for an invalid index.
func (g *Graph) Degree(loc Location) (int, error) {
	if !g.Contains(loc) {
		return 0, ErrLocationOutOfRange
	}

	return len(g.adjacency[loc]), nil
}

// Contains reports whether loc is a valid index in [0, LocationCount).
func (g *Graph) Contains(loc Location) bool {
	return loc >= 0 && int(loc) < len(g.adjacency)
}
