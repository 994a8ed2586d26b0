// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// waymap core.Graph and reconstructs the path from a source to a target
// location.
//
// Overview:
//
//   - ShortestPath computes the minimum total connection weight from a single
//     source to every reachable location, then walks the predecessor chain to
//     produce the source→target path.
//   - The frontier is an indexed min-heap keyed by (tentative distance,
//     location): every relaxation performs a true decrease-key on the existing
//     entry instead of stacking stale duplicates, so the frontier never holds
//     more than one entry per location.
//   - Correctness rests on non-negative weights, which core.Graph enforces at
//     AddConnection time; the engine has no weight failure modes of its own.
//
// Complexity:
//
//   - Time:  O((L + C) log L), L = locations, C = connections.
//   - Each location is extracted from the frontier at most once: L extractions.
//   - Each connection relaxation costs one heap push or fix: up to C of them.
//   - Space: O(L) for the distance and parent arrays and the frontier.
//
// Results:
//
//   - Result.Dist holds the distance array (Unreachable for locations with no
//     finite-weight path); Result.Parent holds the predecessor array
//     (core.NoLocation for the source and for unreached locations).
//   - An unreachable target is a normal outcome, not an error: Result.Path is
//     empty and Result.Reachable() reports false. Callers can always tell
//     "unreachable" apart from "distance zero, trivial path".
//
// Errors (sentinel):
//
//   - ErrNilGraph             if the graph pointer is nil.
//   - ErrLocationOutOfRange   if source or target is not a valid location.
//   - ErrBadMaxDistance       (via panic) if WithMaxDistance gets a negative cap.
//
// Example usage:
//
//	g, _ := core.New(3)
//	g.AddConnection(0, 1, 4)
//	g.AddConnection(1, 2, 2)
//	res, err := dijkstra.ShortestPath(g, 0, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res) // Shortest path length is: 6 / Path is: 0 1 2
package dijkstra
