// Package waymap is a small in-memory toolkit for shortest-path queries
// on static, weighted, undirected location maps.
//
// 🚀 What is waymap?
//
//	A focused, dependency-light library built around integer-indexed locations:
//		• Core primitives: build a fixed-size map and add weighted connections
//		• Shortest paths: Dijkstra with a decrease-key frontier and full
//		  path reconstruction
//		• Hop counts: BFS when only the number of connections matters
//
// ✨ Why choose waymap?
//
//   - Minimal API – a map is just locations [0, L) plus connections
//   - Fail-fast validation – bad indices and negative weights are rejected
//     at the offending call, never silently clamped
//   - Pure Go – no cgo, no hidden deps
//   - Query-scoped state – graphs are immutable during queries, so
//     concurrent queries need no locks
//
// Under the hood, everything is organized under three subpackages:
//
//	core/     — Graph, Location and Arc types, construction & validation
//	dijkstra/ — weighted shortest paths + the human-readable route report
//	bfs/      — unweighted hop-count search with the same Result shape
//
// Quick ASCII example:
//
//	    0───4───1
//	    │       │
//	    8       11
//	    │       │
//	   [7]──────┘
//
//	g, _ := core.New(9)
//	g.AddConnection(0, 1, 4)
//	g.AddConnection(0, 7, 8)
//	g.AddConnection(1, 7, 11)
//	res, _ := dijkstra.ShortestPath(g, 1, 7)
//	fmt.Println(res)
//	// Shortest path length is: 11
//	// Path is: 1 7
//
// Dive into examples/ for runnable demos, including the full nine-location
// reference map.
//
//	go get github.com/pelles/waymap
package waymap
