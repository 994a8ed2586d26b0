// Package dijkstra_test provides runnable examples for the ShortestPath
// engine, each verifiable via "go test -run Example".
package dijkstra_test

import (
	"fmt"

	"github.com/pelles/waymap/core"
	"github.com/pelles/waymap/dijkstra"
)

// ExampleShortestPath reports the minimum-weight route across the
// nine-location reference map.
func ExampleShortestPath() {
	g, _ := core.New(9)
	for _, c := range []struct {
		u, v core.Location
		w    int64
	}{
		{0, 1, 4}, {0, 7, 8},
		{1, 2, 8}, {1, 7, 11},
		{2, 3, 7}, {2, 8, 2}, {2, 5, 4},
		{3, 4, 9}, {3, 5, 14},
		{4, 5, 10},
		{5, 6, 2},
		{6, 7, 1}, {6, 8, 6},
		{7, 8, 7},
	} {
		_ = g.AddConnection(c.u, c.v, c.w)
	}

	res, err := dijkstra.ShortestPath(g, 0, 8)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res)
	// Output:
	// Shortest path length is: 14
	// Path is: 0 1 2 8
}

// ExampleShortestPath_direct shows a query where a single direct connection
// beats every multi-hop detour.
func ExampleShortestPath_direct() {
	g, _ := core.New(9)
	_ = g.AddConnection(1, 7, 11)
	_ = g.AddConnection(1, 0, 4)
	_ = g.AddConnection(0, 7, 8) // detour 1→0→7 costs 12

	res, err := dijkstra.ShortestPath(g, 1, 7)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res)
	// Output:
	// Shortest path length is: 11
	// Path is: 1 7
}

// ExampleShortestPath_unreachable demonstrates the explicit rendering of an
// unreachable target: no sentinel integer ever leaks into the report.
func ExampleShortestPath_unreachable() {
	g, _ := core.New(4)
	_ = g.AddConnection(0, 1, 2) // location 3 stays isolated

	res, err := dijkstra.ShortestPath(g, 0, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res)
	fmt.Println("reachable:", res.Reachable())
	// Output:
	// Shortest path length is: unreachable
	// Path is: none
	// reachable: false
}
