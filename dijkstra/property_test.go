// Property-style checks: the engine's answers are compared against an
// exhaustive simple-path search on small maps, and its paths are verified
// to be real, correctly priced routes.
package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pelles/waymap/bfs"
	"github.com/pelles/waymap/core"
	"github.com/pelles/waymap/dijkstra"
)

// bruteForce returns the minimum total weight over all simple paths from
// src to dst, or dijkstra.Unreachable when none exists. Exponential; only
// for maps of a dozen locations or fewer.
func bruteForce(g *core.Graph, src, dst core.Location) int64 {
	visited := make([]bool, g.LocationCount())
	best := dijkstra.Unreachable

	var walk func(at core.Location, cost int64)
	walk = func(at core.Location, cost int64) {
		if at == dst {
			if cost < best {
				best = cost
			}
			return
		}
		visited[at] = true
		arcs, _ := g.Neighbors(at)
		for _, a := range arcs {
			if !visited[a.To] {
				walk(a.To, cost+a.Weight)
			}
		}
		visited[at] = false
	}
	walk(src, 0)

	return best
}

// cheapestArc returns the minimum weight among the (possibly parallel)
// connections u—v, or math.MaxInt64 if none exists.
func cheapestArc(g *core.Graph, u, v core.Location) int64 {
	best := int64(math.MaxInt64)
	arcs, _ := g.Neighbors(u)
	for _, a := range arcs {
		if a.To == v && a.Weight < best {
			best = a.Weight
		}
	}

	return best
}

// checkQuery verifies one (src, dst) query end to end: brute-force
// optimality, path endpoints, exact path pricing, and reachability
// agreement with undirected connectivity.
func checkQuery(t *testing.T, g *core.Graph, src, dst core.Location) {
	t.Helper()
	require := require.New(t)

	res, err := dijkstra.ShortestPath(g, src, dst)
	require.NoError(err)

	// Optimality: reported distance equals the exhaustive-search minimum.
	require.Equal(bruteForce(g, src, dst), res.Distance(),
		"query %d→%d disagrees with brute force", src, dst)

	// Reachability consistency: unreachable iff no path exists at all.
	reach, err := bfs.Search(g, src)
	require.NoError(err)
	require.Equal(reach.Hops[dst] >= 0, res.Reachable(),
		"query %d→%d: reachability disagrees with connectivity", src, dst)

	if !res.Reachable() {
		require.Empty(res.Path)
		return
	}

	// Path validity: starts at src, ends at dst, and its consecutive-pair
	// weights sum exactly to the reported distance.
	require.Equal(src, res.Path[0])
	require.Equal(dst, res.Path[len(res.Path)-1])
	var sum int64
	for i := 0; i+1 < len(res.Path); i++ {
		w := cheapestArc(g, res.Path[i], res.Path[i+1])
		require.NotEqual(int64(math.MaxInt64), w,
			"path step %d—%d is not a real connection", res.Path[i], res.Path[i+1])
		sum += w
	}
	require.Equal(res.Distance(), sum, "path weights do not sum to the distance")
}

func TestShortestPath_AgainstBruteForce_Reference(t *testing.T) {
	g := referenceMap(t)
	n := core.Location(g.LocationCount())
	for src := core.Location(0); src < n; src++ {
		for dst := core.Location(0); dst < n; dst++ {
			checkQuery(t, g, src, dst)
		}
	}
}

func TestShortestPath_AgainstBruteForce_Disconnected(t *testing.T) {
	// Components {0,1,2} and {3,4}; 5 is fully isolated.
	g, err := core.New(6)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []struct {
		u, v core.Location
		w    int64
	}{
		{0, 1, 3}, {1, 2, 1}, {0, 2, 9},
		{3, 4, 2},
	} {
		if err = g.AddConnection(c.u, c.v, c.w); err != nil {
			t.Fatal(err)
		}
	}

	for src := core.Location(0); src < 6; src++ {
		for dst := core.Location(0); dst < 6; dst++ {
			checkQuery(t, g, src, dst)
		}
	}
}

func TestShortestPath_AgainstBruteForce_Random(t *testing.T) {
	// Seeded generator: the same small maps every run.
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 40; trial++ {
		n := 2 + rng.Intn(9) // 2..10 locations
		g, err := core.New(n)
		if err != nil {
			t.Fatal(err)
		}

		// Sparse-to-middling density, with occasional parallels and loops.
		connections := rng.Intn(2 * n)
		for i := 0; i < connections; i++ {
			u := core.Location(rng.Intn(n))
			v := core.Location(rng.Intn(n))
			if err = g.AddConnection(u, v, int64(rng.Intn(20))); err != nil {
				t.Fatal(err)
			}
		}

		src := core.Location(rng.Intn(n))
		dst := core.Location(rng.Intn(n))
		checkQuery(t, g, src, dst)
	}
}
