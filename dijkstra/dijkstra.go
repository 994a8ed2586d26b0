// Package dijkstra computes single-source shortest paths on a core.Graph
// using a decrease-key frontier, and reconstructs the source→target path
// from the predecessor array.
package dijkstra

import "github.com/pelles/waymap/core"

// ShortestPath computes the minimum-weight route from source to target in g.
//
// Returns a Result carrying the distance array, predecessor array, and the
// reconstructed path. An unreachable target is a normal outcome: the Result
// has an empty Path and Reachable() == false.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and target must lie in [0, g.LocationCount()) (ErrLocationOutOfRange).
//
// The query never mutates g; distance and parent arrays are allocated fresh
// per call, so concurrent queries against the same graph are safe.
//
// Complexity:
//
//   - Time:  O((L + C) log L)
//   - Space: O(L)
func ShortestPath(g *core.Graph, source, target core.Location, opts ...Option) (*Result, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and endpoints.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Contains(source) || !g.Contains(target) {
		return nil, ErrLocationOutOfRange
	}

	// 3) Prepare per-query state: dist[v]=Unreachable, parent[v]=NoLocation,
	//    except dist[source]=0.
	n := g.LocationCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		parent:  make([]core.Location, n),
		pending: newFrontier(n),
	}
	r.init(source)

	// 4) Run the relaxation loop to completion (or cancellation).
	if err := r.process(); err != nil {
		return nil, err
	}

	// 5) Assemble the result and reconstruct the path.
	res := &Result{
		Source: source,
		Target: target,
		Dist:   r.dist,
		Parent: r.parent,
	}
	res.Path = reconstruct(r.parent, target, res.Reachable())

	return res, nil
}

// runner holds the mutable state for a single ShortestPath execution.
type runner struct {
	g       *core.Graph     // the input graph; read-only during the query
	options Options         // per-query configuration
	dist    []int64         // location → best known distance from source
	parent  []core.Location // location → predecessor on that best path
	pending *frontier       // decrease-key min-heap of tentative locations
}

// init seeds the distance and parent arrays and pushes the source at
// distance zero.
func (r *runner) init(source core.Location) {
	for i := range r.dist {
		r.dist[i] = Unreachable
		r.parent[i] = core.NoLocation
	}
	r.dist[source] = 0
	r.pending.update(source, 0)
}

// process repeatedly extracts the closest pending location and relaxes its
// arcs until the frontier drains or the distance cap is crossed.
//
// Because the frontier performs true decrease-key, every extracted entry is
// fresh and its distance is final the moment it is popped: with non-negative
// weights no later relaxation can improve a finalized location, so nothing is
// ever re-inserted after extraction.
func (r *runner) process() error {
	for r.pending.Len() > 0 {
		// Cancellation check, once per extraction.
		select {
		case <-r.options.Ctx.Done():
			return r.options.Ctx.Err()
		default:
		}

		u, d := r.pending.extractMin()

		// Everything still pending is at least this far away; stop here.
		if d > r.options.MaxDistance {
			break
		}

		r.relax(u, d)
	}

	return nil
}

// relax examines each arc out of u and records any strict improvement to a
// neighbor's tentative distance: dist and parent move in lockstep, and the
// frontier entry for the neighbor is updated (or created) at the new value.
func (r *runner) relax(u core.Location, d int64) {
	arcs, _ := r.g.Neighbors(u) // u was validated; cannot fail

	for _, a := range arcs {
		next := d + a.Weight
		if next > r.options.MaxDistance {
			continue
		}
		// Strict improvement only; equal-distance rediscoveries and
		// self-loops (which cannot shrink a distance) fall through here.
		if next >= r.dist[a.To] {
			continue
		}

		r.dist[a.To] = next
		r.parent[a.To] = u
		r.pending.update(a.To, next)
	}
}

// reconstruct walks the parent chain from target back to the source sentinel
// and reverses it into source→target order. Returns nil when the target was
// never reached.
func reconstruct(parent []core.Location, target core.Location, reached bool) []core.Location {
	if !reached {
		return nil
	}

	var path []core.Location
	for at := target; at != core.NoLocation; at = parent[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
