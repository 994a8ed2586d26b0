// Package bfs provides breadth-first search over a waymap core.Graph,
// returning hop-count distances, parent links, and visit order.
//
// Search explores locations in increasing number of connections from a
// source location, ignoring weights entirely; use dijkstra.ShortestPath when
// the total connection weight matters.
package bfs

import (
	"errors"

	"github.com/pelles/waymap/core"
)

// Sentinel errors for Search execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrLocationOutOfRange is returned when the source location is invalid.
	ErrLocationOutOfRange = errors.New("bfs: source location out of range")
)

// walker encapsulates mutable Search state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []core.Location
	res   *Result
}

// Search runs breadth-first search on g starting from source, applying any
// number of functional Options.
// Returns ErrNilGraph or ErrLocationOutOfRange for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation, or
// any error returned by a user-supplied OnVisit hook.
func Search(g *core.Graph, source core.Location, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.Contains(source) {
		return nil, ErrLocationOutOfRange
	}

	// Prepare walker state: hops[v]=-1 (unreached), parent[v]=NoLocation.
	n := g.LocationCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]core.Location, 0, n),
		res: &Result{
			Source: source,
			Order:  make([]core.Location, 0, n),
			Hops:   make([]int, n),
			Parent: make([]core.Location, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Hops[i] = -1
		w.res.Parent[i] = core.NoLocation
	}

	// Seed queue with the source at hop zero.
	w.res.Hops[source] = 0
	w.queue = append(w.queue, source)

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		loc := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.visit(loc); err != nil {
			return err
		}
		w.enqueueNeighbors(loc)
	}

	return nil
}

// visit records the location in Order and calls OnVisit.
func (w *walker) visit(loc core.Location) error {
	w.res.Order = append(w.res.Order, loc)

	return w.opts.OnVisit(loc, w.res.Hops[loc])
}

// enqueueNeighbors walks loc's arcs, applies the MaxHops limit, and enqueues
// each location seen for the first time with loc recorded as its parent.
func (w *walker) enqueueNeighbors(loc core.Location) {
	arcs, _ := w.graph.Neighbors(loc) // loc came off the queue; cannot fail

	next := w.res.Hops[loc] + 1
	if w.opts.MaxHops > 0 && next > w.opts.MaxHops {
		return
	}
	for _, a := range arcs {
		// first time seen?
		if w.res.Hops[a.To] >= 0 {
			continue
		}
		w.res.Hops[a.To] = next
		w.res.Parent[a.To] = loc
		w.queue = append(w.queue, a.To)
	}
}
