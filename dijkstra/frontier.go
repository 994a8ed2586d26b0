// File: frontier.go
// Role: indexed min-heap frontier with true decrease-key, so the queue never
//       holds two entries (stale + fresh) for the same location.

package dijkstra

import (
	"container/heap"

	"github.com/pelles/waymap/core"
)

// entry pairs a location with its tentative distance from the source.
type entry struct {
	loc  core.Location
	dist int64
}

// frontier orders pending locations by (tentative distance, location index).
// pos[loc] is the heap slot currently holding loc, or -1 when loc has no
// pending entry; Swap keeps it in sync so update can Fix an entry in place.
type frontier struct {
	entries []entry
	pos     []int
}

// newFrontier allocates an empty frontier for a graph of locationCount
// locations.
func newFrontier(locationCount int) *frontier {
	f := &frontier{
		entries: make([]entry, 0, locationCount),
		pos:     make([]int, locationCount),
	}
	for i := range f.pos {
		f.pos[i] = -1
	}

	return f
}

// update records a new tentative distance for loc: a decrease-key on the
// existing entry if one is pending, otherwise a fresh push.
func (f *frontier) update(loc core.Location, dist int64) {
	if i := f.pos[loc]; i >= 0 {
		f.entries[i].dist = dist
		heap.Fix(f, i)
		return
	}
	heap.Push(f, entry{loc: loc, dist: dist})
}

// extractMin removes and returns the pending (location, distance) pair with
// the smallest distance, ties broken by lower location index.
func (f *frontier) extractMin() (core.Location, int64) {
	e := heap.Pop(f).(entry)

	return e.loc, e.dist
}

// Len reports the number of pending entries.
func (f *frontier) Len() int { return len(f.entries) }

// Less orders by distance ascending, then by location index for
// deterministic extraction among equal distances.
func (f *frontier) Less(i, j int) bool {
	if f.entries[i].dist != f.entries[j].dist {
		return f.entries[i].dist < f.entries[j].dist
	}

	return f.entries[i].loc < f.entries[j].loc
}

// Swap exchanges two entries and their position-table slots.
func (f *frontier) Swap(i, j int) {
	f.entries[i], f.entries[j] = f.entries[j], f.entries[i]
	f.pos[f.entries[i].loc] = i
	f.pos[f.entries[j].loc] = j
}

// Push appends x; called by container/heap, x must be an entry.
func (f *frontier) Push(x interface{}) {
	e := x.(entry)
	f.pos[e.loc] = len(f.entries)
	f.entries = append(f.entries, e)
}

// Pop removes and returns the last entry; called by container/heap.
func (f *frontier) Pop() interface{} {
	old := f.entries
	n := len(old)
	e := old[n-1]
	f.pos[e.loc] = -1
	f.entries = old[:n-1]

	return e
}
