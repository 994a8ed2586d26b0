// Package dijkstra declares the engine's sentinel errors, functional options,
// and the Result type returned by ShortestPath.
package dijkstra

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/pelles/waymap/core"
)

// Unreachable is the distance recorded for locations with no finite-weight
// path from the source.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrLocationOutOfRange indicates the source or target location does not
	// exist in the graph.
	ErrLocationOutOfRange = errors.New("dijkstra: source or target location out of range")

	// ErrBadMaxDistance indicates WithMaxDistance was given a negative cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of a single ShortestPath query.
//
// Ctx         – context for cooperative cancellation, checked once per
//
//	frontier extraction. Defaults to context.Background().
//
// MaxDistance – cap on finalized distances; locations farther than this are
//
//	left Unreachable. Must be ≥ 0. Default math.MaxInt64 (no cap).
type Options struct {
	Ctx         context.Context
	MaxDistance int64
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithContext sets a custom context for cancellation and deadlines.
// A nil ctx is ignored and the default context.Background() is kept.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance caps exploration: locations whose shortest distance would
// exceed max are not finalized and stay Unreachable in the result.
// Panics with ErrBadMaxDistance on a negative cap.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied: background context and no distance cap.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: math.MaxInt64,
	}
}

// Result holds the outcome of one ShortestPath query.
//
// Dist and Parent are the full per-location distance and predecessor arrays
// produced by the relaxation; Path is the reconstructed source→target route
// (empty when the target is unreachable). Each query allocates fresh arrays;
// nothing is cached across queries and the graph is never mutated.
type Result struct {
	// Source and Target echo the queried pair.
	Source, Target core.Location

	// Dist[v] is the minimum total weight from Source to v, or Unreachable.
	Dist []int64

	// Parent[v] is the predecessor of v on its shortest path from Source,
	// or core.NoLocation for the source itself and for unreached locations.
	Parent []core.Location

	// Path lists the locations from Source to Target along one minimum-weight
	// route, inclusive of both endpoints. Empty if Target is unreachable.
	Path []core.Location
}

// Reachable reports whether a finite-weight path from Source to Target exists.
func (r *Result) Reachable() bool { return r.Dist[r.Target] != Unreachable }

// Distance returns the shortest total weight from Source to Target,
// or Unreachable if no path exists.
func (r *Result) Distance() int64 { return r.Dist[r.Target] }

// String renders the human-readable report:
//
//	Shortest path length is: 14
//	Path is: 0 1 2 8
//
// An unreachable target is stated explicitly instead of printing the
// sentinel distance as an enormous integer:
//
//	Shortest path length is: unreachable
//	Path is: none
func (r *Result) String() string {
	var b strings.Builder
	b.WriteString("Shortest path length is: ")
	if !r.Reachable() {
		b.WriteString("unreachable\nPath is: none")
		return b.String()
	}
	b.WriteString(strconv.FormatInt(r.Distance(), 10))
	b.WriteString("\nPath is:")
	for _, loc := range r.Path {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(int(loc)))
	}

	return b.String()
}
