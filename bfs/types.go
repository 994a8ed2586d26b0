// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/pelles/waymap/core"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// ErrNoPath is returned by PathTo when the target was never reached.
var ErrNoPath = errors.New("bfs: no path to target")

// Option configures Search behavior via functional arguments.
// If an Option is invalid (e.g. negative hop limit), it is recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize Search execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a location. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(loc core.Location, hops int) error

	// MaxHops, if > 0, stops exploring beyond this many connections.
	// A value of 0 explicitly disables any hop limit.
	MaxHops int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no hop limit (MaxHops == 0)
//   - no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(core.Location, int) error { return nil },
		MaxHops: 0,
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on each visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(loc core.Location, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxHops stops the search at the given hop count (inclusive).
//
//	h > 0: limit to h connections from the source
//	h == 0: explicit no limit
//	h < 0: invalid option → ErrOptionViolation
func WithMaxHops(h int) Option {
	return func(o *Options) {
		switch {
		case h < 0:
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, h)
		case h == 0:
			// explicit "no limit"
			o.MaxHops = 0
		default:
			o.MaxHops = h
		}
	}
}

// Result holds the outcome of a Search:
//   - Source: the queried start location.
//   - Order: locations visited, in visit sequence.
//   - Hops: per-location connection count from the source, -1 if unreached.
//   - Parent: per-location predecessor in the search tree, core.NoLocation
//     for the source and for unreached locations.
type Result struct {
	Source core.Location
	Order  []core.Location
	Hops   []int
	Parent []core.Location
}

// PathTo reconstructs the path from the source to target.
// Returns ErrNoPath if target was not reached.
func (r *Result) PathTo(target core.Location) ([]core.Location, error) {
	if target < 0 || int(target) >= len(r.Hops) || r.Hops[target] < 0 {
		return nil, fmt.Errorf("%w: location %d", ErrNoPath, target)
	}

	// build reversed path
	path := make([]core.Location, 0, r.Hops[target]+1)
	for at := target; at != core.NoLocation; at = r.Parent[at] {
		path = append(path, at)
	}
	// reverse to get source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
