// Package dfs defines types and options for depth-first enumeration of
// simple paths, including cancellation, depth and cost limits, and a
// result cap.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpath/dijkstra"
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrPathLimit is returned, together with the paths collected so far,
	// when MaxPaths is reached before the enumeration finished.
	ErrPathLimit = errors.New("dfs: path limit reached")
)

// Option configures optional behavior of SimplePaths.
type Option func(*Options)

// Options holds configurable parameters for the enumeration.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, limits paths to at most MaxDepth edges.
	// Default is -1 (no limit).
	MaxDepth int

	// MaxDistance prunes every branch whose cost exceeds it.
	MaxDistance dijkstra.Cost

	// MaxPaths, if > 0, stops with ErrPathLimit once that many paths were found.
	MaxPaths int

	// OnVisit, if non-nil, is invoked each time a node is pushed on the
	// current path. Returning an error aborts enumeration with that error.
	OnVisit func(node any, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Background context
//   - No depth, distance or path-count limit
//   - No hook
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDepth:    -1,
		MaxDistance: dijkstra.Unlimited,
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

// WithMaxDepth limits paths to at most limit edges. limit < 0 is invalid.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithMaxDistance drops every path costing more than max.
func WithMaxDistance(max dijkstra.Cost) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithMaxPaths caps the number of collected paths. n < 0 is invalid.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// WithOnVisit registers a pre-order hook.
func WithOnVisit(fn func(node any, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
