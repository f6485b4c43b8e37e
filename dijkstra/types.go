// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path search over implicitly-defined graphs.
//
// The graph is never materialised: the caller supplies a NeighborFunc that
// yields, for any node, the outgoing steps and their non-negative costs.
// Nodes are opaque values of any comparable type T.
//
// Options:
//
//	– Context:     cancellation, checked once per priority-queue pop.
//	– MaxDistance: optional cap on cumulative distance; farther steps are dropped.
//	– MaxPops:     optional hard cap on the number of pops (ErrSearchLimit).
//
// Errors (sentinel):
//
//	– ErrNilNeighbors    if the neighbor function is nil.
//	– ErrOptionViolation if an option was given an invalid value.
//	– ErrSearchLimit     if MaxPops was reached before the search terminated.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the search.
var (
	// ErrNilNeighbors indicates that a nil NeighborFunc was passed to Search.
	ErrNilNeighbors = errors.New("dijkstra: neighbor function is nil")

	// ErrOptionViolation indicates that an Option was given an invalid value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrSearchLimit indicates that the search hit MaxPops before terminating.
	// The partial Result is still returned alongside this error.
	ErrSearchLimit = errors.New("dijkstra: pop limit reached")
)

// Cost is a non-negative edge weight or cumulative path distance.
type Cost = uint64

// Unlimited is the default value of MaxDistance: no distance cap.
const Unlimited Cost = math.MaxUint64

// Edge is a single neighbor step: moving to To costs Cost.
type Edge[T comparable] struct {
	To   T
	Cost Cost
}

// NeighborFunc yields the outgoing steps of a node.
//
// The function must be pure: same input, same output, no observable side
// effects, and safe for concurrent calls (package yen calls it from several
// goroutines). All costs are non-negative by type; a neighbor function that
// keeps producing unseen nodes forever makes an exhaustive search diverge.
type NeighborFunc[T comparable] func(node T) []Edge[T]

// Step is one element of a Path: a node and its cumulative distance from
// the start of the search.
type Step[T comparable] struct {
	Node T
	Dist Cost
}

// Options configures the behavior of Search.
//
// Ctx         – cancellation and deadlines (default context.Background()).
// MaxDistance – steps whose cumulative distance would exceed this value are
//
//	neither recorded nor enqueued. Default Unlimited.
//
// MaxPops     – if > 0, abort with ErrSearchLimit after this many pops.
type Options struct {
	Ctx         context.Context
	MaxDistance Cost
	MaxPops     int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with defaults:
//   - Ctx:         context.Background()
//   - MaxDistance: Unlimited
//   - MaxPops:     0 (no cap)
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: Unlimited,
		MaxPops:     0,
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance caps exploration: nodes farther than max from the start
// are never reached.
func WithMaxDistance(max Cost) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithMaxPops limits the number of priority-queue pops.
//
//	n > 0: abort with ErrSearchLimit after n pops
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPops = n
	}
}

// Stats counts the work done by a single search.
type Stats struct {
	Pops        int // entries popped from the priority queue
	StalePops   int // popped entries skipped because a cheaper path was known
	Pushes      int // entries pushed onto the priority queue
	Relaxations int // neighbor steps examined
}
