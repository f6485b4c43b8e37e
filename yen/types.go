// Package yen provides tunable options and error definitions
// for the K-shortest-loopless-paths search.
package yen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvpath/dijkstra"
)

// Sentinel errors for K-shortest-paths execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("yen: invalid option supplied")

	// ErrIterationLimit is returned, together with the paths accepted so far,
	// when MaxIterations is reached before the search finished.
	ErrIterationLimit = errors.New("yen: iteration limit reached")
)

// Option configures KShortest via functional arguments.
// If an Option is invalid (e.g. negative MaxK), it is recorded internally
// and surfaced as ErrOptionViolation when KShortest is invoked.
type Option func(*Options)

// Options holds parameters to customize KShortest execution.
type Options struct {
	// Ctx allows cancellation and deadlines of the whole run,
	// including the spur searches running in parallel.
	Ctx context.Context

	// MaxK, if > 0, stops once MaxK paths were accepted.
	// 0 means "until the graph has no further loopless path".
	MaxK int

	// MaxDistance bounds the cost of every returned path, the first included.
	// Default dijkstra.Unlimited.
	MaxDistance dijkstra.Cost

	// Workers is the size of the spur-search pool. Default GOMAXPROCS.
	Workers int

	// MaxIterations, if > 0, caps the number of Yen iterations.
	MaxIterations int

	// Logger receives debug records for every accepted path.
	// Default discards everything.
	Logger *log.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no MaxK, no MaxDistance, no MaxIterations
//   - one worker per GOMAXPROCS
//   - a logger writing to io.Discard
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: dijkstra.Unlimited,
		Workers:     runtime.GOMAXPROCS(0),
		Logger:      log.New(io.Discard),
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

// WithMaxK stops the search once k paths were accepted.
//
//	k > 0: at most k paths
//	k == 0: explicit no limit
//	k < 0: invalid option → ErrOptionViolation
func WithMaxK(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxK cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxK = k
	}
}

// WithMaxDistance drops every path whose cost exceeds max.
func WithMaxDistance(max dijkstra.Cost) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithWorkers sets the number of spur searches run concurrently.
// n < 1 is invalid → ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMaxIterations caps the number of Yen iterations.
//
//	n > 0: abort with ErrIterationLimit after n iterations
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithLogger routes debug records to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
