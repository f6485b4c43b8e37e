// Package dijkstra implements Dijkstra's shortest-path search over graphs
// described by a neighbor function.
//
// The search processes nodes in order of increasing distance using a min-heap
// priority queue and records, for every node it reaches, the best Path found
// so far. It stops the first time a node satisfying the stop predicate is
// popped from the queue.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for the V nodes and E steps explored before termination.
//   - Space: O(V·L + E) where L is the length of the longest recorded path;
//     every reached node keeps its full Path.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Ties in distance are popped in push order, so results are reproducible
//     for a deterministic neighbor function.
//   - Termination is tested on pop, never on push.
package dijkstra

import (
	"container/heap"
	"fmt"
)

// Result holds the outcome of a single search.
//
//   - Paths:   best Path from the start to every node reached before termination.
//     Absence means "not reached by this search", which is only proof of
//     unreachability when the search ran to exhaustion.
//   - Reached: the node that satisfied the stop predicate (valid if Found).
//   - Found:   whether the search terminated on the stop predicate.
//   - Stats:   work counters.
type Result[T comparable] struct {
	Paths   map[T]Path[T]
	Reached T
	Found   bool
	Stats   Stats
}

// PathTo returns the best recorded Path to node, if any.
func (r *Result[T]) PathTo(node T) (Path[T], bool) {
	p, ok := r.Paths[node]

	return p, ok
}

// CostTo returns the best recorded distance to node, if any.
func (r *Result[T]) CostTo(node T) (Cost, bool) {
	p, ok := r.Paths[node]
	if !ok {
		return 0, false
	}

	return p.Cost(), true
}

// Search runs Dijkstra from start until a node satisfying stop is popped or
// the queue is exhausted. A nil stop never matches.
//
// Returns:
//
//   - *Result: the path table; never nil unless err is a validation error.
//   - err:     ErrNilNeighbors, ErrOptionViolation, ctx.Err() on cancellation,
//     or ErrSearchLimit (with the partial Result).
//
// Preconditions (not checked): neighbors is pure and yields finitely many
// steps; the reachable graph is finite or some node satisfies stop.
func Search[T comparable](start T, stop func(T) bool, neighbors NeighborFunc[T], opts ...Option) (*Result[T], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate neighbor function
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	if stop == nil {
		stop = func(T) bool { return false }
	}

	// 3) Initialize runner and run main loop.
	r := &runner[T]{
		options:   cfg,
		stop:      stop,
		neighbors: neighbors,
		res:       &Result[T]{Paths: make(map[T]Path[T])},
	}
	r.init(start)
	if err := r.process(); err != nil {
		return r.res, err
	}

	return r.res, nil
}

// SearchTo runs Search with stop = (node == target).
func SearchTo[T comparable](start, target T, neighbors NeighborFunc[T], opts ...Option) (*Result[T], error) {
	return Search(start, func(n T) bool { return n == target }, neighbors, opts...)
}

// ShortestCost is the minimal form of SearchTo: it returns the cost of the
// shortest path from start to target, and false if target was not reached.
// A nil neighbors function yields false.
func ShortestCost[T comparable](start, target T, neighbors NeighborFunc[T]) (Cost, bool) {
	res, err := SearchTo(start, target, neighbors)
	if err != nil || !res.Found {
		return 0, false
	}

	return res.CostTo(target)
}

// runner holds the mutable state for a single search.
type runner[T comparable] struct {
	options   Options
	stop      func(T) bool
	neighbors NeighborFunc[T]
	pq        stepPQ[T]
	seq       uint64
	res       *Result[T]
}

// init records the trivial path for start and pushes (start, 0).
func (r *runner[T]) init(start T) {
	s := Step[T]{Node: start, Dist: 0}
	r.res.Paths[start] = Path[T]{s}
	heap.Init(&r.pq)
	r.push(s)
}

// push adds s to the heap, stamping it with the next sequence number.
func (r *runner[T]) push(s Step[T]) {
	heap.Push(&r.pq, stepItem[T]{step: s, seq: r.seq})
	r.seq++
	r.res.Stats.Pushes++
}

// process is the core loop. It ends when the stop predicate matches a popped
// node, when the heap is empty, on cancellation, or on MaxPops.
func (r *runner[T]) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if r.options.MaxPops > 0 && r.res.Stats.Pops >= r.options.MaxPops {
			return fmt.Errorf("%w: %d pops", ErrSearchLimit, r.res.Stats.Pops)
		}

		// 1) Pop the smallest-distance item.
		cur := heap.Pop(&r.pq).(stepItem[T]).step
		r.res.Stats.Pops++

		// 2) Terminate as soon as the popped node satisfies stop.
		if r.stop(cur.Node) {
			r.res.Reached = cur.Node
			r.res.Found = true
			return nil
		}

		// 3) Skip stale entries left behind by lazy decrease-key.
		best := r.res.Paths[cur.Node]
		if best.Cost() < cur.Dist {
			r.res.Stats.StalePops++
			continue
		}

		// 4) Relax all outgoing steps.
		r.relax(cur, best)
	}

	return nil
}

// relax examines each step leaving cur and records strictly better paths.
func (r *runner[T]) relax(cur Step[T], best Path[T]) {
	for _, e := range r.neighbors(cur.Node) {
		r.res.Stats.Relaxations++

		next := Step[T]{Node: e.To, Dist: cur.Dist + e.Cost}
		if next.Dist > r.options.MaxDistance {
			continue
		}
		if known, ok := r.res.Paths[next.Node]; ok && next.Dist >= known.Cost() {
			continue
		}

		r.res.Paths[next.Node] = best.extend(next)
		r.push(next)
	}
}
