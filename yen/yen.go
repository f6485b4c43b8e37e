package yen

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpath/dijkstra"
)

// KShortest returns up to MaxK loopless paths from start to end, cheapest
// first, with stable tie-breaking. The first path equals the one returned
// by dijkstra.SearchTo.
//
// Running out of paths is not an error: the result is simply shorter than
// MaxK, and empty when end is unreachable (or costs more than MaxDistance).
//
// Returns ErrOptionViolation for bad options, dijkstra.ErrNilNeighbors for a
// nil neighbor function, ctx.Err() on cancellation and ErrIterationLimit
// (with the paths accepted so far) when MaxIterations is hit.
//
// neighbors is called concurrently from several goroutines and must be
// safe for that.
func KShortest[T comparable](start, end T, neighbors dijkstra.NeighborFunc[T], opts ...Option) ([]dijkstra.Path[T], error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if neighbors == nil {
		return nil, dijkstra.ErrNilNeighbors
	}

	r := &ranker[T]{
		opts:      o,
		end:       end,
		neighbors: neighbors,
	}

	return r.run(start)
}

// ranker encapsulates the state of one KShortest call.
type ranker[T comparable] struct {
	opts      Options
	end       T
	neighbors dijkstra.NeighborFunc[T]

	out      []dijkstra.Path[T]
	accepted pathSet[T]
	pool     candidatePool[T]
}

// run seeds the output with the shortest path and iterates until MaxK,
// MaxDistance, an empty pool, or an error stops it.
func (r *ranker[T]) run(start T) ([]dijkstra.Path[T], error) {
	log := r.opts.Logger

	// Step 0: plain shortest path.
	first, err := dijkstra.SearchTo(start, r.end, r.neighbors,
		dijkstra.WithContext(r.opts.Ctx),
		dijkstra.WithMaxDistance(r.opts.MaxDistance),
	)
	if err != nil {
		return nil, err
	}
	p, ok := first.PathTo(r.end)
	if !first.Found || !ok {
		log.Debug("no path", "start", start, "end", r.end)
		return nil, nil
	}
	r.accept(p)

	for iter := 1; ; iter++ {
		if r.opts.MaxK > 0 && len(r.out) >= r.opts.MaxK {
			break
		}
		if r.opts.MaxIterations > 0 && iter > r.opts.MaxIterations {
			return r.out, ErrIterationLimit
		}
		if err := r.opts.Ctx.Err(); err != nil {
			return r.out, err
		}

		// Parallel phase: one spur search per deviation position.
		spurs, err := r.spurCandidates(r.out[len(r.out)-1])
		if err != nil {
			return r.out, err
		}

		// Sequential merge in ascending spur position.
		queued := 0
		for _, c := range spurs {
			if c != nil && r.pool.offer(c) {
				queued++
			}
		}

		next, ok := r.pool.pop()
		if !ok {
			log.Debug("candidate pool exhausted", "k", len(r.out))
			break
		}
		if next.Cost() > r.opts.MaxDistance {
			log.Debug("next candidate exceeds max distance", "cost", next.Cost(), "max", r.opts.MaxDistance)
			break
		}
		r.accept(next)
		log.Debug("accepted path", "k", len(r.out), "cost", next.Cost(), "hops", next.Len()-1,
			"queued", queued, "pool", r.pool.Len())
	}

	return r.out, nil
}

// accept appends p to the output and records it in both sequence sets.
func (r *ranker[T]) accept(p dijkstra.Path[T]) {
	r.out = append(r.out, p)
	r.accepted.add(p)
	r.pool.seen.add(p)
}

// spurCandidates runs the spur searches for every position of last except
// the final one. Slot i holds the candidate deviating at position i, or nil.
//
// Workers only read shared state (last, accepted, neighbors) and each
// writes its own slot, so no locking is needed; the errgroup join is the
// barrier before the merge.
func (r *ranker[T]) spurCandidates(last dijkstra.Path[T]) ([]dijkstra.Path[T], error) {
	slots := make([]dijkstra.Path[T], len(last)-1)

	g, ctx := errgroup.WithContext(r.opts.Ctx)
	g.SetLimit(r.opts.Workers)
	for i := range slots {
		g.Go(func() error {
			c, err := r.spur(ctx, last, i)
			if err != nil {
				return err
			}
			slots[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return slots, nil
}

// spur searches for the cheapest deviation of last at position i and
// returns the spliced candidate, or nil if there is none.
func (r *ranker[T]) spur(ctx context.Context, last dijkstra.Path[T], i int) (dijkstra.Path[T], error) {
	root := last[:i+1]
	spurNode := root[i].Node
	rootCost := root[i].Dist

	// Candidates through this root can never fit under MaxDistance.
	if rootCost > r.opts.MaxDistance {
		return nil, nil
	}
	budget := dijkstra.Unlimited
	if r.opts.MaxDistance != dijkstra.Unlimited {
		budget = r.opts.MaxDistance - rootCost
	}

	// Edge exclusion: every accepted path sharing this root leaves the spur
	// node toward one of these nodes.
	bannedNext := r.accepted.successors(root)

	// Node exclusion: the root minus the spur node itself.
	bannedNodes := make(map[T]struct{}, i)
	for _, st := range root[:i] {
		bannedNodes[st.Node] = struct{}{}
	}

	restricted := func(u T) []dijkstra.Edge[T] {
		all := r.neighbors(u)
		out := make([]dijkstra.Edge[T], 0, len(all))
		for _, e := range all {
			if _, banned := bannedNodes[e.To]; banned {
				continue
			}
			if u == spurNode {
				if _, banned := bannedNext[e.To]; banned {
					continue
				}
			}
			out = append(out, e)
		}

		return out
	}

	res, err := dijkstra.SearchTo(spurNode, r.end, restricted,
		dijkstra.WithContext(ctx),
		dijkstra.WithMaxDistance(budget),
	)
	if err != nil {
		return nil, err
	}
	spurPath, ok := res.PathTo(r.end)
	if !res.Found || !ok {
		return nil, nil
	}

	return splice(root, spurPath), nil
}

// splice joins root and a spur path that starts at root's last node,
// shifting spur distances by the root cost.
func splice[T comparable](root, spurPath dijkstra.Path[T]) dijkstra.Path[T] {
	offset := root.Cost()
	out := make(dijkstra.Path[T], 0, len(root)+len(spurPath)-1)
	out = append(out, root...)
	for _, st := range spurPath[1:] {
		out = append(out, dijkstra.Step[T]{Node: st.Node, Dist: st.Dist + offset})
	}

	return out
}
