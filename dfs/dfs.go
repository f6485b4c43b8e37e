package dfs

import (
	"github.com/katalvlaran/lvpath/dijkstra"
)

// walker encapsulates state during enumeration.
type walker[T comparable] struct {
	end       T
	neighbors dijkstra.NeighborFunc[T]
	opts      Options

	onPath map[T]struct{}   // nodes of the current branch
	cur    dijkstra.Path[T] // current branch, start first
	out    []dijkstra.Path[T]
}

// SimplePaths lists every loopless path from start to end in depth-first
// order: neighbors are explored in the order the neighbor function returns
// them. The result is not sorted by cost.
//
// The running time is exponential in the worst case; use it on small
// graphs, or bound it with WithMaxDepth, WithMaxDistance or WithMaxPaths.
//
// Returns ErrOptionViolation, dijkstra.ErrNilNeighbors, ctx.Err() or any
// OnVisit error. ErrPathLimit is returned together with the paths found.
func SimplePaths[T comparable](start, end T, neighbors dijkstra.NeighborFunc[T], opts ...Option) ([]dijkstra.Path[T], error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if neighbors == nil {
		return nil, dijkstra.ErrNilNeighbors
	}

	w := &walker[T]{
		end:       end,
		neighbors: neighbors,
		opts:      o,
		onPath:    make(map[T]struct{}),
	}
	err := w.visit(start, 0)

	return w.out, err
}

// visit pushes node at distance dist, recurses, and pops it again.
func (w *walker[T]) visit(node T, dist dijkstra.Cost) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	depth := len(w.cur)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(node, depth); err != nil {
			return err
		}
	}

	w.onPath[node] = struct{}{}
	w.cur = append(w.cur, dijkstra.Step[T]{Node: node, Dist: dist})
	defer func() {
		delete(w.onPath, node)
		w.cur = w.cur[:len(w.cur)-1]
	}()

	if node == w.end {
		w.out = append(w.out, w.cur.Clone())
		if w.opts.MaxPaths > 0 && len(w.out) >= w.opts.MaxPaths {
			return ErrPathLimit
		}
		return nil
	}
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	for _, e := range w.neighbors(node) {
		if _, seen := w.onPath[e.To]; seen {
			continue
		}
		next := dist + e.Cost
		if next > w.opts.MaxDistance {
			continue
		}
		if err := w.visit(e.To, next); err != nil {
			return err
		}
	}

	return nil
}
